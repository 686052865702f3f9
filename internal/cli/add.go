package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand(app *App) *cobra.Command {
	var amount, date, note, category string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an expense",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := app.expenses.AddExpense(cmd.Context(), amount, date, note, category)
			if err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Added expense id=%d, amount=%s, date=%s, category=%s\n",
				e.ID, e.Amount, e.Date, e.Category)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "Expense amount (required)")
	cmd.Flags().StringVar(&date, "date", "", "Expense date, YYYY-MM-DD or DD-MM-YYYY (required)")
	cmd.Flags().StringVar(&note, "note", "", "Free-text note")
	cmd.Flags().StringVar(&category, "category", "", "Category label (default: uncategorized)")
	cmd.MarkFlagRequired("amount")
	cmd.MarkFlagRequired("date")

	return cmd
}
