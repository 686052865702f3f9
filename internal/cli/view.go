package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"expenses/internal/services"
)

func newViewCommand(app *App) *cobra.Command {
	var limit int
	var category, start, end string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "View expenses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit < 0 {
				return errors.New("limit must be a positive integer")
			}

			expenses, err := app.expenses.ListExpenses(cmd.Context(), services.ViewFilter{
				Limit:    limit,
				Category: category,
				Start:    start,
				End:      end,
			})
			if err != nil {
				return err
			}

			if len(expenses) == 0 {
				fmt.Fprintln(app.out, "No expenses found.")
				return nil
			}

			// header cells are right-aligned, rows keep the category
			// column left-aligned
			fmt.Fprintf(app.out, "%3s %10s  %12s  %10s  NOTE\n", "ID", "AMOUNT", "CATEGORY", "DATE")
			fmt.Fprintln(app.out, strings.Repeat("-", 60))
			for _, e := range expenses {
				fmt.Fprintf(app.out, "%3d %10s  %-12s  %10s  %s\n",
					e.ID, e.Amount, e.Category, e.Date, e.Note)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of rows to show")
	cmd.Flags().StringVar(&category, "category", "", "Only this category")
	cmd.Flags().StringVar(&start, "start", "", "Start date (inclusive), YYYY-MM-DD or DD-MM-YYYY")
	cmd.Flags().StringVar(&end, "end", "", "End date (inclusive), YYYY-MM-DD or DD-MM-YYYY")

	return cmd
}
