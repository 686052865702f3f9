package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"expenses/internal/services"
)

func newUpdateCommand(app *App) *cobra.Command {
	var amount, date, note, category string

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update an expense by id",
		Long: `Update overwrites only the supplied fields; everything else keeps its
current value. At least one field flag must be given. Passing --note ""
clears the note.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			// Changed() distinguishes "flag absent" from "flag set to
			// its zero value", which partial updates depend on.
			var req services.UpdateRequest
			if cmd.Flags().Changed("amount") {
				req.Amount = &amount
			}
			if cmd.Flags().Changed("date") {
				req.Date = &date
			}
			if cmd.Flags().Changed("note") {
				req.Note = &note
			}
			if cmd.Flags().Changed("category") {
				req.Category = &category
			}

			if err := app.expenses.UpdateExpense(cmd.Context(), id, req); err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Updated expense id=%d\n", id)
			return nil
		},
	}

	cmd.Flags().StringVar(&amount, "amount", "", "New amount")
	cmd.Flags().StringVar(&date, "date", "", "New date, YYYY-MM-DD or DD-MM-YYYY")
	cmd.Flags().StringVar(&note, "note", "", "New note")
	cmd.Flags().StringVar(&category, "category", "", "New category")

	return cmd
}
