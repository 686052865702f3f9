package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newDeleteCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an expense by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid expense id %q", args[0])
			}

			if err := app.expenses.DeleteExpense(cmd.Context(), id); err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Deleted expense id=%d\n", id)
			return nil
		},
	}

	return cmd
}
