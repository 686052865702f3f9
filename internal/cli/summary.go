package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummaryCommand(app *App) *cobra.Command {
	var groupBy, month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summary report",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if groupBy != "" && groupBy != "category" {
				return fmt.Errorf("invalid group-by %q: the only supported value is 'category'", groupBy)
			}

			summary, err := app.expenses.Summarize(cmd.Context(), month, groupBy == "category")
			if err != nil {
				return err
			}

			fmt.Fprintf(app.out, "Total spent: %s\n", summary.Total)

			if groupBy == "category" {
				fmt.Fprintf(app.out, "\nBy category:\n")
				for _, ct := range summary.ByCategory {
					fmt.Fprintf(app.out, "  %-12s : %s\n", ct.Category, ct.Total)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&groupBy, "group-by", "", "Group totals ('category')")
	cmd.Flags().StringVar(&month, "month", "", "Restrict to a month, YYYY-MM or MM-YYYY")

	return cmd
}
