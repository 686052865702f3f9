// Package cli wires the five expense commands onto a cobra root and owns
// the per-invocation lifecycle: config, logging, repository open/close and
// uniform error reporting.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"expenses/internal/config"
	"expenses/internal/log"
	"expenses/internal/services"
	"expenses/internal/storage"
)

// App carries the state commands need at run time. It is populated by the
// root command's PersistentPreRunE and torn down after the command returns,
// so the store is held open for exactly one operation.
type App struct {
	cfg      *config.Config
	repo     *storage.Repository
	expenses *services.ExpenseService
	out      io.Writer
}

func (a *App) close() {
	if a.repo != nil {
		if err := a.repo.Close(); err != nil {
			slog.Warn("Failed to close repository", log.FieldError, err)
		}
		a.repo = nil
	}
}

// strict reports whether failures should exit non-zero. False until config
// is loaded, which also covers flag-parse errors that happen before it.
func (a *App) strict() bool {
	return a.cfg != nil && a.cfg.StrictExit
}

func newRootCommand(app *App) *cobra.Command {
	var debug, strictExit bool

	cmd := &cobra.Command{
		Use:   "expenses",
		Short: "Personal expense tracker",
		Long: `expenses records, lists, edits, deletes and summarizes personal
expenses in a local SQLite database.

Dates are accepted as YYYY-MM-DD or DD-MM-YYYY and stored canonically.

Example:
  expenses add --amount 12.50 --date 2024-03-05 --category food --note lunch
  expenses view --category food --start 2024-03-01 --end 2024-03-31
  expenses summary --month 2024-03 --group-by category`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// .env is optional in local use
			_ = godotenv.Load()

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			if strictExit {
				cfg.StrictExit = true
			}

			level := log.ParseLevel(cfg.LogLevel)
			if debug {
				level = slog.LevelDebug
			}
			log.SetDefault(log.New(log.Config{Level: level, Component: log.ComponentCLI}))

			repo, err := storage.NewRepository(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open expense store: %w", err)
			}

			app.cfg = cfg
			app.repo = repo
			app.expenses = services.NewExpenseService(repo)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			app.close()
		},
	}

	cmd.SetOut(app.out)
	cmd.SetErr(app.out)

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVar(&strictExit, "strict-exit", false, "Exit non-zero when a command fails")

	cmd.AddCommand(newAddCommand(app))
	cmd.AddCommand(newViewCommand(app))
	cmd.AddCommand(newUpdateCommand(app))
	cmd.AddCommand(newDeleteCommand(app))
	cmd.AddCommand(newSummaryCommand(app))

	return cmd
}

// Execute runs the CLI and returns the process exit code. Every failure is
// printed as "Error: <message>"; the exit code stays 0 unless strict exit
// is enabled, preserving the tool's historical behavior for scripts.
func Execute(out io.Writer, args []string) int {
	app := &App{out: out}
	defer app.close()

	cmd := newRootCommand(app)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(out, "Error:", err)
		if app.strict() {
			return 1
		}
	}
	return 0
}
