package cli

import (
	"fmt"
	"os"
	"strings"

	"deptboard/internal/api"
	"deptboard/internal/format"
	"deptboard/internal/store"
	"deptboard/internal/tui"

	"github.com/spf13/cobra"
)

type App struct {
	API        string
	Format     string
	PrettyJSON bool
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "deptboard",
		Short:        "Department task dashboard (TUI + CLI)",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive dashboard
  deptboard

  # Scriptable commands
  deptboard tasks list --status pending
  deptboard staff list --format table

  # Run the local fixture backend
  deptboard serve --addr :8787
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive TUI.
			if cmd.HasSubCommands() && len(args) == 0 {
				return runTUI(app)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.API, "api", envOr("DEPTBOARD_API", "http://localhost:8787"), "Base URL of the REST backend")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("DEPTBOARD_FORMAT", "json"), "Output format (json|table)")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newTasksCmd(app))
	cmd.AddCommand(newStaffCmd(app))
	cmd.AddCommand(newCommentsCmd(app))
	cmd.AddCommand(newDashboardCmd(app))
	cmd.AddCommand(newServeCmd(app))

	return cmd
}

func runTUI(app *App) error {
	snap := store.New(api.NewClient(app.API))
	return tui.Run(snap)
}

func newSnapshot(app *App) *store.Snapshot {
	return store.New(api.NewClient(app.API))
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, jsonFormatOnly(app.Format), app.PrettyJSON)
}

// jsonFormatOnly collapses the table format to json for commands that have no
// tabular shape (create/update/delete results).
func jsonFormatOnly(f string) string {
	if f == "table" {
		return "json"
	}
	return f
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
