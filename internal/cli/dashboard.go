package cli

import (
	"strconv"
	"time"

	"deptboard/internal/format"
	"deptboard/internal/view"

	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			ctx := cmd.Context()
			if err := snap.LoadUsers(ctx); err != nil {
				return writeErr(cmd, err)
			}
			if err := snap.LoadTasks(ctx); err != nil {
				return writeErr(cmd, err)
			}

			vm := view.Dashboard(snap, time.Now())
			if app.Format == "table" {
				rows := [][]any{
					{"pending", strconv.Itoa(vm.Pending)},
					{"in_progress", strconv.Itoa(vm.InProgress)},
					{"completed", strconv.Itoa(vm.Completed)},
					{"urgent (due within 7 days)", strconv.Itoa(vm.Urgent)},
				}
				return format.WriteTable(cmd.OutOrStdout(), []string{"STATUS", "COUNT"}, rows)
			}
			return writeOut(cmd, app, map[string]any{"data": vm})
		},
	}
}
