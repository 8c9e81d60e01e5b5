package cli

import (
	"net/http"
	"time"

	"deptboard/internal/devserver"
	"deptboard/internal/model"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var seed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the local fixture backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := devserver.New()
			if seed {
				srv.Seed(demoUsers(), demoTasks(), nil)
			}
			color.New(color.FgGreen, color.Bold).Fprintf(cmd.OutOrStdout(), "deptboard fixture backend listening on %s\n", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8787", "Listen address")
	cmd.Flags().BoolVar(&seed, "seed", false, "Seed demo staff and tasks")
	return cmd
}

func demoUsers() []model.User {
	return []model.User{
		{ID: "u-head", Name: "강연석", Position: "처장", RoleDescription: "부서 총괄, 대외 협력"},
		{ID: "u-lead", Name: "이진중", Position: "과장", RoleDescription: "교환학생 프로그램, 협정 관리"},
		{ID: "u-coord", Name: "이혜진", Position: "주임", RoleDescription: "비자 안내, 오리엔테이션"},
	}
}

func demoTasks() []model.Task {
	due := func(d int) *time.Time {
		t := time.Now().AddDate(0, 0, d)
		return &t
	}
	return []model.Task{
		{ID: "t-1", Title: "Fall orientation schedule", AssigneeID: "u-coord", DueDate: due(2), Priority: model.PriorityHigh, Status: model.StatusPending},
		{ID: "t-2", Title: "Partner university MOU renewal", AssigneeID: "u-lead", DueDate: due(10), Priority: model.PriorityMedium, Status: model.StatusInProgress},
		{ID: "t-3", Title: "Visa workshop materials", AssigneeID: "u-coord", DueDate: due(-1), Priority: model.PriorityLow, Status: model.StatusCompleted},
	}
}
