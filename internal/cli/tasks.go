package cli

import (
	"fmt"

	"deptboard/internal/api"
	"deptboard/internal/format"
	"deptboard/internal/model"
	"deptboard/internal/view"

	"github.com/spf13/cobra"
)

func newTasksCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "Task commands",
	}
	cmd.AddCommand(newTasksListCmd(app))
	cmd.AddCommand(newTasksCreateCmd(app))
	cmd.AddCommand(newTasksUpdateCmd(app))
	cmd.AddCommand(newTasksDeleteCmd(app))
	return cmd
}

func newTasksListCmd(app *App) *cobra.Command {
	var assignee, status, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks (assignee/status/search filters are AND-combined)",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			ctx := cmd.Context()
			if err := snap.LoadUsers(ctx); err != nil {
				return writeErr(cmd, err)
			}
			if err := snap.LoadTasks(ctx); err != nil {
				return writeErr(cmd, err)
			}

			rows := view.TaskList(snap, view.Filter{
				AssigneeID: assignee,
				Status:     model.Status(status),
				Search:     search,
			})

			if app.Format == "table" {
				out := make([][]any, 0, len(rows))
				for _, r := range rows {
					out = append(out, []any{r.TaskID, r.Title, r.Assignee, r.Priority.Label(), r.Status.Label(), fmtDue(r.Due)})
				}
				return format.WriteTable(cmd.OutOrStdout(),
					[]string{"ID", "TITLE", "ASSIGNEE", "PRIORITY", "STATUS", "DUE"}, out)
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}

	cmd.Flags().StringVar(&assignee, "assignee", "", "Filter by assignee user id")
	cmd.Flags().StringVar(&status, "status", "", "Filter by status (pending|in_progress|completed|hold)")
	cmd.Flags().StringVar(&search, "search", "", "Case-insensitive title substring")
	return cmd
}

func taskFlags(cmd *cobra.Command, f *taskFlagValues) {
	cmd.Flags().StringVar(&f.title, "title", "", "Task title")
	cmd.Flags().StringVar(&f.assignee, "assignee", "", "Assignee user id")
	cmd.Flags().StringVar(&f.due, "due", "", "Due date (YYYY-MM-DD or YYYY-MM-DDTHH:MM)")
	cmd.Flags().StringVar(&f.priority, "priority", string(model.PriorityMedium), "Priority (high|medium|low)")
	cmd.Flags().StringVar(&f.status, "status", string(model.StatusPending), "Status (pending|in_progress|completed|hold)")
	cmd.Flags().StringVar(&f.requester, "requester", "", "Requester name")
	cmd.Flags().StringVar(&f.desc, "desc", "", "Description")
}

type taskFlagValues struct {
	title, assignee, due, priority, status, requester, desc string
}

func newTasksCreateCmd(app *App) *cobra.Command {
	var f taskFlagValues

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		RunE: func(cmd *cobra.Command, args []string) error {
			due, err := parseDue(f.due)
			if err != nil {
				return writeErr(cmd, err)
			}
			if !model.KnownStatus(model.Status(f.status)) {
				return writeErr(cmd, fmt.Errorf("unknown status %q", f.status))
			}
			t, err := newSnapshot(app).Client().Tasks().Create(cmd.Context(), api.TaskFields{
				Title:         f.title,
				AssigneeID:    f.assignee,
				DueDate:       due,
				Priority:      model.Priority(f.priority),
				Status:        model.Status(f.status),
				RequesterName: f.requester,
				Description:   f.desc,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	taskFlags(cmd, &f)
	_ = cmd.MarkFlagRequired("title")
	return cmd
}

func newTasksUpdateCmd(app *App) *cobra.Command {
	var f taskFlagValues

	cmd := &cobra.Command{
		Use:   "update <task-id>",
		Short: "Update a task (unset flags keep their current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			ctx := cmd.Context()
			if err := snap.LoadTasks(ctx); err != nil {
				return writeErr(cmd, err)
			}
			cur, ok := snap.TaskByID(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("task", args[0]))
			}

			fields := api.TaskFields{
				Title:         cur.Title,
				AssigneeID:    cur.AssigneeID,
				DueDate:       cur.DueDate,
				Priority:      cur.Priority,
				Status:        cur.Status,
				RequesterName: cur.RequesterName,
				Description:   cur.Description,
			}
			if cmd.Flags().Changed("title") {
				fields.Title = f.title
			}
			if cmd.Flags().Changed("assignee") {
				fields.AssigneeID = f.assignee
			}
			if cmd.Flags().Changed("due") {
				due, err := parseDue(f.due)
				if err != nil {
					return writeErr(cmd, err)
				}
				fields.DueDate = due
			}
			if cmd.Flags().Changed("priority") {
				fields.Priority = model.Priority(f.priority)
			}
			if cmd.Flags().Changed("status") {
				if !model.KnownStatus(model.Status(f.status)) {
					return writeErr(cmd, fmt.Errorf("unknown status %q", f.status))
				}
				fields.Status = model.Status(f.status)
			}
			if cmd.Flags().Changed("requester") {
				fields.RequesterName = f.requester
			}
			if cmd.Flags().Changed("desc") {
				fields.Description = f.desc
			}

			t, err := snap.Client().Tasks().Update(ctx, cur.ID, fields)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": t})
		},
	}

	taskFlags(cmd, &f)
	return cmd
}

func newTasksDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <task-id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Delete task "+args[0]+"?") {
				return nil
			}
			if err := newSnapshot(app).Client().Tasks().Delete(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
