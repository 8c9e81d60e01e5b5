package cli

import (
	"strings"

	"deptboard/internal/api"
	"deptboard/internal/format"
	"deptboard/internal/view"

	"github.com/spf13/cobra"
)

func newStaffCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "Staff directory commands",
	}
	cmd.AddCommand(newStaffListCmd(app))
	cmd.AddCommand(newStaffCreateCmd(app))
	cmd.AddCommand(newStaffUpdateCmd(app))
	cmd.AddCommand(newStaffDeleteCmd(app))
	return cmd
}

func newStaffListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List staff (priority names first, remainder alphabetical)",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			if err := snap.LoadUsers(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}

			cards := view.Staff(snap, nil)
			if app.Format == "table" {
				out := make([][]any, 0, len(cards))
				for _, c := range cards {
					out = append(out, []any{c.UserID, c.Name, c.Position, strings.Join(c.Responsibilities, "; ")})
				}
				return format.WriteTable(cmd.OutOrStdout(),
					[]string{"ID", "NAME", "POSITION", "RESPONSIBILITIES"}, out)
			}
			return writeOut(cmd, app, map[string]any{"data": cards})
		},
	}
}

func staffFlags(cmd *cobra.Command, f *staffFlagValues) {
	cmd.Flags().StringVar(&f.name, "name", "", "Staff name")
	cmd.Flags().StringVar(&f.position, "position", "", "Position title")
	cmd.Flags().StringVar(&f.role, "role", "", "Role description (responsibilities separated by commas or newlines)")
}

type staffFlagValues struct {
	name, position, role string
}

func newStaffCreateCmd(app *App) *cobra.Command {
	var f staffFlagValues

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Add a staff member",
		RunE: func(cmd *cobra.Command, args []string) error {
			u, err := newSnapshot(app).Client().Users().Create(cmd.Context(), api.UserFields{
				Name:            f.name,
				Position:        f.position,
				RoleDescription: f.role,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}

	staffFlags(cmd, &f)
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newStaffUpdateCmd(app *App) *cobra.Command {
	var f staffFlagValues

	cmd := &cobra.Command{
		Use:   "update <user-id>",
		Short: "Update a staff member (unset flags keep their current values)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			ctx := cmd.Context()
			if err := snap.LoadUsers(ctx); err != nil {
				return writeErr(cmd, err)
			}
			cur, ok := snap.UserByID(args[0])
			if !ok {
				return writeErr(cmd, errNotFound("user", args[0]))
			}

			fields := api.UserFields{
				Name:            cur.Name,
				Position:        cur.Position,
				RoleDescription: cur.RoleDescription,
			}
			if cmd.Flags().Changed("name") {
				fields.Name = f.name
			}
			if cmd.Flags().Changed("position") {
				fields.Position = f.position
			}
			if cmd.Flags().Changed("role") {
				fields.RoleDescription = f.role
			}

			u, err := snap.Client().Users().Update(ctx, cur.ID, fields)
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": u})
		},
	}

	staffFlags(cmd, &f)
	return cmd
}

func newStaffDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a staff member (tasks keep their assignee reference)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Delete staff member "+args[0]+"? Their tasks are kept but lose the assignee label.") {
				return nil
			}
			if err := newSnapshot(app).Client().Users().Delete(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
