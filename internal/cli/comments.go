package cli

import (
	"errors"
	"strings"

	"deptboard/internal/api"
	"deptboard/internal/format"
	"deptboard/internal/view"

	"github.com/spf13/cobra"
)

func newCommentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comments",
		Short: "Comment feed commands",
	}
	cmd.AddCommand(newCommentsListCmd(app))
	cmd.AddCommand(newCommentsAddCmd(app))
	cmd.AddCommand(newCommentsDeleteCmd(app))
	return cmd
}

func newCommentsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List comments (newest first)",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap := newSnapshot(app)
			if err := snap.LoadComments(cmd.Context()); err != nil {
				return writeErr(cmd, err)
			}

			rows := view.CommentFeed(snap)
			if app.Format == "table" {
				out := make([][]any, 0, len(rows))
				for _, r := range rows {
					out = append(out, []any{r.CommentID, r.Author, r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Content})
				}
				return format.WriteTable(cmd.OutOrStdout(),
					[]string{"ID", "AUTHOR", "CREATED", "CONTENT"}, out)
			}
			return writeOut(cmd, app, map[string]any{"data": rows})
		},
	}
}

func newCommentsAddCmd(app *App) *cobra.Command {
	var author, content string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a comment",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(content) == "" {
				return writeErr(cmd, errors.New("comment content is empty"))
			}
			c, err := newSnapshot(app).Client().Comments().Create(cmd.Context(), api.CommentFields{
				Author:  author,
				Content: content,
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"data": c})
		},
	}

	cmd.Flags().StringVar(&author, "author", "", "Author name (empty renders as anonymous)")
	cmd.Flags().StringVar(&content, "content", "", "Comment body")
	_ = cmd.MarkFlagRequired("content")
	return cmd
}

func newCommentsDeleteCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <comment-id>",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes && !confirm(cmd, "Delete comment "+args[0]+"?") {
				return nil
			}
			if err := newSnapshot(app).Client().Comments().Delete(cmd.Context(), args[0]); err != nil {
				return writeErr(cmd, err)
			}
			return writeOut(cmd, app, map[string]any{"deleted": args[0]})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")
	return cmd
}
