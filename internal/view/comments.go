package view

import (
	"time"

	"deptboard/internal/store"
)

// AnonymousAuthor is rendered when a comment has no author name.
const AnonymousAuthor = "anonymous"

type CommentRow struct {
	CommentID string
	Author    string
	Content   string
	CreatedAt time.Time
}

// CommentFeed preserves the snapshot's stored order (the server sorts
// newest-first). An empty result is the renderer's cue for the placeholder.
func CommentFeed(snap *store.Snapshot) []CommentRow {
	var rows []CommentRow
	for _, c := range snap.Comments {
		author := c.Author
		if author == "" {
			author = AnonymousAuthor
		}
		rows = append(rows, CommentRow{
			CommentID: c.ID,
			Author:    author,
			Content:   c.Content,
			CreatedAt: c.CreatedAt,
		})
	}
	return rows
}
