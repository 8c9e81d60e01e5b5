package view_test

import (
	"testing"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
	"deptboard/internal/view"
)

func TestCommentFeed(t *testing.T) {
	t1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	snap := store.New(nil)
	snap.Comments = []model.Comment{
		{ID: "c2", Author: "", Content: "newer", CreatedAt: t1.Add(time.Hour)},
		{ID: "c1", Author: "강연석", Content: "older", CreatedAt: t1},
	}

	rows := view.CommentFeed(snap)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}
	// Stored order (server-sorted newest first) is preserved as-is.
	if rows[0].CommentID != "c2" || rows[1].CommentID != "c1" {
		t.Fatalf("order = %s, %s", rows[0].CommentID, rows[1].CommentID)
	}
	if rows[0].Author != view.AnonymousAuthor {
		t.Fatalf("empty author rendered as %q, want %q", rows[0].Author, view.AnonymousAuthor)
	}
	if rows[1].Author != "강연석" {
		t.Fatalf("author = %q", rows[1].Author)
	}
}
