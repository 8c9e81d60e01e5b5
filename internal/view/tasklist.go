package view

import (
	"strings"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
)

// Filter narrows the task list. The three predicates are independent and
// combined with AND; zero values disable a predicate.
type Filter struct {
	AssigneeID string
	Status     model.Status
	// Search is a case-insensitive substring match on the title.
	Search string
}

func (f Filter) matches(t model.Task) bool {
	if f.AssigneeID != "" && t.AssigneeID != f.AssigneeID {
		return false
	}
	if f.Status != "" && t.Status != f.Status {
		return false
	}
	if f.Search != "" && !strings.Contains(strings.ToLower(t.Title), strings.ToLower(f.Search)) {
		return false
	}
	return true
}

type TaskRow struct {
	TaskID   string
	Title    string
	Assignee string
	Priority model.Priority
	Status   model.Status
	Due      *time.Time
}

// TaskList applies the filter to the snapshot's tasks, preserving their
// stored order. An empty result is the renderer's cue for the placeholder
// row.
func TaskList(snap *store.Snapshot, f Filter) []TaskRow {
	var rows []TaskRow
	for _, t := range snap.Tasks {
		if !f.matches(t) {
			continue
		}
		rows = append(rows, TaskRow{
			TaskID:   t.ID,
			Title:    t.Title,
			Assignee: assigneeLabel(snap, t.AssigneeID),
			Priority: t.Priority,
			Status:   t.Status,
			Due:      t.DueDate,
		})
	}
	return rows
}
