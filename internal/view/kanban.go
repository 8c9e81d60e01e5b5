package view

import (
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
)

type KanbanColumn struct {
	Status model.Status
	Title  string
	Cards  []KanbanCard
}

type KanbanCard struct {
	TaskID   string
	Title    string
	Assignee string
	Priority model.Priority
	Due      *time.Time
}

// bucketStatus maps a task's stored status to its display column. "hold" is
// shown under pending (display-only; the stored status is unchanged), and any
// unrecognized status also falls back to pending.
func bucketStatus(s model.Status) model.Status {
	switch s {
	case model.StatusInProgress, model.StatusCompleted:
		return s
	default:
		return model.StatusPending
	}
}

// Kanban buckets every task into the pending/in-progress/completed columns.
func Kanban(snap *store.Snapshot) []KanbanColumn {
	cols := []KanbanColumn{
		{Status: model.StatusPending, Title: model.StatusPending.Label()},
		{Status: model.StatusInProgress, Title: model.StatusInProgress.Label()},
		{Status: model.StatusCompleted, Title: model.StatusCompleted.Label()},
	}
	idx := map[model.Status]int{
		model.StatusPending:    0,
		model.StatusInProgress: 1,
		model.StatusCompleted:  2,
	}
	for _, t := range snap.Tasks {
		i := idx[bucketStatus(t.Status)]
		cols[i].Cards = append(cols[i].Cards, KanbanCard{
			TaskID:   t.ID,
			Title:    t.Title,
			Assignee: assigneeLabel(snap, t.AssigneeID),
			Priority: t.Priority,
			Due:      t.DueDate,
		})
	}
	return cols
}
