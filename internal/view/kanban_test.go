package view_test

import (
	"testing"

	"deptboard/internal/model"
	"deptboard/internal/store"
	"deptboard/internal/view"
)

func TestKanbanBucketing(t *testing.T) {
	snap := store.New(nil)
	snap.Tasks = []model.Task{
		{ID: "t1", Status: model.StatusPending},
		{ID: "t2", Status: model.StatusInProgress},
		{ID: "t3", Status: model.StatusCompleted},
		{ID: "t4", Status: model.StatusHold},
		{ID: "t5", Status: model.Status("archived")},
	}

	cols := view.Kanban(snap)
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}

	// Hold and unknown statuses are shown under pending; the stored status
	// on the task itself is unchanged.
	wantPending := []string{"t1", "t4", "t5"}
	if len(cols[0].Cards) != len(wantPending) {
		t.Fatalf("pending cards = %d, want %d", len(cols[0].Cards), len(wantPending))
	}
	for i, id := range wantPending {
		if cols[0].Cards[i].TaskID != id {
			t.Fatalf("pending[%d] = %q, want %q", i, cols[0].Cards[i].TaskID, id)
		}
	}
	if len(cols[1].Cards) != 1 || cols[1].Cards[0].TaskID != "t2" {
		t.Fatalf("in-progress column wrong: %+v", cols[1].Cards)
	}
	if len(cols[2].Cards) != 1 || cols[2].Cards[0].TaskID != "t3" {
		t.Fatalf("completed column wrong: %+v", cols[2].Cards)
	}

	if task, ok := snap.TaskByID("t4"); !ok || task.Status != model.StatusHold {
		t.Fatalf("t4 stored status changed: %+v", task)
	}
}

func TestKanbanEmptyColumns(t *testing.T) {
	cols := view.Kanban(store.New(nil))
	if len(cols) != 3 {
		t.Fatalf("got %d columns, want 3", len(cols))
	}
	for _, col := range cols {
		if len(col.Cards) != 0 {
			t.Fatalf("column %s not empty", col.Title)
		}
	}
}
