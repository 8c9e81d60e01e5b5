package view_test

import (
	"testing"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
	"deptboard/internal/view"
)

func tp(t time.Time) *time.Time { return &t }

func TestDashboardCounts(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	snap := store.New(nil)
	snap.Tasks = []model.Task{
		{ID: "a", Title: "a", Status: model.StatusPending, DueDate: tp(now.Add(48 * time.Hour))},
		{ID: "b", Title: "b", Status: model.StatusCompleted, DueDate: tp(now.Add(24 * time.Hour))},
		{ID: "c", Title: "c", Status: model.StatusHold, DueDate: tp(now.Add(72 * time.Hour))},
	}

	vm := view.Dashboard(snap, now)
	if vm.Pending != 1 || vm.InProgress != 0 || vm.Completed != 1 {
		t.Fatalf("counts = %d/%d/%d, want 1/0/1", vm.Pending, vm.InProgress, vm.Completed)
	}
	// Hold tasks count in no status widget but still qualify as urgent.
	if vm.Urgent != 2 {
		t.Fatalf("urgent = %d, want 2", vm.Urgent)
	}
}

func TestDashboardUrgentWindow(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		task   model.Task
		urgent bool
	}{
		{"due now", model.Task{Status: model.StatusPending, DueDate: tp(now)}, true},
		{"due in exactly 7 days", model.Task{Status: model.StatusPending, DueDate: tp(now.Add(7 * 24 * time.Hour))}, true},
		{"due just past 7 days", model.Task{Status: model.StatusPending, DueDate: tp(now.Add(7*24*time.Hour + time.Minute))}, false},
		{"overdue", model.Task{Status: model.StatusPending, DueDate: tp(now.Add(-time.Hour))}, false},
		{"completed in window", model.Task{Status: model.StatusCompleted, DueDate: tp(now.Add(time.Hour))}, false},
		{"no due date", model.Task{Status: model.StatusPending}, false},
		{"in progress in window", model.Task{Status: model.StatusInProgress, DueDate: tp(now.Add(time.Hour))}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			snap := store.New(nil)
			tc.task.ID = "t"
			tc.task.Title = "t"
			snap.Tasks = []model.Task{tc.task}

			vm := view.Dashboard(snap, now)
			want := 0
			if tc.urgent {
				want = 1
			}
			if vm.Urgent != want {
				t.Fatalf("urgent = %d, want %d", vm.Urgent, want)
			}
		})
	}
}

func TestDashboardUrgentListCapAndOrder(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	snap := store.New(nil)

	// Seven incomplete tasks, descending due dates, so the projection must
	// both re-sort ascending and cap at five.
	for i := 7; i >= 1; i-- {
		snap.Tasks = append(snap.Tasks, model.Task{
			ID:      string(rune('a' + i)),
			Title:   "task",
			Status:  model.StatusPending,
			DueDate: tp(now.Add(time.Duration(i) * 24 * time.Hour)),
		})
	}

	vm := view.Dashboard(snap, now)
	if len(vm.UrgentTasks) != 5 {
		t.Fatalf("urgent list len = %d, want 5", len(vm.UrgentTasks))
	}
	for i := 1; i < len(vm.UrgentTasks); i++ {
		if vm.UrgentTasks[i].Due.Before(vm.UrgentTasks[i-1].Due) {
			t.Fatalf("urgent list not ascending at %d", i)
		}
	}
}

func TestDashboardUnassignedLabel(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	snap := store.New(nil)
	snap.Tasks = []model.Task{
		{ID: "t", Title: "t", Status: model.StatusPending, AssigneeID: "ghost", DueDate: tp(now.Add(time.Hour))},
	}

	vm := view.Dashboard(snap, now)
	if len(vm.UrgentTasks) != 1 {
		t.Fatalf("urgent list len = %d, want 1", len(vm.UrgentTasks))
	}
	if vm.UrgentTasks[0].Assignee != view.UnassignedLabel {
		t.Fatalf("assignee = %q, want %q", vm.UrgentTasks[0].Assignee, view.UnassignedLabel)
	}
}

func TestDashboardDonutSegments(t *testing.T) {
	snap := store.New(nil)
	snap.Tasks = []model.Task{
		{ID: "a", Status: model.StatusPending},
		{ID: "b", Status: model.StatusPending},
		{ID: "c", Status: model.StatusInProgress},
	}

	vm := view.Dashboard(snap, time.Now())
	if len(vm.Donut) != 3 {
		t.Fatalf("donut segments = %d, want 3", len(vm.Donut))
	}
	if vm.Donut[0].Count != 2 || vm.Donut[1].Count != 1 || vm.Donut[2].Count != 0 {
		t.Fatalf("donut counts = %d/%d/%d, want 2/1/0",
			vm.Donut[0].Count, vm.Donut[1].Count, vm.Donut[2].Count)
	}
	// The donut's pending hue is the lighter amber, not the calendar's.
	wantColors := []string{"#fbbf24", "#6366f1", "#10b981"}
	for i, want := range wantColors {
		if vm.Donut[i].Color != want {
			t.Errorf("donut[%d].Color = %q, want %q", i, vm.Donut[i].Color, want)
		}
	}
}
