package view_test

import (
	"testing"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
	"deptboard/internal/view"
)

func TestEventColorPrecedence(t *testing.T) {
	cases := []struct {
		name string
		task model.Task
		want string
	}{
		{"completed beats high priority", model.Task{Status: model.StatusCompleted, Priority: model.PriorityHigh}, "#10b981"},
		{"high priority beats pending", model.Task{Status: model.StatusPending, Priority: model.PriorityHigh}, "#f43f5e"},
		{"pending default", model.Task{Status: model.StatusPending, Priority: model.PriorityLow}, "#f59e0b"},
		{"in progress default", model.Task{Status: model.StatusInProgress, Priority: model.PriorityMedium}, "#6366f1"},
		{"hold default", model.Task{Status: model.StatusHold, Priority: model.PriorityMedium}, "#6366f1"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := view.EventColor(tc.task); got != tc.want {
				t.Fatalf("EventColor = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestCalendarEvents(t *testing.T) {
	due := time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)
	snap := store.New(nil)
	snap.ReplaceUsers([]model.User{{ID: "u1", Name: "강연석"}})
	snap.Tasks = []model.Task{
		{ID: "t1", Title: "report", AssigneeID: "u1", DueDate: &due, Status: model.StatusPending},
		{ID: "t2", Title: "orphan", AssigneeID: "ghost", DueDate: &due, Status: model.StatusPending},
		{ID: "t3", Title: "no date", Status: model.StatusPending},
	}

	events := view.Calendar(snap)
	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (dateless tasks excluded)", len(events))
	}
	if events[0].Title != "강연석 - report" {
		t.Fatalf("events[0].Title = %q", events[0].Title)
	}
	// Unresolvable assignees get a bare title, no dangling separator.
	if events[1].Title != "orphan" {
		t.Fatalf("events[1].Title = %q", events[1].Title)
	}
	if !events[0].AllDay {
		t.Fatal("events should be all-day")
	}
}

func TestEventsOn(t *testing.T) {
	events := []view.Event{
		{TaskID: "t1", Start: time.Date(2026, 9, 1, 23, 30, 0, 0, time.UTC)},
		{TaskID: "t2", Start: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC)},
	}

	day := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	got := view.EventsOn(events, day)
	if len(got) != 1 || got[0].TaskID != "t1" {
		t.Fatalf("EventsOn = %+v, want just t1", got)
	}
}
