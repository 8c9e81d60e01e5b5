package view

import (
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
)

// Event is the payload handed to the calendar widget. Every task with a due
// date becomes one all-day event; tasks without one produce nothing.
type Event struct {
	TaskID string
	// Title is "<assignee> - <title>"; the assignee part is empty (not the
	// unassigned label) when the task has no resolvable assignee, matching
	// the widget's compact rendering.
	Title  string
	Start  time.Time
	AllDay bool
	Color  string
}

// EventColor classifies a task for the calendar. Precedence: completed wins
// over priority, high priority over pending, default otherwise.
func EventColor(t model.Task) string {
	switch {
	case t.Status == model.StatusCompleted:
		return colorGreen
	case t.Priority == model.PriorityHigh:
		return colorRed
	case t.Status == model.StatusPending:
		return colorAmber
	default:
		return colorIndigo
	}
}

func Calendar(snap *store.Snapshot) []Event {
	var events []Event
	for _, t := range snap.Tasks {
		if t.DueDate == nil {
			continue
		}
		title := t.Title
		if name := snap.AssigneeName(t.AssigneeID); name != "" {
			title = name + " - " + t.Title
		}
		events = append(events, Event{
			TaskID: t.ID,
			Title:  title,
			Start:  *t.DueDate,
			AllDay: true,
			Color:  EventColor(t),
		})
	}
	return events
}

// EventsOn filters events to a calendar day in the given location.
func EventsOn(events []Event, day time.Time) []Event {
	var out []Event
	y, m, d := day.Date()
	for _, ev := range events {
		ey, em, ed := ev.Start.In(day.Location()).Date()
		if ey == y && em == m && ed == d {
			out = append(out, ev)
		}
	}
	return out
}
