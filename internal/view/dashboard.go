// Package view projects the store snapshot into plain view-model structs.
//
// Every function here is a pure function of the snapshot (plus explicit
// parameters such as filters or the current time). Nothing in this package
// touches the network or retains render state; the TUI and CLI surfaces are
// thin adapters over these models.
package view

import (
	"sort"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
)

// urgentWindow is how far ahead a due date may fall for a task to count as
// urgent on the dashboard.
const urgentWindow = 7 * 24 * time.Hour

// urgentListMax caps the "soonest due" list on the dashboard.
const urgentListMax = 5

type DashboardVM struct {
	Pending    int
	InProgress int
	Completed  int
	// Urgent counts incomplete tasks whose due date falls within
	// [now, now+7d] inclusive.
	Urgent int

	// UrgentTasks lists the soonest-due incomplete tasks that have a due
	// date, ascending, at most five.
	UrgentTasks []UrgentRow

	// Donut is the status distribution for the summary chart.
	Donut []DonutSegment
}

type UrgentRow struct {
	TaskID   string
	Title    string
	Assignee string
	Priority model.Priority
	Due      time.Time
}

type DonutSegment struct {
	Label string
	Count int
	// Color is the widget-facing hex color for this segment.
	Color string
}

func Dashboard(snap *store.Snapshot, now time.Time) DashboardVM {
	vm := DashboardVM{}
	deadline := now.Add(urgentWindow)

	var withDue []model.Task
	for _, t := range snap.Tasks {
		switch t.Status {
		case model.StatusPending:
			vm.Pending++
		case model.StatusInProgress:
			vm.InProgress++
		case model.StatusCompleted:
			vm.Completed++
		}

		if t.Status == model.StatusCompleted || t.DueDate == nil {
			continue
		}
		due := *t.DueDate
		if !due.Before(now) && !due.After(deadline) {
			vm.Urgent++
		}
		withDue = append(withDue, t)
	}

	sort.SliceStable(withDue, func(i, j int) bool {
		return withDue[i].DueDate.Before(*withDue[j].DueDate)
	})
	if len(withDue) > urgentListMax {
		withDue = withDue[:urgentListMax]
	}
	for _, t := range withDue {
		vm.UrgentTasks = append(vm.UrgentTasks, UrgentRow{
			TaskID:   t.ID,
			Title:    t.Title,
			Assignee: assigneeLabel(snap, t.AssigneeID),
			Priority: t.Priority,
			Due:      *t.DueDate,
		})
	}

	vm.Donut = []DonutSegment{
		{Label: model.StatusPending.Label(), Count: vm.Pending, Color: colorYellow},
		{Label: model.StatusInProgress.Label(), Count: vm.InProgress, Color: colorIndigo},
		{Label: model.StatusCompleted.Label(), Count: vm.Completed, Color: colorGreen},
	}
	return vm
}
