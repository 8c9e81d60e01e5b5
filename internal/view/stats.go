package view

import "deptboard/internal/store"

type WorkloadBar struct {
	UserID string
	Name   string
	// Count is the number of tasks whose assignee_id matches this user;
	// zero-filled for users with no tasks.
	Count int
}

// Workload produces one bar per user in snapshot (display) order. Tasks
// assigned to unknown or deleted users are not counted anywhere.
func Workload(snap *store.Snapshot) []WorkloadBar {
	counts := make(map[string]int, len(snap.Users))
	for _, u := range snap.Users {
		counts[u.ID] = 0
	}
	for _, t := range snap.Tasks {
		if _, ok := counts[t.AssigneeID]; ok {
			counts[t.AssigneeID]++
		}
	}

	var bars []WorkloadBar
	for _, u := range snap.Users {
		bars = append(bars, WorkloadBar{UserID: u.ID, Name: u.Name, Count: counts[u.ID]})
	}
	return bars
}
