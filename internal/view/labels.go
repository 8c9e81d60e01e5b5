package view

import "deptboard/internal/store"

// UnassignedLabel is rendered wherever a task has no resolvable assignee,
// including tasks whose assignee was deleted after assignment.
const UnassignedLabel = "unassigned"

// Widget-facing colors. The two pending hues differ on purpose: calendar
// events use the darker amber, the donut's pending segment the lighter one.
const (
	colorGreen  = "#10b981"
	colorRed    = "#f43f5e"
	colorAmber  = "#f59e0b"
	colorYellow = "#fbbf24"
	colorIndigo = "#6366f1"
)

func assigneeLabel(snap *store.Snapshot, id string) string {
	if name := snap.AssigneeName(id); name != "" {
		return name
	}
	return UnassignedLabel
}
