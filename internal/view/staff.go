package view

import (
	"strings"

	"deptboard/internal/store"
)

// DefaultManagerPositions are the positions that get the manager card
// styling.
var DefaultManagerPositions = []string{"처장", "과장"}

type StaffCard struct {
	UserID   string
	Name     string
	Position string
	// Responsibilities is the role description split into items.
	Responsibilities []string
	IsManager        bool
}

// SplitResponsibilities splits a role description on commas and newlines,
// trims each item, and drops empties.
func SplitResponsibilities(desc string) []string {
	items := strings.FieldsFunc(desc, func(r rune) bool {
		return r == ',' || r == '\n'
	})
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// Staff builds one card per user in snapshot order. managerPositions may be
// nil to use the defaults.
func Staff(snap *store.Snapshot, managerPositions []string) []StaffCard {
	if managerPositions == nil {
		managerPositions = DefaultManagerPositions
	}
	managers := map[string]bool{}
	for _, p := range managerPositions {
		managers[p] = true
	}

	var cards []StaffCard
	for _, u := range snap.Users {
		cards = append(cards, StaffCard{
			UserID:           u.ID,
			Name:             u.Name,
			Position:         u.Position,
			Responsibilities: SplitResponsibilities(u.RoleDescription),
			IsManager:        managers[u.Position],
		})
	}
	return cards
}
