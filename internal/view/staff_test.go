package view_test

import (
	"testing"

	"deptboard/internal/model"
	"deptboard/internal/store"
	"deptboard/internal/view"
)

func TestSplitResponsibilities(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"a, b, c", []string{"a", "b", "c"}},
		{"a\nb\nc", []string{"a", "b", "c"}},
		{" budget ,\n reports ", []string{"budget", "reports"}},
		{",,\n,", nil},
		{"단일 업무", []string{"단일 업무"}},
	}
	for _, tc := range cases {
		got := view.SplitResponsibilities(tc.in)
		if len(got) != len(tc.want) {
			t.Fatalf("SplitResponsibilities(%q) = %v, want %v", tc.in, got, tc.want)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("SplitResponsibilities(%q) = %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestStaffManagerFlag(t *testing.T) {
	snap := store.New(nil)
	snap.ReplaceUsers([]model.User{
		{ID: "u1", Name: "강연석", Position: "처장"},
		{ID: "u2", Name: "이진중", Position: "과장"},
		{ID: "u3", Name: "이혜진", Position: "주무관"},
	})

	cards := view.Staff(snap, nil)
	if len(cards) != 3 {
		t.Fatalf("got %d cards, want 3", len(cards))
	}
	for _, c := range cards {
		wantManager := c.Position == "처장" || c.Position == "과장"
		if c.IsManager != wantManager {
			t.Errorf("%s (%s): IsManager = %v, want %v", c.Name, c.Position, c.IsManager, wantManager)
		}
	}
}

func TestStaffCustomManagerPositions(t *testing.T) {
	snap := store.New(nil)
	snap.ReplaceUsers([]model.User{{ID: "u1", Name: "강연석", Position: "팀장"}})

	cards := view.Staff(snap, []string{"팀장"})
	if !cards[0].IsManager {
		t.Fatal("custom manager position not honored")
	}

	cards = view.Staff(snap, []string{})
	if cards[0].IsManager {
		t.Fatal("empty (non-nil) positions should flag nobody")
	}
}
