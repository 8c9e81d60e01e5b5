package tui

import (
	"errors"
	"testing"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/store"
)

func testModel() appModel {
	fixed := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	due := fixed.Add(48 * time.Hour)

	snap := store.New(nil)
	snap.ReplaceUsers([]model.User{
		{ID: "u1", Name: "강연석", Position: "처장", RoleDescription: "예산, 보고"},
		{ID: "u2", Name: "이진중", Position: "주무관"},
	})
	snap.Tasks = []model.Task{
		{ID: "t1", Title: "report", AssigneeID: "u1", DueDate: &due, Priority: model.PriorityHigh, Status: model.StatusPending},
		{ID: "t2", Title: "cleanup", Status: model.StatusHold},
	}
	snap.Comments = []model.Comment{
		{ID: "c1", Author: "", Content: "hello", CreatedAt: fixed},
	}

	m := newAppModel(snap)
	m.width = 100
	m.height = 40
	m.ready = true
	m.now = func() time.Time { return fixed }
	m.calDay = fixed
	return m
}

func TestSetPageIsRepeatable(t *testing.T) {
	for _, p := range pageOrder {
		m := testModel()
		m.setPage(p)
		first := m.View()
		m.setPage(p)
		if got := m.View(); got != first {
			t.Fatalf("page %v: second render differs from first", p)
		}
	}
}

func TestSetPageByIDUnknownIsNoop(t *testing.T) {
	m := testModel()
	m.setPage(pageKanban)
	m.setPageByID("nonexistent")
	if m.page != pageKanban {
		t.Fatalf("page changed to %v on unknown id", m.page)
	}

	m.setPageByID("staff")
	if m.page != pageStaff {
		t.Fatalf("page = %v, want staff", m.page)
	}
}

func TestPageTitleFallback(t *testing.T) {
	if got := pageTitle(page(99)); got != fallbackTitle {
		t.Fatalf("pageTitle(99) = %q, want %q", got, fallbackTitle)
	}
	if got := pageTitle(pageCalendar); got != "Task calendar" {
		t.Fatalf("pageTitle(calendar) = %q", got)
	}
}

func TestNextPageWraps(t *testing.T) {
	if got := nextPage(pageComments, 1); got != pageDashboard {
		t.Fatalf("forward wrap = %v", got)
	}
	if got := nextPage(pageDashboard, -1); got != pageComments {
		t.Fatalf("backward wrap = %v", got)
	}
}

func TestClampSelectionsAfterShrink(t *testing.T) {
	m := testModel()
	m.taskIdx = 5
	m.staffIdx = 5
	m.commentIdx = 5
	m.clampSelections()

	if m.taskIdx != 1 {
		t.Fatalf("taskIdx = %d, want 1", m.taskIdx)
	}
	if m.staffIdx != 1 {
		t.Fatalf("staffIdx = %d, want 1", m.staffIdx)
	}
	if m.commentIdx != 0 {
		t.Fatalf("commentIdx = %d, want 0", m.commentIdx)
	}
}

func TestMutationFailureKeepsFormOpen(t *testing.T) {
	m := testModel()
	m.openTaskForm(nil, nil)
	m.taskForm.submitting = true

	next, _ := m.handleMutationDone(mutationDoneMsg{op: opTaskSave, err: errors.New("backend down")})
	got := next.(appModel)

	if got.taskForm == nil {
		t.Fatal("form discarded on failure")
	}
	if got.taskForm.submitting {
		t.Fatal("submit control not re-enabled after failure")
	}
	if got.modal != modalError {
		t.Fatalf("modal = %v, want error modal", got.modal)
	}
	if got.errText == "" {
		t.Fatal("error text not set")
	}
}

func TestMutationSuccessClosesForm(t *testing.T) {
	m := testModel()
	m.openTaskForm(nil, nil)
	m.taskForm.submitting = true

	next, cmd := m.handleMutationDone(mutationDoneMsg{op: opTaskSave})
	got := next.(appModel)

	if got.taskForm != nil || got.modal != modalNone {
		t.Fatalf("form not closed: modal=%v", got.modal)
	}
	if cmd == nil {
		t.Fatal("no reload command issued after successful save")
	}
}
