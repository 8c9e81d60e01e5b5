package tui

import (
	"time"

	"deptboard/internal/store"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
)

type appModel struct {
	snap *store.Snapshot

	width  int
	height int

	// ready flips after the startup load sequence (users, tasks, comments)
	// finishes, successfully or not.
	ready bool

	page page

	// Task list filter controls. These mirror the page's live filter
	// inputs: the list re-renders from them on every keystroke.
	searchInput   textinput.Model
	searchFocused bool
	filterAssignee string
	filterStatus   string

	// Per-page selections.
	taskIdx    int
	staffIdx   int
	commentIdx int
	kanbanCol  int
	kanbanRow  int

	// Calendar cursor.
	calDay time.Time

	modal     modalKind
	taskForm  *taskForm
	staffForm *staffForm

	// Inline comment composer on the comments page.
	composing     bool
	commentAuthor textinput.Model
	commentBody   textarea.Model
	commentBusy   bool

	// Pending delete confirmation.
	deleteTarget  deleteTarget
	deleteID      string
	deletePrompt  string
	confirmFocus  confirmFocus

	// errText backs the blocking error modal (mutation failures).
	errText string

	// minibufferText shows non-blocking notices (swallowed load failures).
	minibufferText string

	now func() time.Time
}

func newAppModel(snap *store.Snapshot) appModel {
	m := appModel{
		snap: snap,
		page: pageDashboard,
		now:  time.Now,
	}

	m.searchInput = textinput.New()
	m.searchInput.Placeholder = "Search title"
	m.searchInput.CharLimit = 100
	m.searchInput.Width = 24

	m.commentAuthor = textinput.New()
	m.commentAuthor.Placeholder = "Name (optional)"
	m.commentAuthor.CharLimit = 100
	m.commentAuthor.Width = 24

	m.commentBody = textarea.New()
	m.commentBody.Placeholder = "Write a comment…"
	m.commentBody.CharLimit = 0
	m.commentBody.SetWidth(60)
	m.commentBody.SetHeight(3)
	m.commentBody.ShowLineNumbers = false

	m.calDay = time.Now()
	return m
}

// setPage is the single page setter: it records the page (which drives both
// the visible section and the nav highlight in View) and clamps stale
// selections. Repeated calls with the same page are safe; rendering is a pure
// function of the snapshot.
func (m *appModel) setPage(p page) {
	if _, ok := pageTitles[p]; !ok {
		return
	}
	m.page = p
	m.clampSelections()
}

// setPageByID routes an external page identifier; unknown ids are a no-op.
func (m *appModel) setPageByID(id string) {
	if p, ok := pageIDs[id]; ok {
		m.setPage(p)
	}
}

func clampIdx(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m *appModel) clampSelections() {
	m.taskIdx = clampIdx(m.taskIdx, len(m.filteredTasks()))
	m.staffIdx = clampIdx(m.staffIdx, len(m.snap.Users))
	m.commentIdx = clampIdx(m.commentIdx, len(m.snap.Comments))
	m.kanbanCol = clampIdx(m.kanbanCol, 3)
}
