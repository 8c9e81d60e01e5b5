package tui

import "deptboard/internal/model"

type page int

const (
	pageDashboard page = iota
	pageTasks
	pageCalendar
	pageKanban
	pageStaff
	pageStats
	pageComments
)

// pageOrder drives nav rendering and tab cycling.
var pageOrder = []page{
	pageDashboard,
	pageTasks,
	pageCalendar,
	pageKanban,
	pageStaff,
	pageStats,
	pageComments,
}

// pageTitles is the static header-title table; unknown pages fall back to
// fallbackTitle.
var pageTitles = map[page]string{
	pageDashboard: "Dashboard",
	pageTasks:     "All tasks",
	pageCalendar:  "Task calendar",
	pageKanban:    "Kanban board",
	pageStaff:     "Staff directory",
	pageStats:     "Workload analysis",
	pageComments:  "Open feedback",
}

const fallbackTitle = "Deptboard"

func pageTitle(p page) string {
	if t, ok := pageTitles[p]; ok {
		return t
	}
	return fallbackTitle
}

// pageIDs maps external page identifiers (nav ids) to pages.
var pageIDs = map[string]page{
	"dashboard": pageDashboard,
	"tasks":     pageTasks,
	"calendar":  pageCalendar,
	"kanban":    pageKanban,
	"staff":     pageStaff,
	"stats":     pageStats,
	"comments":  pageComments,
}

type modalKind int

const (
	modalNone modalKind = iota
	modalTaskForm
	modalStaffForm
	modalConfirmDelete
	modalError
)

type deleteTarget int

const (
	deleteTargetTask deleteTarget = iota
	deleteTargetStaff
	deleteTargetComment
)

type confirmFocus int

const (
	confirmFocusCancel confirmFocus = iota
	confirmFocusConfirm
)

// Load messages carry the decoded collections. The commands that produce
// them only talk to the network; Update applies the wholesale replacement on
// the event loop, so the snapshot is never written from a command goroutine.
type usersLoadedMsg struct {
	users []model.User
	err   error
}

type tasksLoadedMsg struct {
	tasks []model.Task
	err   error
}

type commentsLoadedMsg struct {
	comments []model.Comment
	err      error
}

// mutationDoneMsg reports a create/update/delete round trip. The handler is
// the single cleanup point: it always re-enables the submitting form, then
// either closes the modal and reloads, or surfaces the error.
type mutationDoneMsg struct {
	op  string
	err error
}
