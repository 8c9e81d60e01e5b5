package tui

import (
	"context"
	"strings"
	"time"

	"deptboard/internal/api"
	"deptboard/internal/model"
	"deptboard/internal/view"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd {
	// Startup loads run sequentially (users, tasks, comments) so the first
	// full render always sees the same "ready" shape. The loads themselves
	// are independent.
	return m.loadUsersCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case usersLoadedMsg:
		if msg.err == nil {
			m.snap.ReplaceUsers(msg.users)
		}
		m.noteLoad("users", msg.err)
		m.clampSelections()
		if !m.ready {
			return m, m.loadTasksCmd()
		}
		return m, nil

	case tasksLoadedMsg:
		if msg.err == nil {
			m.snap.ReplaceTasks(msg.tasks)
		}
		m.noteLoad("tasks", msg.err)
		m.clampSelections()
		if !m.ready {
			return m, m.loadCommentsCmd()
		}
		return m, nil

	case commentsLoadedMsg:
		if msg.err == nil {
			m.snap.ReplaceComments(msg.comments)
		}
		m.noteLoad("comments", msg.err)
		m.ready = true
		m.clampSelections()
		return m, nil

	case mutationDoneMsg:
		return m.handleMutationDone(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleMutationDone is the single cleanup point after a write round trip:
// the submit control is always re-enabled, even on failure.
func (m appModel) handleMutationDone(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if m.taskForm != nil {
		m.taskForm.submitting = false
	}
	if m.staffForm != nil {
		m.staffForm.submitting = false
	}
	m.commentBusy = false

	if msg.err != nil {
		// Blocking alert; the form stays open underneath.
		m.errText = msg.err.Error()
		m.modal = modalError
		return m, nil
	}

	switch msg.op {
	case opTaskSave, opTaskDelete:
		m.closeForms()
		return m, m.loadTasksCmd()
	case opStaffSave, opStaffDelete:
		m.closeForms()
		return m, m.loadUsersCmd()
	case opCommentAdd:
		m.commentBody.SetValue("")
		m.composing = false
		return m, m.loadCommentsCmd()
	case opCommentDelete:
		m.closeForms()
		return m, m.loadCommentsCmd()
	}
	return m, nil
}

func (m *appModel) closeForms() {
	m.modal = modalNone
	m.taskForm = nil
	m.staffForm = nil
	m.deleteID = ""
	m.deletePrompt = ""
	m.confirmFocus = confirmFocusCancel
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Modals capture all input.
	switch m.modal {
	case modalError:
		switch msg.String() {
		case "enter", "esc":
			m.errText = ""
			// Return to the form the error interrupted, if any.
			switch {
			case m.taskForm != nil:
				m.modal = modalTaskForm
			case m.staffForm != nil:
				m.modal = modalStaffForm
			default:
				m.modal = modalNone
			}
		}
		return m, nil
	case modalConfirmDelete:
		return m.updateConfirmKeys(msg)
	case modalTaskForm:
		return m.updateTaskFormKeys(msg)
	case modalStaffForm:
		return m.updateStaffFormKeys(msg)
	}

	if m.composing {
		return m.updateComposerKeys(msg)
	}
	if m.searchFocused {
		return m.updateSearchKeys(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.minibufferText = ""
		return m, tea.Sequence(m.loadUsersCmd(), m.loadTasksCmd(), m.loadCommentsCmd())
	case "tab":
		m.setPage(nextPage(m.page, 1))
		return m, nil
	case "shift+tab":
		m.setPage(nextPage(m.page, -1))
		return m, nil
	case "1", "2", "3", "4", "5", "6", "7":
		m.setPage(pageOrder[int(msg.String()[0]-'1')])
		return m, nil
	}

	return m.updatePageKeys(msg)
}

func nextPage(p page, delta int) page {
	idx := 0
	for i, q := range pageOrder {
		if q == p {
			idx = i
			break
		}
	}
	n := len(pageOrder)
	return pageOrder[((idx+delta)%n+n)%n]
}

func (m appModel) updatePageKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.page {
	case pageTasks:
		return m.updateTasksKeys(msg)
	case pageCalendar:
		return m.updateCalendarKeys(msg)
	case pageKanban:
		return m.updateKanbanKeys(msg)
	case pageStaff:
		return m.updateStaffKeys(msg)
	case pageComments:
		return m.updateCommentsKeys(msg)
	}
	return m, nil
}

// --- Task list page ---

func (m *appModel) filteredTasks() []view.TaskRow {
	return view.TaskList(m.snap, view.Filter{
		AssigneeID: m.filterAssignee,
		Status:     model.Status(m.filterStatus),
		Search:     m.searchInput.Value(),
	})
}

var statusFilterCycle = []string{"", "pending", "in_progress", "completed", "hold"}

func (m *appModel) cycleAssigneeFilter() {
	ids := []string{""}
	for _, u := range m.snap.Users {
		ids = append(ids, u.ID)
	}
	idx := 0
	for i, id := range ids {
		if id == m.filterAssignee {
			idx = i
			break
		}
	}
	m.filterAssignee = ids[(idx+1)%len(ids)]
	m.taskIdx = 0
}

func (m appModel) updateTasksKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.filteredTasks()
	switch msg.String() {
	case "/":
		m.searchFocused = true
		m.searchInput.Focus()
		return m, nil
	case "a":
		m.cycleAssigneeFilter()
		return m, nil
	case "s":
		idx := 0
		for i, s := range statusFilterCycle {
			if s == m.filterStatus {
				idx = i
				break
			}
		}
		m.filterStatus = statusFilterCycle[(idx+1)%len(statusFilterCycle)]
		m.taskIdx = 0
		return m, nil
	case "x":
		m.filterAssignee = ""
		m.filterStatus = ""
		m.searchInput.SetValue("")
		m.taskIdx = 0
		return m, nil
	case "up", "k":
		m.taskIdx = clampIdx(m.taskIdx-1, len(rows))
		return m, nil
	case "down", "j":
		m.taskIdx = clampIdx(m.taskIdx+1, len(rows))
		return m, nil
	case "n":
		m.openTaskForm(nil, nil)
		return m, nil
	case "enter", "e":
		if m.taskIdx < len(rows) {
			if t, ok := m.snap.TaskByID(rows[m.taskIdx].TaskID); ok {
				m.openTaskForm(&t, nil)
			}
		}
		return m, nil
	case "d":
		if m.taskIdx < len(rows) {
			m.openDeleteConfirm(deleteTargetTask, rows[m.taskIdx].TaskID,
				"Delete task \""+rows[m.taskIdx].Title+"\"?")
		}
		return m, nil
	}
	return m, nil
}

func (m appModel) updateSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "enter":
		m.searchFocused = false
		m.searchInput.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.taskIdx = 0
	return m, cmd
}

// --- Calendar page ---

func (m appModel) updateCalendarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		m.calDay = m.calDay.AddDate(0, 0, -1)
	case "right", "l":
		m.calDay = m.calDay.AddDate(0, 0, 1)
	case "up", "k":
		m.calDay = m.calDay.AddDate(0, 0, -7)
	case "down", "j":
		m.calDay = m.calDay.AddDate(0, 0, 7)
	case "pgup", "H":
		m.calDay = m.calDay.AddDate(0, -1, 0)
	case "pgdown", "L":
		m.calDay = m.calDay.AddDate(0, 1, 0)
	case "t":
		m.calDay = m.now()
	case "n":
		day := m.calDay
		m.openTaskForm(nil, &day)
	case "enter":
		// A day with events opens the first event's edit form; an empty
		// day opens creation pre-filled with that date.
		events := view.EventsOn(view.Calendar(m.snap), m.calDay)
		if len(events) > 0 {
			if t, ok := m.snap.TaskByID(events[0].TaskID); ok {
				m.openTaskForm(&t, nil)
			}
		} else {
			day := m.calDay
			m.openTaskForm(nil, &day)
		}
	}
	return m, nil
}

// --- Kanban page ---

func (m appModel) updateKanbanKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := view.Kanban(m.snap)
	switch msg.String() {
	case "left", "h":
		m.kanbanCol = clampIdx(m.kanbanCol-1, len(cols))
		m.kanbanRow = clampIdx(m.kanbanRow, len(cols[m.kanbanCol].Cards))
	case "right", "l":
		m.kanbanCol = clampIdx(m.kanbanCol+1, len(cols))
		m.kanbanRow = clampIdx(m.kanbanRow, len(cols[m.kanbanCol].Cards))
	case "up", "k":
		m.kanbanRow = clampIdx(m.kanbanRow-1, len(cols[m.kanbanCol].Cards))
	case "down", "j":
		m.kanbanRow = clampIdx(m.kanbanRow+1, len(cols[m.kanbanCol].Cards))
	case "n":
		m.openTaskForm(nil, nil)
	case "enter", "e":
		cards := cols[m.kanbanCol].Cards
		if m.kanbanRow < len(cards) {
			if t, ok := m.snap.TaskByID(cards[m.kanbanRow].TaskID); ok {
				m.openTaskForm(&t, nil)
			}
		}
	}
	return m, nil
}

// --- Staff page ---

func (m appModel) updateStaffKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.staffIdx = clampIdx(m.staffIdx-1, len(m.snap.Users))
	case "down", "j":
		m.staffIdx = clampIdx(m.staffIdx+1, len(m.snap.Users))
	case "n":
		m.staffForm = newStaffForm(nil)
		m.modal = modalStaffForm
	case "enter", "e":
		if m.staffIdx < len(m.snap.Users) {
			u := m.snap.Users[m.staffIdx]
			m.staffForm = newStaffForm(&u)
			m.modal = modalStaffForm
		}
	case "d":
		if m.staffIdx < len(m.snap.Users) {
			u := m.snap.Users[m.staffIdx]
			m.openDeleteConfirm(deleteTargetStaff, u.ID,
				"Delete "+u.Name+"? Their tasks are kept but lose the assignee label.")
		}
	}
	return m, nil
}

// --- Comments page ---

func (m appModel) updateCommentsKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		m.commentIdx = clampIdx(m.commentIdx-1, len(m.snap.Comments))
	case "down", "j":
		m.commentIdx = clampIdx(m.commentIdx+1, len(m.snap.Comments))
	case "n":
		m.composing = true
		m.commentAuthor.Blur()
		m.commentBody.Focus()
	case "d":
		if m.commentIdx < len(m.snap.Comments) {
			m.openDeleteConfirm(deleteTargetComment, m.snap.Comments[m.commentIdx].ID,
				"Delete this comment?")
		}
	}
	return m, nil
}

func (m appModel) updateComposerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.commentBusy {
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.composing = false
		m.commentAuthor.Blur()
		m.commentBody.Blur()
		return m, nil
	case "tab":
		if m.commentBody.Focused() {
			m.commentBody.Blur()
			m.commentAuthor.Focus()
		} else {
			m.commentAuthor.Blur()
			m.commentBody.Focus()
		}
		return m, nil
	case "ctrl+s":
		// Empty content aborts silently, without a network call.
		if strings.TrimSpace(m.commentBody.Value()) == "" {
			return m, nil
		}
		m.commentBusy = true
		return m, m.addCommentCmd(m.commentAuthor.Value(), m.commentBody.Value())
	}

	var cmd tea.Cmd
	if m.commentBody.Focused() {
		m.commentBody, cmd = m.commentBody.Update(msg)
	} else {
		m.commentAuthor, cmd = m.commentAuthor.Update(msg)
	}
	return m, cmd
}

// --- Modal forms ---

func (m *appModel) openTaskForm(existing *model.Task, defaultDate *time.Time) {
	m.taskForm = newTaskForm(m.snap, existing, defaultDate, m.now())
	m.modal = modalTaskForm
}

func (m *appModel) openDeleteConfirm(target deleteTarget, id, prompt string) {
	m.deleteTarget = target
	m.deleteID = id
	m.deletePrompt = prompt
	m.confirmFocus = confirmFocusCancel
	m.modal = modalConfirmDelete
}

func (m appModel) updateTaskFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.taskForm
	if f == nil {
		m.modal = modalNone
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		f.cycleFocus(delta)
		return m, nil
	case "left", "right":
		delta := 1
		if msg.String() == "left" {
			delta = -1
		}
		switch f.focus {
		case taskFocusAssignee:
			f.cycleAssignee(delta)
			return m, nil
		case taskFocusPriority:
			f.cyclePriority(delta)
			return m, nil
		case taskFocusStatus:
			f.cycleStatus(delta)
			return m, nil
		}
	case "enter":
		if f.focus != taskFocusDesc {
			f.submitting = true
			return m, m.saveTaskCmd(f)
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case taskFocusTitle:
		f.title, cmd = f.title.Update(msg)
	case taskFocusDue:
		f.due, cmd = f.due.Update(msg)
	case taskFocusRequester:
		f.requester, cmd = f.requester.Update(msg)
	case taskFocusDesc:
		f.desc, cmd = f.desc.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateStaffFormKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.staffForm
	if f == nil {
		m.modal = modalNone
		return m, nil
	}
	if f.submitting {
		return m, nil
	}

	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "tab", "shift+tab":
		delta := 1
		if msg.String() == "shift+tab" {
			delta = -1
		}
		f.cycleFocus(delta)
		return m, nil
	case "enter":
		if f.focus != staffFocusRole {
			f.submitting = true
			return m, m.saveStaffCmd(f)
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case staffFocusName:
		f.name, cmd = f.name.Update(msg)
	case staffFocusPosition:
		f.position, cmd = f.position.Update(msg)
	case staffFocusRole:
		f.role, cmd = f.role.Update(msg)
	}
	return m, cmd
}

func (m appModel) updateConfirmKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closeForms()
		return m, nil
	case "tab", "left", "right":
		if m.confirmFocus == confirmFocusCancel {
			m.confirmFocus = confirmFocusConfirm
		} else {
			m.confirmFocus = confirmFocusCancel
		}
		return m, nil
	case "enter":
		if m.confirmFocus != confirmFocusConfirm {
			m.closeForms()
			return m, nil
		}
		target, id := m.deleteTarget, m.deleteID
		m.closeForms()
		return m, m.deleteCmd(target, id)
	}
	return m, nil
}

// --- Async commands ---

const (
	opTaskSave      = "task.save"
	opTaskDelete    = "task.delete"
	opStaffSave     = "staff.save"
	opStaffDelete   = "staff.delete"
	opCommentAdd    = "comment.add"
	opCommentDelete = "comment.delete"
)

// The load commands fetch off the event loop but never touch the snapshot;
// the decoded collections ride back in the message and Update applies them.
func (m appModel) loadUsersCmd() tea.Cmd {
	c := m.snap.Client()
	return func() tea.Msg {
		users, err := c.Users().List(context.Background(), api.ListOptions{})
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m appModel) loadTasksCmd() tea.Cmd {
	c := m.snap.Client()
	return func() tea.Msg {
		tasks, err := c.Tasks().List(context.Background(), api.ListOptions{})
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func (m appModel) loadCommentsCmd() tea.Cmd {
	c := m.snap.Client()
	return func() tea.Msg {
		comments, err := c.Comments().List(context.Background(), api.ListOptions{})
		return commentsLoadedMsg{comments: comments, err: err}
	}
}

// noteLoad records a load failure in the minibuffer and clears the notice
// once the same resource loads successfully again. A failed load keeps the
// prior collection, stale but consistent.
func (m *appModel) noteLoad(resource string, err error) {
	prefix := "load " + resource + " failed"
	if err != nil {
		m.minibufferText = prefix + ": " + err.Error()
		return
	}
	if strings.HasPrefix(m.minibufferText, prefix) {
		m.minibufferText = ""
	}
}

func (m appModel) saveTaskCmd(f *taskForm) tea.Cmd {
	fields, err := f.fields()
	if err != nil {
		return func() tea.Msg { return mutationDoneMsg{op: opTaskSave, err: err} }
	}
	snap, id := m.snap, f.id
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if id != "" {
			_, err = snap.Client().Tasks().Update(ctx, id, fields)
		} else {
			_, err = snap.Client().Tasks().Create(ctx, fields)
		}
		return mutationDoneMsg{op: opTaskSave, err: err}
	}
}

func (m appModel) saveStaffCmd(f *staffForm) tea.Cmd {
	snap, id, fields := m.snap, f.id, f.fields()
	return func() tea.Msg {
		ctx := context.Background()
		var err error
		if id != "" {
			_, err = snap.Client().Users().Update(ctx, id, fields)
		} else {
			_, err = snap.Client().Users().Create(ctx, fields)
		}
		return mutationDoneMsg{op: opStaffSave, err: err}
	}
}

func (m appModel) addCommentCmd(author, content string) tea.Cmd {
	snap := m.snap
	return func() tea.Msg {
		_, err := snap.Client().Comments().Create(context.Background(), api.CommentFields{
			Author:  strings.TrimSpace(author),
			Content: content,
		})
		return mutationDoneMsg{op: opCommentAdd, err: err}
	}
}

func (m appModel) deleteCmd(target deleteTarget, id string) tea.Cmd {
	snap := m.snap
	return func() tea.Msg {
		ctx := context.Background()
		switch target {
		case deleteTargetTask:
			return mutationDoneMsg{op: opTaskDelete, err: snap.Client().Tasks().Delete(ctx, id)}
		case deleteTargetStaff:
			return mutationDoneMsg{op: opStaffDelete, err: snap.Client().Users().Delete(ctx, id)}
		default:
			return mutationDoneMsg{op: opCommentDelete, err: snap.Client().Comments().Delete(ctx, id)}
		}
	}
}
