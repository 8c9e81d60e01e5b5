package tui

import (
	"strings"
	"time"

	"deptboard/internal/api"
	"deptboard/internal/model"
	"deptboard/internal/store"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

const dueInputLayout = "2006-01-02T15:04"

// Task form focus positions.
const (
	taskFocusTitle = iota
	taskFocusAssignee
	taskFocusDue
	taskFocusPriority
	taskFocusStatus
	taskFocusRequester
	taskFocusDesc
	taskFocusSubmit
	taskFocusCount
)

type taskForm struct {
	id string // empty means create

	title     textinput.Model
	due       textinput.Model
	requester textinput.Model
	desc      textarea.Model

	// Assignee is picked by cycling through the snapshot's users; index 0
	// is "unassigned".
	assigneeIdx   int
	assigneeIDs   []string
	assigneeNames []string

	priority model.Priority
	status   model.Status

	focus      int
	submitting bool
}

// newTaskForm resets the form and either populates it from the record being
// edited or seeds creation defaults: status pending, due date from the
// clicked calendar day or, absent one, the current local time.
func newTaskForm(snap *store.Snapshot, existing *model.Task, defaultDate *time.Time, now time.Time) *taskForm {
	f := &taskForm{
		priority: model.PriorityMedium,
		status:   model.StatusPending,
	}

	f.title = textinput.New()
	f.title.Placeholder = "Title"
	f.title.CharLimit = 200
	f.title.Width = 40

	f.due = textinput.New()
	f.due.Placeholder = dueInputLayout
	f.due.CharLimit = len(dueInputLayout)
	f.due.Width = 20

	f.requester = textinput.New()
	f.requester.Placeholder = "Requester"
	f.requester.CharLimit = 100
	f.requester.Width = 30

	f.desc = textarea.New()
	f.desc.Placeholder = "Description"
	f.desc.CharLimit = 0
	f.desc.SetWidth(56)
	f.desc.SetHeight(4)
	f.desc.ShowLineNumbers = false

	f.assigneeIDs = []string{""}
	f.assigneeNames = []string{"unassigned"}
	for _, u := range snap.Users {
		f.assigneeIDs = append(f.assigneeIDs, u.ID)
		label := u.Name
		if u.Position != "" {
			label += " (" + u.Position + ")"
		}
		f.assigneeNames = append(f.assigneeNames, label)
	}

	if existing != nil {
		f.id = existing.ID
		f.title.SetValue(existing.Title)
		f.requester.SetValue(existing.RequesterName)
		f.desc.SetValue(existing.Description)
		f.priority = existing.Priority
		f.status = existing.Status
		if existing.DueDate != nil {
			f.due.SetValue(existing.DueDate.Local().Format(dueInputLayout))
		}
		for i, id := range f.assigneeIDs {
			if id != "" && id == existing.AssigneeID {
				f.assigneeIdx = i
				break
			}
		}
	} else {
		switch {
		case defaultDate != nil:
			f.due.SetValue(defaultDate.Local().Format("2006-01-02") + "T09:00")
		default:
			f.due.SetValue(now.Local().Format(dueInputLayout))
		}
	}

	f.setFocus(taskFocusTitle)
	return f
}

func (f *taskForm) setFocus(focus int) {
	f.focus = focus
	f.title.Blur()
	f.due.Blur()
	f.requester.Blur()
	f.desc.Blur()
	switch focus {
	case taskFocusTitle:
		f.title.Focus()
	case taskFocusDue:
		f.due.Focus()
	case taskFocusRequester:
		f.requester.Focus()
	case taskFocusDesc:
		f.desc.Focus()
	}
}

func (f *taskForm) cycleFocus(delta int) {
	f.setFocus(((f.focus+delta)%taskFocusCount + taskFocusCount) % taskFocusCount)
}

func (f *taskForm) cycleAssignee(delta int) {
	n := len(f.assigneeIDs)
	f.assigneeIdx = ((f.assigneeIdx+delta)%n + n) % n
}

var priorityCycle = []model.Priority{model.PriorityHigh, model.PriorityMedium, model.PriorityLow}

var statusCycle = []model.Status{model.StatusPending, model.StatusInProgress, model.StatusCompleted, model.StatusHold}

func (f *taskForm) cyclePriority(delta int) {
	f.priority = cycleEnum(priorityCycle, f.priority, delta)
}

func (f *taskForm) cycleStatus(delta int) {
	f.status = cycleEnum(statusCycle, f.status, delta)
}

func cycleEnum[T comparable](options []T, cur T, delta int) T {
	idx := 0
	for i, o := range options {
		if o == cur {
			idx = i
			break
		}
	}
	n := len(options)
	return options[((idx+delta)%n+n)%n]
}

// fields assembles the submission payload. The due date parses leniently:
// blank means no due date, a bare date gets 09:00.
func (f *taskForm) fields() (api.TaskFields, error) {
	var due *time.Time
	if s := strings.TrimSpace(f.due.Value()); s != "" {
		t, err := time.ParseInLocation(dueInputLayout, s, time.Local)
		if err != nil {
			t, err = time.ParseInLocation("2006-01-02", s, time.Local)
			if err != nil {
				return api.TaskFields{}, err
			}
			t = t.Add(9 * time.Hour)
		}
		due = &t
	}
	return api.TaskFields{
		Title:         strings.TrimSpace(f.title.Value()),
		AssigneeID:    f.assigneeIDs[f.assigneeIdx],
		DueDate:       due,
		Priority:      f.priority,
		Status:        f.status,
		RequesterName: strings.TrimSpace(f.requester.Value()),
		Description:   f.desc.Value(),
	}, nil
}

// Staff form focus positions.
const (
	staffFocusName = iota
	staffFocusPosition
	staffFocusRole
	staffFocusSubmit
	staffFocusCount
)

type staffForm struct {
	id string

	name     textinput.Model
	position textinput.Model
	role     textarea.Model

	focus      int
	submitting bool
}

func newStaffForm(existing *model.User) *staffForm {
	f := &staffForm{}

	f.name = textinput.New()
	f.name.Placeholder = "Name"
	f.name.CharLimit = 100
	f.name.Width = 30

	f.position = textinput.New()
	f.position.Placeholder = "Position"
	f.position.CharLimit = 100
	f.position.Width = 30

	f.role = textarea.New()
	f.role.Placeholder = "Responsibilities (comma or newline separated)"
	f.role.CharLimit = 0
	f.role.SetWidth(56)
	f.role.SetHeight(4)
	f.role.ShowLineNumbers = false

	if existing != nil {
		f.id = existing.ID
		f.name.SetValue(existing.Name)
		f.position.SetValue(existing.Position)
		f.role.SetValue(existing.RoleDescription)
	}

	f.setFocus(staffFocusName)
	return f
}

func (f *staffForm) setFocus(focus int) {
	f.focus = focus
	f.name.Blur()
	f.position.Blur()
	f.role.Blur()
	switch focus {
	case staffFocusName:
		f.name.Focus()
	case staffFocusPosition:
		f.position.Focus()
	case staffFocusRole:
		f.role.Focus()
	}
}

func (f *staffForm) cycleFocus(delta int) {
	f.setFocus(((f.focus+delta)%staffFocusCount + staffFocusCount) % staffFocusCount)
}

func (f *staffForm) fields() api.UserFields {
	return api.UserFields{
		Name:            strings.TrimSpace(f.name.Value()),
		Position:        strings.TrimSpace(f.position.Value()),
		RoleDescription: f.role.Value(),
	}
}

// Render helpers shared by both modal forms.

func fieldLabel(label string, focused bool) string {
	st := lipgloss.NewStyle().Width(11)
	if focused {
		st = st.Bold(true).Foreground(colorAccent)
	}
	return st.Render(label)
}

func cycleValue(value string, focused bool) string {
	if focused {
		return lipgloss.NewStyle().Background(colorSelected).Bold(true).Render("< " + value + " >")
	}
	return value
}

func submitButton(label string, submitting, focused bool) string {
	if submitting {
		label = "Saving…"
	}
	st := lipgloss.NewStyle().Padding(0, 1)
	if focused && !submitting {
		st = st.Background(colorSelected).Bold(true)
	}
	return st.Render(label)
}

func (f *taskForm) render(width int) string {
	title := "New task"
	submit := "Create"
	if f.id != "" {
		title = "Edit task"
		submit = "Save"
	}

	rows := []string{
		fieldLabel("Title", f.focus == taskFocusTitle) + f.title.View(),
		fieldLabel("Assignee", f.focus == taskFocusAssignee) + cycleValue(f.assigneeNames[f.assigneeIdx], f.focus == taskFocusAssignee),
		fieldLabel("Due", f.focus == taskFocusDue) + f.due.View(),
		fieldLabel("Priority", f.focus == taskFocusPriority) + cycleValue(f.priority.Label(), f.focus == taskFocusPriority),
		fieldLabel("Status", f.focus == taskFocusStatus) + cycleValue(f.status.Label(), f.focus == taskFocusStatus),
		fieldLabel("Requester", f.focus == taskFocusRequester) + f.requester.View(),
		fieldLabel("Details", f.focus == taskFocusDesc),
		f.desc.View(),
		"",
		submitButton(submit, f.submitting, f.focus == taskFocusSubmit),
		"",
		styleMuted().Render("tab: next field   ←/→: change value   enter: submit   esc: cancel"),
	}
	return renderModalBox(width, title, strings.Join(rows, "\n"))
}

func (f *staffForm) render(width int) string {
	title := "New staff member"
	submit := "Create"
	if f.id != "" {
		title = "Edit staff member"
		submit = "Save"
	}

	rows := []string{
		fieldLabel("Name", f.focus == staffFocusName) + f.name.View(),
		fieldLabel("Position", f.focus == staffFocusPosition) + f.position.View(),
		fieldLabel("Duties", f.focus == staffFocusRole),
		f.role.View(),
		"",
		submitButton(submit, f.submitting, f.focus == staffFocusSubmit),
		"",
		styleMuted().Render("tab: next field   enter: submit   esc: cancel"),
	}
	return renderModalBox(width, title, strings.Join(rows, "\n"))
}
