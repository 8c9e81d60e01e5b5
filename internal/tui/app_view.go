package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m appModel) View() string {
	if m.width == 0 || !m.ready {
		return styleMuted().Render("Loading department data…")
	}

	if m.modal != modalNone {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.renderModal())
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := lipgloss.NewStyle().
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(m.renderPage(bodyHeight))

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

func (m appModel) renderPage(height int) string {
	switch m.page {
	case pageDashboard:
		return m.renderDashboard()
	case pageTasks:
		return m.renderTasks(height)
	case pageCalendar:
		return m.renderCalendar()
	case pageKanban:
		return m.renderKanban(height)
	case pageStaff:
		return m.renderStaff()
	case pageStats:
		return m.renderStats()
	case pageComments:
		return m.renderComments(height)
	}
	return ""
}

func (m appModel) renderHeader() string {
	active := lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	var tabs []string
	for _, p := range pageOrder {
		label := pageTitles[p]
		if p == m.page {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, styleMuted().Render(label))
		}
	}

	title := lipgloss.NewStyle().Bold(true).Render(pageTitle(m.page))
	nav := strings.Join(tabs, styleMuted().Render(" · "))
	line := truncate(title+"  "+nav, m.width)

	rule := styleMuted().Render(strings.Repeat("─", m.width))
	return line + "\n" + rule
}

func (m appModel) renderFooter() string {
	if m.minibufferText != "" {
		return lipgloss.NewStyle().Foreground(colorUrgent).Render(truncate(m.minibufferText, m.width))
	}
	return styleMuted().Render(truncate(m.footerHelp(), m.width))
}

func (m appModel) footerHelp() string {
	base := "tab: page   1-7: jump   r: reload   q: quit"
	switch m.page {
	case pageTasks:
		if m.searchFocused {
			return "enter/esc: done searching"
		}
		return "/: search   a: assignee   s: status   x: clear   n: new   enter: edit   d: delete   " + base
	case pageCalendar:
		return "arrows: day   H/L: month   t: today   n: new on day   enter: open   " + base
	case pageKanban:
		return "arrows: card   n: new   enter: edit   " + base
	case pageStaff:
		return "j/k: select   n: new   enter: edit   d: delete   " + base
	case pageComments:
		if m.composing {
			return "tab: author/body   ctrl+s: post   esc: cancel"
		}
		return "j/k: select   n: comment   d: delete   " + base
	}
	return base
}

func (m appModel) renderModal() string {
	switch m.modal {
	case modalTaskForm:
		if m.taskForm != nil {
			return m.taskForm.render(m.width)
		}
	case modalStaffForm:
		if m.staffForm != nil {
			return m.staffForm.render(m.width)
		}
	case modalConfirmDelete:
		return renderConfirmModal(m.width, "Confirm delete", m.deletePrompt, "Delete", "Cancel", m.confirmFocus)
	case modalError:
		return renderErrorModal(m.width, m.errText)
	}
	return ""
}

// truncate cuts a styled line to the terminal width without breaking escape
// sequences.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}
