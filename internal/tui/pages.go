package tui

import (
	"fmt"
	"strings"
	"time"

	"deptboard/internal/model"
	"deptboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

func fmtDue(t *time.Time) string {
	if t == nil {
		return "no due date"
	}
	return t.Local().Format("2006-01-02 15:04")
}

func selectRow(s string, selected bool) string {
	if selected {
		return lipgloss.NewStyle().Background(colorSelected).Bold(true).Render(s)
	}
	return s
}

// --- Dashboard ---

func (m appModel) renderDashboard() string {
	vm := view.Dashboard(m.snap, m.now())

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Pending", vm.Pending, colorPending),
		statCard("In progress", vm.InProgress, colorInProgress),
		statCard("Completed", vm.Completed, colorCompleted),
		statCard("Due in 7 days", vm.Urgent, colorUrgent),
	)

	var sections []string
	sections = append(sections, cards, "")

	sections = append(sections, lipgloss.NewStyle().Bold(true).Render("Status distribution"))
	sections = append(sections, m.renderDonutBar(vm.Donut), "")

	sections = append(sections, lipgloss.NewStyle().Bold(true).Render("Due soon"))
	if len(vm.UrgentTasks) == 0 {
		sections = append(sections, styleMuted().Render("No upcoming due dates."))
	}
	for _, r := range vm.UrgentTasks {
		pri := lipgloss.NewStyle().Foreground(priorityColor(r.Priority)).Render(r.Priority.Label())
		line := fmt.Sprintf("  %s  %s  %s  %s",
			r.Due.Local().Format("01-02"), truncate(r.Title, 40), styleMuted().Render(r.Assignee), pri)
		sections = append(sections, line)
	}

	return strings.Join(sections, "\n")
}

func statCard(label string, count int, color lipgloss.TerminalColor) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(0, 2).
		MarginRight(1).
		Render(lipgloss.NewStyle().Foreground(color).Bold(true).Render(fmt.Sprintf("%d", count)) +
			"\n" + styleMuted().Render(label))
}

// renderDonutBar shows the status distribution as a proportional segment bar.
func (m appModel) renderDonutBar(segments []view.DonutSegment) string {
	total := 0
	for _, s := range segments {
		total += s.Count
	}
	if total == 0 {
		return styleMuted().Render("No tasks yet.")
	}

	barWidth := m.width - 4
	if barWidth > 60 {
		barWidth = 60
	}
	if barWidth < 10 {
		barWidth = 10
	}

	var bar strings.Builder
	var legend []string
	used := 0
	for i, s := range segments {
		w := s.Count * barWidth / total
		if i == len(segments)-1 {
			w = barWidth - used
		}
		used += w
		bar.WriteString(eventColorStyle(s.Color).Render(strings.Repeat("█", w)))
		legend = append(legend, fmt.Sprintf("%s %s %d",
			eventColorStyle(s.Color).Render("■"), s.Label, s.Count))
	}
	return bar.String() + "\n" + styleMuted().Render(strings.Join(legend, "   "))
}

// --- Task list ---

func (m appModel) renderTasks(height int) string {
	rows := m.filteredTasks()

	assignee := "all"
	if m.filterAssignee != "" {
		if name := m.snap.AssigneeName(m.filterAssignee); name != "" {
			assignee = name
		} else {
			assignee = m.filterAssignee
		}
	}
	status := "all"
	if m.filterStatus != "" {
		status = model.Status(m.filterStatus).Label()
	}

	filterBar := fmt.Sprintf("%s %s   %s %s   %s %s",
		styleMuted().Render("search:"), m.searchInput.View(),
		styleMuted().Render("assignee:"), assignee,
		styleMuted().Render("status:"), status)

	var lines []string
	lines = append(lines, filterBar, "")

	if len(rows) == 0 {
		lines = append(lines, styleMuted().Render("No tasks match."))
		return strings.Join(lines, "\n")
	}

	visible := height - 3
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.taskIdx >= visible {
		start = m.taskIdx - visible + 1
	}
	end := start + visible
	if end > len(rows) {
		end = len(rows)
	}

	for i := start; i < end; i++ {
		r := rows[i]
		pri := lipgloss.NewStyle().Foreground(priorityColor(r.Priority)).Render(fmt.Sprintf("%-6s", r.Priority.Label()))
		st := lipgloss.NewStyle().Foreground(statusColor(r.Status)).Render(fmt.Sprintf("%-11s", r.Status.Label()))
		line := fmt.Sprintf(" %s %s %-16s %s  %s",
			pri, st, truncate(r.Assignee, 16), fmtDue(r.Due), truncate(r.Title, 48))
		lines = append(lines, selectRow(truncate(line, m.width), i == m.taskIdx))
	}
	return strings.Join(lines, "\n")
}

// --- Kanban ---

func (m appModel) renderKanban(height int) string {
	cols := view.Kanban(m.snap)

	colWidth := (m.width - 6) / 3
	if colWidth < 20 {
		colWidth = 20
	}

	var rendered []string
	for ci, col := range cols {
		title := lipgloss.NewStyle().Bold(true).Foreground(statusColor(col.Status)).
			Render(fmt.Sprintf("%s (%d)", col.Title, len(col.Cards)))

		var cards []string
		cards = append(cards, title)
		for ri, card := range col.Cards {
			selected := ci == m.kanbanCol && ri == m.kanbanRow
			body := truncate(card.Title, colWidth-4) + "\n" +
				styleMuted().Render(truncate(card.Assignee, colWidth-4)) + "\n" +
				lipgloss.NewStyle().Foreground(priorityColor(card.Priority)).Render(card.Priority.Label())
			box := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorBorder).
				Padding(0, 1).
				Width(colWidth - 2)
			if selected {
				box = box.BorderForeground(colorAccent)
			}
			cards = append(cards, box.Render(body))
		}

		colStyle := lipgloss.NewStyle().Width(colWidth).MarginRight(1).MaxHeight(height)
		rendered = append(rendered, colStyle.Render(strings.Join(cards, "\n")))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// --- Staff ---

func (m appModel) renderStaff() string {
	cards := view.Staff(m.snap, nil)
	if len(cards) == 0 {
		return styleMuted().Render("No staff registered.")
	}

	var out []string
	for i, c := range cards {
		name := lipgloss.NewStyle().Bold(true).Render(c.Name)
		pos := styleMuted().Render(c.Position)
		if c.IsManager {
			pos = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Render(c.Position)
		}
		header := selectRow(name+"  "+pos, i == m.staffIdx)

		lines := []string{header}
		for _, r := range c.Responsibilities {
			lines = append(lines, styleMuted().Render("  • ")+truncate(r, m.width-4))
		}
		out = append(out, strings.Join(lines, "\n"))
	}
	return strings.Join(out, "\n\n")
}

// --- Workload stats ---

func (m appModel) renderStats() string {
	bars := view.Workload(m.snap)
	if len(bars) == 0 {
		return styleMuted().Render("No staff registered.")
	}

	maxCount := 0
	for _, b := range bars {
		if b.Count > maxCount {
			maxCount = b.Count
		}
	}

	barWidth := m.width - 30
	if barWidth > 40 {
		barWidth = 40
	}
	if barWidth < 10 {
		barWidth = 10
	}

	var lines []string
	lines = append(lines, lipgloss.NewStyle().Bold(true).Render("Tasks per staff member"), "")
	for _, b := range bars {
		w := 0
		if maxCount > 0 {
			w = b.Count * barWidth / maxCount
		}
		bar := lipgloss.NewStyle().Foreground(colorAccent).Render(strings.Repeat("█", w))
		lines = append(lines, fmt.Sprintf("%-16s %s %d", truncate(b.Name, 16), bar, b.Count))
	}
	return strings.Join(lines, "\n")
}

// --- Comments ---

func (m appModel) renderComments(height int) string {
	rows := view.CommentFeed(m.snap)

	var lines []string
	if m.composing {
		lines = append(lines,
			styleMuted().Render("author: ")+m.commentAuthor.View(),
			m.commentBody.View(),
			"")
	}

	if len(rows) == 0 {
		lines = append(lines, styleMuted().Render("No comments yet."))
		return strings.Join(lines, "\n")
	}

	bodyWidth := m.width - 4
	if bodyWidth > 72 {
		bodyWidth = 72
	}

	// Coarse scrolling: when the feed overflows, start from the selected
	// comment instead of tracking exact line offsets.
	start := 0
	if len(rows)*4 > height {
		start = m.commentIdx
	}

	for i := start; i < len(rows); i++ {
		r := rows[i]
		author := lipgloss.NewStyle().Bold(true).Render(r.Author)
		when := styleMuted().Render(r.CreatedAt.Local().Format("2006-01-02 15:04"))
		lines = append(lines, selectRow(author+"  "+when, i == m.commentIdx))
		lines = append(lines, renderMarkdown(r.Content, bodyWidth), "")
	}
	return strings.Join(lines, "\n")
}
