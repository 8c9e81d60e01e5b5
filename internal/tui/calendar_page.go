package tui

import (
	"fmt"
	"strings"
	"time"

	"deptboard/internal/view"

	"github.com/charmbracelet/lipgloss"
)

const calCellWidth = 8

// renderCalendar draws a month grid around the cursor day. Each cell shows
// the day number plus one colored marker per event due that day; the list
// under the grid expands the cursor day's events.
func (m appModel) renderCalendar() string {
	events := view.Calendar(m.snap)

	year, month, _ := m.calDay.Date()
	loc := m.calDay.Location()
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	title := lipgloss.NewStyle().Bold(true).Render(first.Format("January 2006"))

	var head []string
	for _, wd := range []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"} {
		head = append(head, styleMuted().Render(fmt.Sprintf("%-*s", calCellWidth, wd)))
	}

	var rows []string
	rows = append(rows, title, strings.Join(head, ""))

	cell := lipgloss.NewStyle().Width(calCellWidth)
	selected := lipgloss.NewStyle().Width(calCellWidth).Background(colorSelected).Bold(true)

	var week []string
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, cell.Render(""))
	}
	for d := 1; d <= daysInMonth; d++ {
		day := time.Date(year, month, d, 0, 0, 0, 0, loc)
		dayEvents := view.EventsOn(events, day)

		var markers strings.Builder
		for i, ev := range dayEvents {
			if i == 3 {
				markers.WriteString(styleMuted().Render("+"))
				break
			}
			markers.WriteString(eventColorStyle(ev.Color).Render("●"))
		}

		label := fmt.Sprintf("%2d %s", d, markers.String())
		st := cell
		if sameDay(day, m.calDay) {
			st = selected
		}
		week = append(week, st.Render(label))

		if day.Weekday() == time.Saturday || d == daysInMonth {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
			week = nil
		}
	}

	rows = append(rows, "", lipgloss.NewStyle().Bold(true).Render(m.calDay.Format("Mon Jan 2")))
	cursorEvents := view.EventsOn(events, m.calDay)
	if len(cursorEvents) == 0 {
		rows = append(rows, styleMuted().Render("Nothing due."))
	}
	for _, ev := range cursorEvents {
		rows = append(rows, eventColorStyle(ev.Color).Render("● ")+truncate(ev.Title, m.width-4))
	}

	return strings.Join(rows, "\n")
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
