package tui

import (
	"os"
	"strings"

	"deptboard/internal/model"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme/palette helpers.
//
// The TUI must remain readable on both light and dark terminal backgrounds,
// so everything goes through lipgloss.AdaptiveColor.

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func faintIfDark(st lipgloss.Style) lipgloss.Style {
	if lipgloss.HasDarkBackground() {
		return st.Faint(true)
	}
	return st
}

var (
	colorMuted    lipgloss.TerminalColor = ac("240", "243")
	colorAccent   lipgloss.TerminalColor = ac("27", "62") // blue
	colorSurface  lipgloss.TerminalColor = ac("255", "235")
	colorSelected lipgloss.TerminalColor = ac("#e9e9e9", "#262626")
	colorBorder   lipgloss.TerminalColor = ac("250", "243")

	// Status/priority palette, tracking the dashboard's widget colors
	// (amber pending, indigo in-progress, green completed, rose high).
	colorPending    lipgloss.TerminalColor = ac("172", "214") // amber
	colorInProgress lipgloss.TerminalColor = ac("62", "105")  // indigo
	colorCompleted  lipgloss.TerminalColor = ac("29", "42")   // green
	colorUrgent     lipgloss.TerminalColor = ac("161", "204") // rose
)

func styleMuted() lipgloss.Style {
	return faintIfDark(lipgloss.NewStyle().Foreground(colorMuted))
}

func statusColor(s model.Status) lipgloss.TerminalColor {
	switch s {
	case model.StatusCompleted:
		return colorCompleted
	case model.StatusInProgress:
		return colorInProgress
	default:
		return colorPending
	}
}

func priorityColor(p model.Priority) lipgloss.TerminalColor {
	switch p {
	case model.PriorityHigh:
		return colorUrgent
	case model.PriorityMedium:
		return colorPending
	default:
		return colorMuted
	}
}

// eventColorStyle maps the view layer's widget hex colors onto terminal
// styles for the calendar grid.
func eventColorStyle(hex string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}

// applyColorProfilePreference sets Lip Gloss's color profile for the
// interactive TUI. We only honor NO_COLOR and otherwise follow the
// terminal's capabilities; CLICOLOR handling is left to non-TUI output.
func applyColorProfilePreference() {
	if strings.TrimSpace(os.Getenv("NO_COLOR")) != "" {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}

	profile := termenv.ColorProfile()
	colorterm := strings.ToLower(strings.TrimSpace(os.Getenv("COLORTERM")))
	if strings.Contains(colorterm, "truecolor") || strings.Contains(colorterm, "24bit") {
		if profile != termenv.Ascii {
			profile = termenv.TrueColor
		}
	}
	lipgloss.SetColorProfile(profile)
}
