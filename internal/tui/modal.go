package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func modalBodyWidth(width int) int {
	w := width - 8
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	header := lipgloss.NewStyle().
		Bold(true).
		Width(bodyW).
		Render(title)

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(bodyW + 4)

	return box.Render(header + "\n\n" + content)
}

func renderConfirmModal(width int, title string, body string, confirmLabel string, cancelLabel string, focus confirmFocus) string {
	// Avoid nested borders: some terminals show background artifacts when
	// bordered components sit inside a modal box.
	btnBase := lipgloss.NewStyle().Padding(0, 1)
	btnActive := btnBase.
		Background(colorSelected).
		Bold(true)

	confirmBtn := btnBase.Render(confirmLabel)
	cancelBtn := btnBase.Render(cancelLabel)
	if focus == confirmFocusConfirm {
		confirmBtn = btnActive.Render(confirmLabel)
	} else {
		cancelBtn = btnActive.Render(cancelLabel)
	}

	controls := lipgloss.JoinHorizontal(lipgloss.Top, confirmBtn, " ", cancelBtn)

	bodyW := modalBodyWidth(width)
	help := styleMuted().Width(bodyW).Render("tab: focus   enter: select   esc: cancel")

	content := strings.Join([]string{body, "", controls, "", help}, "\n")
	return renderModalBox(width, title, content)
}

func renderErrorModal(width int, message string) string {
	bodyW := modalBodyWidth(width)
	body := lipgloss.NewStyle().
		Foreground(colorUrgent).
		Width(bodyW).
		Render(message)
	help := styleMuted().Width(bodyW).Render("enter/esc: dismiss")
	return renderModalBox(width, "Error", body+"\n\n"+help)
}
