package tui

import (
	"deptboard/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

func Run(snap *store.Snapshot) error {
	applyColorProfilePreference()
	m := newAppModel(snap)
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
