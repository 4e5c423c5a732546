// Package dialogs holds the modal boxes drawn over the dashboard.
package dialogs

import tea "github.com/charmbracelet/bubbletea"

// Dialog is the common interface all dialogs (path prompts, help) implement.
type Dialog interface {
	Init() tea.Cmd // may return nil
	Update(msg tea.Msg) (Dialog, tea.Cmd)
	View() string

	Focus() tea.Cmd
	Blur()
	IsVisible() bool
	Show()
	Hide()
}
