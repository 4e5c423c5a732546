package dialogs

import "github.com/charmbracelet/lipgloss"

const overlayColor = "236"

// boxStyle is shared by every dialog so borders blend into the overlay.
var boxStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("252")).
	BorderBackground(lipgloss.Color(overlayColor)).
	Padding(1, 2).
	Width(60)

var hintStyle = lipgloss.NewStyle().Faint(true)

// Overlay centres a dialog on a dimmed screen of the given size.
func Overlay(width, height int, content string) string {
	return lipgloss.Place(
		width, height,
		lipgloss.Center, lipgloss.Center,
		content,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceBackground(lipgloss.Color(overlayColor)),
	)
}
