package main

import "github.com/charmbracelet/lipgloss"

const (
	rowTextFGColor         = "#c0c0c0"
	rowSelectedTextFGColor = "#e0e0e0"
	rowSelectedBGColor     = "#3a3a3a"
	searchHighlightBGColor = "#f5c542"
	searchHighlightFGColor = "#000000"
	accentColor            = "#ff9f1c"
	barColor               = "#1f77b4"
	dimColor               = "240"
)

var (
	appstyle = lipgloss.NewStyle().Margin(1, 2)

	headerStyle = lipgloss.NewStyle().Bold(true).BorderStyle(lipgloss.Border{
		Left:  " ",
		Right: " ",
	}).BorderLeft(true).BorderRight(true)

	rowStyle         = lipgloss.NewStyle()
	rowSelectedStyle = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor))
	cellStyle        = lipgloss.NewStyle().Padding(0, 1)
	tableStyle       = lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color(dimColor))
	focusedBorder    = lipgloss.Color(accentColor)

	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(0, 1).
			Width(sidebarWidth - 2)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(dimColor)).
			Padding(0, 1)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(accentColor))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(dimColor))
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color(rowSelectedBGColor)).Foreground(lipgloss.Color(rowSelectedTextFGColor))
	metricStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff"))
	barStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color(barColor))
	checkedMarker = "[x]"
	emptyMarker   = "[ ]"

	searchHighlight = lipgloss.NewStyle().
			Background(lipgloss.Color(searchHighlightBGColor)).
			Foreground(lipgloss.Color(searchHighlightFGColor))
)
