package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andareed/siftly-bikes/engine"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const barGlyph = "█"

type bar struct {
	label string
	value int
}

// renderBars draws one horizontal bar per item, scaled to the largest value,
// in at most width cells and height lines.
func renderBars(items []bar, width, height int) string {
	if len(items) == 0 {
		return dimStyle.Render("no data")
	}
	if height > 0 && len(items) > height {
		items = items[:height]
	}

	labelW, valueW, maxV := 0, 0, 0
	for _, it := range items {
		labelW = max(labelW, runewidth.StringWidth(it.label))
		valueW = max(valueW, len(strconv.Itoa(it.value)))
		maxV = max(maxV, it.value)
	}
	labelW = min(labelW, max(4, width/3))
	barW := width - labelW - valueW - 2
	if barW < 1 {
		barW = 1
	}

	lines := make([]string, len(items))
	for i, it := range items {
		n := 0
		if maxV > 0 {
			n = it.value * barW / maxV
		}
		if n == 0 && it.value > 0 {
			n = 1
		}
		label := runewidth.FillRight(runewidth.Truncate(it.label, labelW, "…"), labelW)
		lines[i] = fmt.Sprintf("%s %s %*d", label, barStyle.Render(strings.Repeat(barGlyph, n))+strings.Repeat(" ", barW-n), valueW, it.value)
	}
	return strings.Join(lines, "\n")
}

func groupBars(groups []engine.GroupSum) []bar {
	out := make([]bar, len(groups))
	for i, g := range groups {
		out[i] = bar{label: g.Key, value: g.Count}
	}
	return out
}

func newTopDaysTable() table.Model {
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "#", Width: 3},
			{Title: "Date", Width: 10},
			{Title: "Rentals", Width: 8},
		}),
		table.WithHeight(lowerHeight-3),
		table.WithFocused(false),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(dimColor)).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
	return t
}

func topDaysRows(days []engine.DayCount) []table.Row {
	rows := make([]table.Row, len(days))
	for i, d := range days {
		rows[i] = table.Row{strconv.Itoa(i + 1), d.Date, strconv.Itoa(d.Count)}
	}
	return rows
}

func (m *model) refreshTopDays() {
	m.topDays.SetRows(topDaysRows(m.data.view.Top))
}
