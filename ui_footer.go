package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// FooterState is what the footer shows. footerView builds it on every render.
type FooterState struct {
	Mode  Command
	Input string // command prompt and buffer while typing

	Source string
	Filter string
	Focus  string

	Cursor int // 1-based, 0 when the table is empty
	Shown  int // days in the filtered table
	Total  int // days in the dataset

	TopScope string // "all" or "filtered"
	Unmapped int    // codes the relabeler could not map

	Status string
	Legend string
}

const footerSep = " │ "

var (
	footerBarColor    = lipgloss.Color("#2b2b2b")
	footerBarStyle    = lipgloss.NewStyle().Background(footerBarColor).Foreground(lipgloss.Color("#cfcfcf"))
	footerModeStyle   = lipgloss.NewStyle().Background(lipgloss.Color(accentColor)).Foreground(lipgloss.Color("#000000")).Bold(true)
	footerSourceStyle = footerBarStyle.Foreground(lipgloss.Color("#e0e0e0"))
	footerDimStyle    = footerBarStyle.Foreground(lipgloss.Color("#a0a0a0"))
	footerWarnStyle   = footerBarStyle.Foreground(lipgloss.Color("#f5c542"))
	footerStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#9a9a9a"))
	footerLegendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#b0b0b0"))
)

// footerSegment is one item of the control bar. When the bar is too narrow
// the segment with the highest drop value goes first.
type footerSegment struct {
	text  string
	style lipgloss.Style
	drop  int
}

func RenderFooter(width int, st FooterState) string {
	if width <= 0 {
		return ""
	}
	return controlBar(width, st) + "\n" + statusBar(width, st)
}

func controlSegments(st FooterState) []footerSegment {
	source := "▸ " + strings.TrimSpace(st.Source)
	if strings.TrimSpace(st.Source) == "" {
		source = "▸ (no source)"
	}
	if st.Input != "" {
		source += " ▸ " + st.Input
	}

	filter := st.Filter
	if filter == "" {
		filter = "None"
	}
	scope := st.TopScope
	if scope == "" {
		scope = "all"
	}

	segs := []footerSegment{
		{text: " " + commandLabel(st.Mode) + " ", style: footerModeStyle, drop: 0},
		{text: source, style: footerSourceStyle, drop: 1},
		{text: "filter " + filter, style: footerBarStyle, drop: 2},
	}
	if st.Unmapped > 0 {
		segs = append(segs, footerSegment{text: fmt.Sprintf("! %d unmapped", st.Unmapped), style: footerWarnStyle, drop: 3})
	}
	segs = append(segs,
		footerSegment{text: "top " + scope, style: footerDimStyle, drop: 4},
		footerSegment{text: "focus " + st.Focus, style: footerDimStyle, drop: 5},
	)
	return segs
}

func rowsText(st FooterState) string {
	return fmt.Sprintf("row %d · %d/%d days ", max(st.Cursor, 0), max(st.Shown, 0), max(st.Total, 0))
}

func controlBar(width int, st FooterState) string {
	right := truncatePlain(rowsText(st), width)
	avail := width - runeWidth(right)
	segs := fitSegments(controlSegments(st), avail)

	parts := make([]string, 0, len(segs))
	for _, s := range segs {
		parts = append(parts, s.style.Render(s.text))
	}
	left := strings.Join(parts, footerBarStyle.Render(footerSep))
	if pad := avail - lipgloss.Width(left); pad > 0 {
		left += footerBarStyle.Render(strings.Repeat(" ", pad))
	}
	return left + footerBarStyle.Render(right)
}

// fitSegments drops segments in drop order until they fit in width, then
// truncates the last survivor if it is still too wide.
func fitSegments(segs []footerSegment, width int) []footerSegment {
	if width <= 0 {
		return nil
	}
	for len(segs) > 1 && segmentsWidth(segs) > width {
		worst := 0
		for i, s := range segs {
			if s.drop > segs[worst].drop {
				worst = i
			}
		}
		segs = append(segs[:worst:worst], segs[worst+1:]...)
	}
	if len(segs) == 1 {
		segs[0].text = truncatePlain(segs[0].text, width)
	}
	return segs
}

func segmentsWidth(segs []footerSegment) int {
	w := 0
	for i, s := range segs {
		if i > 0 {
			w += runeWidth(footerSep)
		}
		w += runeWidth(s.text)
	}
	return w
}

func statusBar(width int, st FooterState) string {
	legend := st.Legend
	if legend == "" {
		legend = "(? help · / search · q quit)"
	}
	msg := truncatePlain(st.Status, width)
	legend = truncatePlain(legend, width-runeWidth(msg)-1)

	gap := width - runeWidth(msg) - runeWidth(legend)
	if gap < 0 {
		gap = 0
	}
	return footerStatusStyle.Render(msg) + strings.Repeat(" ", gap) + footerLegendStyle.Render(legend)
}

func truncatePlain(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.Truncate(s, w, "")
}

func runeWidth(s string) int {
	return runewidth.StringWidth(s)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
