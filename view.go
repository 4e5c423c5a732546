package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-bikes/dialogs"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	if m.activeDialog != nil && m.activeDialog.IsVisible() {
		return dialogs.Overlay(m.terminalWidth, m.terminalHeight, m.activeDialog.View())
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), " ", m.mainView())
	return appstyle.Render(lipgloss.JoinVertical(lipgloss.Left, body, m.footerView(lipgloss.Width(body))))
}

func (m *model) sidebarView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Group by"))
	b.WriteString("\n")
	for i, c := range m.data.columns {
		line := " " + c
		if i == m.data.columnIdx {
			line = "●" + c
		}
		if m.ui.focus == paneColumns && i == m.ui.columnCursor {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Values"))
	b.WriteString(dimStyle.Render(fmt.Sprintf(" %d/%d", len(m.data.selected), len(m.data.values))))
	b.WriteString("\n")

	// keep the value cursor in sight when the list is longer than the pane
	room := max(3, m.terminalHeight-len(m.data.columns)-10)
	start := 0
	if m.data.valueIdx >= room {
		start = m.data.valueIdx - room + 1
	}
	end := min(len(m.data.values), start+room)
	for i := start; i < end; i++ {
		v := m.data.values[i]
		marker := emptyMarker
		if m.data.selected[v] {
			marker = checkedMarker
		}
		line := marker + " " + v
		if m.ui.focus == paneValues && i == m.data.valueIdx {
			line = cursorStyle.Render(line)
		}
		b.WriteString(line + "\n")
	}
	if end < len(m.data.values) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  … %d more", len(m.data.values)-end)))
	}

	style := sidebarStyle
	if m.ui.focus != paneTable {
		style = style.BorderForeground(focusedBorder)
	}
	return style.Height(max(1, m.terminalHeight-6)).Render(b.String())
}

func (m *model) mainView() string {
	metric := metricStyle.Render(fmt.Sprintf("Total rentals: %d", m.data.view.Total)) +
		dimStyle.Render(fmt.Sprintf("   rows %d   filter %s", len(m.data.rows), m.filterLabel()))
	if m.ui.loading {
		metric += dimStyle.Render("   loading…")
	}

	tbl := tableStyle
	if m.ui.focus == paneTable {
		tbl = tbl.BorderForeground(focusedBorder)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		metric,
		m.headerView(),
		tbl.Render(m.viewport.View()),
		m.lowerView(),
	)
}

func (m *model) lowerView() string {
	topW := lipgloss.Width(m.topDays.View()) + 4
	groupW := max(20, m.viewport.Width-topW)

	column := m.data.view.Selection.Column
	grouped := panelStyle.Width(groupW).Height(lowerHeight - 2).Render(
		titleStyle.Render("Rentals by "+column) + "\n" +
			renderBars(groupBars(engine.SortedGroups(m.data.view.Grouped)), groupW-2, lowerHeight-3),
	)

	scope := "all days"
	if m.opts.TopFromFiltered {
		scope = "filtered days"
	}
	top := panelStyle.Height(lowerHeight - 2).Render(
		titleStyle.Render(fmt.Sprintf("Top %d (%s)", len(m.data.view.Top), scope)) + "\n" + m.topDays.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, grouped, top)
}

func (m *model) headerView() string {
	markerWidth := len(fmt.Sprintf("%d", len(m.data.rows))) + 1

	var cells []string
	for _, col := range m.data.header {
		if !col.Visible || col.Width <= 0 {
			continue
		}
		style := cellStyle.Width(col.Width)
		if col.AlignRight {
			style = style.Align(lipgloss.Right)
		}
		cells = append(cells, style.Render(col.Name))
	}

	return headerStyle.Render(strings.Repeat(" ", markerWidth) + lipgloss.JoinHorizontal(lipgloss.Top, cells...))
}

// footerView renders the two-line footer for the given width.
func (m *model) footerView(width int) string {
	st := FooterState{
		Mode:     m.ui.command.cmd,
		Source:   m.label,
		Filter:   m.filterLabel(),
		Focus:    m.ui.focus.String(),
		Shown:    len(m.data.rows),
		Total:    m.data.full.Len(),
		TopScope: "all",
		Unmapped: len(m.data.warnings),
		Legend:   "(? help · tab pane · space toggle · F clear · / search · x export · s chart · r reload)",
	}
	if len(m.data.rows) > 0 {
		st.Cursor = m.cursor + 1
	}
	if m.opts.TopFromFiltered {
		st.TopScope = "filtered"
	}
	if m.ui.mode == modeCommand {
		st.Input = m.activeCommandLine()
	}
	if m.ui.noticeMsg != "" {
		st.Status = noticeText(m.ui.noticeMsg, m.ui.noticeType)
	}

	if logging.IsDebugMode() {
		st.Legend += fmt.Sprintf(" | dbg term=%dx%d vp=%dx%d cur=%d vis=%d-%d",
			m.terminalWidth, m.terminalHeight, m.viewport.Width, m.viewport.Height,
			m.cursor, m.ui.visibleStart, m.ui.visibleEnd)
	}

	return RenderFooter(width, st)
}

func (m *model) renderRowAt(idx int) (string, int, bool) {
	if idx < 0 || idx >= len(m.data.rows) {
		return "", 0, false
	}

	selected := idx == m.cursor && m.ui.focus == paneTable
	rowBgStyle := rowStyle
	rowPrefix := bgSeq(lipgloss.Color("")) + fgSeq(lipgloss.Color(rowTextFGColor))
	if selected {
		rowBgStyle = rowSelectedStyle
		rowPrefix = bgSeq(lipgloss.Color(rowSelectedBGColor)) + fgSeq(lipgloss.Color(rowSelectedTextFGColor))
	}
	rowSuffix := termenv.CSI + "0m"

	rowPtr := &m.data.rows[idx]
	row := *rowPtr

	gutter := len(fmt.Sprintf("%d", len(m.data.rows)))
	firstLineMarker := rowBgStyle.Render(fmt.Sprintf("%*d ", gutter, row.originalIndex))
	additionalLineMarker := rowBgStyle.Render(strings.Repeat(" ", gutter+1))

	if m.ui.searchQuery != "" {
		cols := make([]string, len(row.cols))
		for i, col := range row.cols {
			cols[i] = highlightMatches(col, m.ui.searchQuery)
		}
		row.cols = cols
	}
	content := row.Render(cellStyle, m.data.header)
	rowPtr.height = row.height

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		left := additionalLineMarker
		if i == 0 {
			left = firstLineMarker
		}
		if m.ui.searchQuery != "" {
			line = restoreRowStyleAfterReset(line, rowPrefix)
		}
		lines[i] = left + rowPrefix + line + rowSuffix
	}
	return strings.Join(lines, "\n"), row.height, true
}

func highlightMatches(text string, query string) string {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return text
	}
	lowerText := strings.ToLower(text)
	lowerQuery := strings.ToLower(q)
	if len(lowerText) != len(text) {
		// case folding changed byte offsets; skip highlighting
		return text
	}
	var b strings.Builder
	start := 0
	for {
		idx := strings.Index(lowerText[start:], lowerQuery)
		if idx == -1 {
			b.WriteString(text[start:])
			break
		}
		idx += start
		b.WriteString(text[start:idx])
		b.WriteString(searchHighlight.Render(text[idx : idx+len(lowerQuery)]))
		start = idx + len(lowerQuery)
	}
	return b.String()
}

func restoreRowStyleAfterReset(s string, rowPrefix string) string {
	reset := termenv.CSI + "0m"
	if rowPrefix == "" || !strings.Contains(s, reset) {
		return s
	}
	return strings.ReplaceAll(s, reset, reset+rowPrefix)
}

func fgSeq(c lipgloss.Color) string { return colorSeq(c, false) }
func bgSeq(c lipgloss.Color) string { return colorSeq(c, true) }

func colorSeq(c lipgloss.Color, bg bool) string {
	value := string(c)
	if value == "" {
		if bg {
			return termenv.CSI + "49m"
		}
		return termenv.CSI + "39m"
	}
	tc := lipgloss.ColorProfile().Color(value)
	if tc == nil {
		return ""
	}
	return termenv.CSI + tc.Sequence(bg) + "m"
}

func (m *model) renderViewport() string {
	if len(m.data.rows) == 0 {
		if m.data.full == nil {
			return dimStyle.Render("no data loaded")
		}
		return dimStyle.Render("no rows match the filter")
	}
	m.cursor = clamp(m.cursor, 0, len(m.data.rows)-1)

	rendered, startIdx, endIdx := m.computeVisibleRows(m.cursor, m.viewport.Height)
	m.ui.visibleStart = startIdx
	m.ui.visibleEnd = endIdx
	m.pageRowSize = len(rendered)

	return strings.Join(rendered, "\n")
}

// computeVisibleRows renders the cursor row and fills the viewport around it,
// keeping the cursor roughly centred.
func (m *model) computeVisibleRows(cursor int, viewportHeight int) ([]string, int, int) {
	cursorRendered, cursorHeight, ok := m.renderRowAt(cursor)
	if !ok {
		return nil, 0, 0
	}

	heightFree := viewportHeight - cursorHeight
	desiredAbove := max(0, heightFree/2)
	upIndex := cursor - 1
	downIndex := cursor + 1

	var above, below []string
	aboveHeight := 0
	for heightFree > 0 && (upIndex >= 0 || downIndex < len(m.data.rows)) {
		if upIndex >= 0 && aboveHeight < desiredAbove {
			if r, h, ok := m.renderRowAt(upIndex); ok && h <= heightFree {
				above = append(above, r)
				heightFree -= h
				aboveHeight += h
				upIndex--
				continue
			}
		}
		if downIndex < len(m.data.rows) {
			if r, h, ok := m.renderRowAt(downIndex); ok && h <= heightFree {
				below = append(below, r)
				heightFree -= h
				downIndex++
				continue
			}
		}
		if upIndex >= 0 {
			if r, h, ok := m.renderRowAt(upIndex); ok && h <= heightFree {
				above = append(above, r)
				heightFree -= h
				aboveHeight += h
				upIndex--
				continue
			}
		}
		break
	}

	out := make([]string, 0, len(above)+1+len(below))
	for i := len(above) - 1; i >= 0; i-- {
		out = append(out, above[i])
	}
	out = append(out, cursorRendered)
	out = append(out, below...)
	return out, cursor - len(above), cursor + len(below)
}
