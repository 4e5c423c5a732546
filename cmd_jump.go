package main

import (
	"fmt"

	"github.com/andareed/siftly-bikes/logging"
	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) hasRows() bool {
	return len(m.data.rows) > 0
}

func (m *model) jumpToStart() {
	if m.hasRows() {
		m.cursor = 0
	}
}

func (m *model) jumpToEnd() {
	if m.hasRows() {
		m.cursor = len(m.data.rows) - 1
	}
}

// jumpToLine moves the cursor to a 1-based line of the filtered table.
func (m *model) jumpToLine(lineNo int) tea.Cmd {
	logging.Debugf("jumpToLine %d", lineNo)
	if !m.hasRows() {
		return m.startNotice("Table is empty", "warn", noticeDuration)
	}
	if lineNo <= 0 || lineNo > len(m.data.rows) {
		return m.startNotice(fmt.Sprintf("Line %d out of bounds", lineNo), "warn", noticeDuration)
	}
	m.cursor = lineNo - 1
	m.ui.focus = paneTable
	return nil
}

func (m *model) moveCursor(delta int) {
	if !m.hasRows() {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, len(m.data.rows)-1)
}

func (m *model) pageDown() {
	m.moveCursor(max(1, m.pageRowSize))
}

func (m *model) pageUp() {
	m.moveCursor(-max(1, m.pageRowSize))
}
