package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// search remembers query and moves to the first matching row after the
// cursor, wrapping around.
func (m *model) search(query string) tea.Cmd {
	m.ui.searchQuery = strings.TrimSpace(query)
	if m.ui.searchQuery == "" {
		return nil
	}
	return m.searchNext()
}

func (m *model) searchNext() tea.Cmd {
	q := strings.ToLower(m.ui.searchQuery)
	if q == "" || !m.hasRows() {
		return nil
	}
	n := len(m.data.rows)
	for step := 1; step <= n; step++ {
		i := (m.cursor + step) % n
		if strings.Contains(strings.ToLower(m.data.rows[i].String()), q) {
			m.cursor = i
			m.ui.focus = paneTable
			return nil
		}
	}
	return m.startNotice(fmt.Sprintf("No match for %q", m.ui.searchQuery), "warn", noticeDuration)
}
