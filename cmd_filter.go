package main

import (
	"fmt"
	"strings"

	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
	"github.com/andareed/siftly-bikes/logging"
	tea "github.com/charmbracelet/bubbletea"
)

// setDataset installs a freshly loaded dataset. The column choice and the
// selected values survive a reload when they still exist.
func (m *model) setDataset(ds *dataset.Dataset, warnings []dataset.UnmappedCode) tea.Cmd {
	prevColumn := m.data.column()
	prevSelected := m.data.selected

	m.data.full = ds
	m.data.warnings = warnings
	m.data.columns = engine.CategoricalColumns(ds)
	m.data.columnIdx = 0
	for i, c := range m.data.columns {
		if c == prevColumn {
			m.data.columnIdx = i
		}
	}
	m.ui.columnCursor = m.data.columnIdx
	m.loadValues()
	for v := range prevSelected {
		if m.data.column() == prevColumn && containsString(m.data.values, v) {
			m.data.selected[v] = true
		}
	}

	if cmd := m.recompute(); cmd != nil {
		return cmd
	}
	if len(warnings) > 0 {
		return m.startNotice(fmt.Sprintf("%d codes had no label and are shown as %s", len(warnings), engine.MissingLabel), "warn", noticeDuration)
	}
	return nil
}

func (m *model) loadValues() {
	m.data.selected = make(map[string]bool)
	m.data.valueIdx = 0
	m.data.values = nil
	if m.data.full == nil || m.data.column() == "" {
		return
	}
	values, err := engine.DistinctValues(m.data.full, m.data.column())
	if err != nil {
		logging.Warnf("distinct values: %v", err)
		return
	}
	m.data.values = values
}

func (m *model) selectColumn(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.data.columns) || idx == m.data.columnIdx {
		return nil
	}
	m.data.columnIdx = idx
	m.loadValues()
	logging.Infof("column %q selected, %d values", m.data.column(), len(m.data.values))
	return m.recompute()
}

func (m *model) toggleValue(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.data.values) {
		return nil
	}
	v := m.data.values[idx]
	if m.data.selected[v] {
		delete(m.data.selected, v)
	} else {
		m.data.selected[v] = true
	}
	return m.recompute()
}

func (m *model) clearFilter() tea.Cmd {
	if len(m.data.selected) == 0 {
		return nil
	}
	m.data.selected = make(map[string]bool)
	return m.recompute()
}

// recompute derives the view from the dataset and the current selection.
func (m *model) recompute() tea.Cmd {
	if m.data.full == nil {
		return nil
	}
	v, err := engine.ComputeView(m.ctx, m.data.full, m.data.selection(), m.opts)
	if err != nil {
		logging.Errorf("compute view: %v", err)
		return m.startNotice(err.Error(), "error", noticeDuration)
	}
	m.data.view = v
	m.data.header = layoutColumns(columnsFor(v.Table), m.viewport.Width)
	m.data.rows = rowsFor(v.Table)
	if m.cursor >= len(m.data.rows) {
		m.cursor = max(0, len(m.data.rows)-1)
	}
	m.refreshTopDays()
	m.refreshViewport()
	return nil
}

func (m *model) filterLabel() string {
	sel := m.data.selection()
	if sel.IsEmpty() {
		return "None"
	}
	return sel.Column + "=" + strings.Join(sel.Values, ",")
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
