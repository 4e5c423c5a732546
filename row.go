package main

import (
	"strings"

	"github.com/andareed/siftly-bikes/dataset"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type renderedRow struct {
	cols          []string
	height        int
	originalIndex int // 1-based line in the filtered table
}

func rowsFor(ds *dataset.Dataset) []renderedRow {
	rows := make([]renderedRow, ds.Len())
	for i := range rows {
		rows[i] = renderedRow{cols: ds.Strings(i), height: 1, originalIndex: i + 1}
	}
	return rows
}

func (r *renderedRow) Join(sep string) string {
	return strings.Join(r.cols, sep)
}

// String joins cells with tabs, which is what search and the clipboard use.
func (r *renderedRow) String() string {
	return r.Join("\t")
}

func (r *renderedRow) Render(style lipgloss.Style, colsMeta []ColumnMeta) string {
	var rendered []string

	for i, text := range r.cols {
		if i >= len(colsMeta) {
			break
		}
		meta := colsMeta[i]
		if !meta.Visible || meta.Width <= 0 {
			continue
		}

		inner := meta.Width - 2
		if inner < 1 {
			inner = 1
		}
		text = truncate.StringWithTail(text, uint(inner), "…")

		cellStyle := style.Width(meta.Width)
		if meta.AlignRight {
			cellStyle = cellStyle.Align(lipgloss.Right)
		}
		rendered = append(rendered, cellStyle.Render(text))
	}

	joined := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	r.height = lipgloss.Height(joined)
	return joined
}
