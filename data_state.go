package main

import (
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
)

type dataState struct {
	full     *dataset.Dataset // relabeled copy owned by this session
	warnings []dataset.UnmappedCode

	columns   []string // categorical columns for the sidebar
	columnIdx int      // selected column
	values    []string // distinct values of the selected column
	valueIdx  int      // cursor in the value list
	selected  map[string]bool

	view   engine.View
	header []ColumnMeta
	rows   []renderedRow // rows of view.Table
}

func (d *dataState) column() string {
	if d.columnIdx < 0 || d.columnIdx >= len(d.columns) {
		return ""
	}
	return d.columns[d.columnIdx]
}

// selection lists the chosen values in sidebar order so the same choice
// always produces the same Selection.
func (d *dataState) selection() engine.Selection {
	sel := engine.Selection{Column: d.column()}
	for _, v := range d.values {
		if d.selected[v] {
			sel.Values = append(sel.Values, v)
		}
	}
	return sel
}
