package main

import (
	"github.com/andareed/siftly-bikes/dataset"
)

type ColumnRole int

const (
	RoleNormal  ColumnRole = iota
	RoleDate               // dteday
	RoleLabel              // relabeled codes and free text
	RoleMeasure            // cnt
)

type ColumnMeta struct {
	Name       string
	Index      int
	Role       ColumnRole
	Visible    bool
	MinWidth   int
	Weight     float64
	Width      int
	AlignRight bool
}

func roleForColumn(c dataset.Column) ColumnRole {
	switch {
	case c.Name == dataset.ColCount:
		return RoleMeasure
	case c.Kind == dataset.KindDate:
		return RoleDate
	case c.Kind == dataset.KindLabel, c.Kind == dataset.KindText, c.Kind == dataset.KindCode:
		return RoleLabel
	default:
		return RoleNormal
	}
}

// Widths include the one-cell padding on each side from cellStyle.
func defaultMinWidthForRole(r ColumnRole) int {
	switch r {
	case RoleDate:
		return 12
	case RoleLabel:
		return 11
	case RoleMeasure:
		return 8
	default:
		return 8
	}
}

func defaultWeightForRole(r ColumnRole) float64 {
	switch r {
	case RoleDate, RoleLabel:
		return 2.0
	default:
		return 1.0
	}
}

func columnsFor(ds *dataset.Dataset) []ColumnMeta {
	cols := make([]ColumnMeta, len(ds.Columns))
	for i, c := range ds.Columns {
		role := roleForColumn(c)
		minW := defaultMinWidthForRole(role)
		if w := len(c.Name) + 2; w > minW {
			minW = w
		}
		cols[i] = ColumnMeta{
			Name:       c.Name,
			Index:      i,
			Role:       role,
			Visible:    true,
			MinWidth:   minW,
			Weight:     defaultWeightForRole(role),
			AlignRight: c.Kind == dataset.KindNumeric,
		}
	}
	return cols
}

// layoutColumns gives every visible column its MinWidth and shares what is
// left of totalWidth by Weight. When the minimums do not fit, columns keep
// their MinWidth and the viewport scrolls horizontally.
func layoutColumns(cols []ColumnMeta, totalWidth int) []ColumnMeta {
	if totalWidth <= 0 {
		return cols
	}

	minSum := 0
	weightSum := 0.0
	for i := range cols {
		if !cols[i].Visible {
			continue
		}
		minSum += cols[i].MinWidth
		weightSum += cols[i].Weight
	}

	if minSum >= totalWidth {
		for i := range cols {
			if cols[i].Visible {
				cols[i].Width = cols[i].MinWidth
			} else {
				cols[i].Width = 0
			}
		}
		return cols
	}

	remaining := totalWidth - minSum
	for i := range cols {
		if !cols[i].Visible {
			cols[i].Width = 0
			continue
		}
		extra := 0
		if weightSum > 0 {
			extra = int(float64(remaining) * (cols[i].Weight / weightSum))
		}
		cols[i].Width = cols[i].MinWidth + extra
	}
	return cols
}
