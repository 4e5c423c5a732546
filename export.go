package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/engine"
)

// ExportView writes the filtered table of v to a CSV file with the dataset's
// header. Missing cells are written empty.
func ExportView(v engine.View, path string) error {
	if v.Table == nil {
		return fmt.Errorf("export: no data loaded")
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(v.Table.ColumnNames()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i := range v.Table.Records {
		if err := w.Write(v.Table.Strings(i)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return f.Close()
}

// SaveChart renders the grouped sums of v as a PNG bar chart.
func SaveChart(v engine.View, path string, size charts.Size) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("open chart file: %w", err)
	}
	if err := charts.GroupedBarChart(f, v.Selection.Column, engine.SortedGroups(v.Grouped), size); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

func defaultExportName(m *model) string {
	return baseName(m) + "-" + slug(m.data.selection()) + ".csv"
}

func defaultChartName(m *model) string {
	return baseName(m) + "-by-" + slug(engine.Selection{Column: m.data.column()}) + ".png"
}

func baseName(m *model) string {
	base := strings.TrimSuffix(filepath.Base(m.label), filepath.Ext(m.label))
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "bikes"
	}
	return base
}

// slug turns a selection into a file-name friendly fragment, for example
// "season-spring-fall".
func slug(sel engine.Selection) string {
	if sel.Column == "" {
		return "all"
	}
	parts := append([]string{sel.Column}, sel.Values...)

	var b strings.Builder
	for _, r := range strings.ToLower(strings.Join(parts, "-")) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case r == '(', r == ')':
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
