package dataset

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

var dateLayouts = []string{"2006-01-02", "2006/01/02", time.RFC3339}

// missing-value spellings produced by the CSV and SQL readers
var missingValues = map[string]bool{"": true, "NaN": true, "NA": true, "<nil>": true}

func parseDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FromRecords builds a Dataset from a header and string rows. source names
// the origin in errors.
func FromRecords(source string, header []string, rows [][]string) (*Dataset, error) {
	if len(header) == 0 {
		return nil, loadErr(source, "no header", ErrEmpty)
	}

	names := make([]string, len(header))
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		names[i] = strings.TrimSpace(h)
	}

	pos := make(map[string]int, len(names))
	for i, n := range names {
		if _, dup := pos[n]; !dup {
			pos[n] = i
		}
	}
	var missing []string
	for _, req := range RequiredColumns {
		if _, ok := pos[req]; !ok {
			missing = append(missing, req)
		}
	}
	if len(missing) > 0 {
		return nil, loadErr(source, "schema mismatch", fmt.Errorf("%w: %s", ErrMissingColumn, strings.Join(missing, ", ")))
	}

	dateIdx, countIdx := pos[ColDate], pos[ColCount]
	recs := make([]Record, 0, len(rows))
	for r, row := range rows {
		if len(row) != len(names) {
			return nil, loadErr(source, fmt.Sprintf("row %d", r+1),
				fmt.Errorf("%w: %d fields, header has %d", ErrBadValue, len(row), len(names)))
		}
		date, ok := parseDate(row[dateIdx])
		if !ok {
			return nil, loadErr(source, fmt.Sprintf("row %d", r+1),
				fmt.Errorf("%w: %s %q is not a date", ErrBadValue, ColDate, row[dateIdx]))
		}
		cnt, err := strconv.Atoi(strings.TrimSpace(row[countIdx]))
		if err != nil || cnt < 0 {
			return nil, loadErr(source, fmt.Sprintf("row %d", r+1),
				fmt.Errorf("%w: %s %q is not a non-negative integer", ErrBadValue, ColCount, row[countIdx]))
		}

		cells := make([]Cell, len(row))
		for i, v := range row {
			v = strings.TrimSpace(v)
			cells[i] = Cell{Value: v, Valid: !missingValues[v]}
		}
		recs = append(recs, Record{Date: date, Count: cnt, Cells: cells})
	}

	cols := make([]Column, len(names))
	for i, n := range names {
		cols[i] = Column{Name: n, Kind: detectKind(n, i, recs)}
	}
	return newDataset(cols, recs), nil
}

func detectKind(name string, col int, recs []Record) ColumnKind {
	switch name {
	case ColDate:
		return KindDate
	case ColCount:
		return KindNumeric
	}
	if _, coded := codeMappings[name]; coded {
		return KindCode
	}
	for _, r := range recs {
		c := r.Cells[col]
		if !c.Valid {
			continue
		}
		if _, err := strconv.ParseFloat(c.Value, 64); err != nil {
			return KindText
		}
	}
	return KindNumeric
}
