package dataset

import (
	"math"
	"strconv"
	"strings"
)

var (
	seasonLabels = map[int]string{1: "Spring", 2: "Summer", 3: "Fall", 4: "Winter"}
	yearLabels   = map[int]string{0: "2011", 1: "2012"}
	monthLabels  = map[int]string{
		1: "January", 2: "February", 3: "March", 4: "April",
		5: "May", 6: "June", 7: "July", 8: "August",
		9: "September", 10: "October", 11: "November", 12: "December",
	}
	weatherLabels = map[int]string{1: "Clear", 2: "Mist", 3: "Light Snow", 4: "Heavy Rain"}
)

var codeMappings = map[string]map[int]string{
	ColSeason:  seasonLabels,
	ColYear:    yearLabels,
	ColMonth:   monthLabels,
	ColWeather: weatherLabels,
}

// Label returns the label for code in the named column's mapping.
func Label(column string, code int) (string, bool) {
	m, ok := codeMappings[CanonicalName(column)]
	if !ok {
		return "", false
	}
	l, ok := m[code]
	return l, ok
}

// Relabel returns a copy of ds with season, yr, mnth and weathersit codes
// replaced by their labels. ds is not modified.
//
// Columns already holding labels are copied as they are, as are cells that
// are not whole numbers. Codes written as floats ("1.0") are labeled like
// their integer form. A code outside a mapping yields a missing cell and an
// UnmappedCode warning.
func Relabel(ds *Dataset) (*Dataset, []UnmappedCode) {
	out := ds.Clone()
	var warnings []UnmappedCode

	for col, c := range out.Columns {
		mapping, ok := codeMappings[c.Name]
		if !ok || c.Kind != KindCode {
			continue
		}
		for r := range out.Records {
			cell := out.Records[r].Cells[col]
			if !cell.Valid {
				continue
			}
			code, ok := parseCode(cell.Value)
			if !ok {
				continue
			}
			label, ok := mapping[code]
			if !ok {
				warnings = append(warnings, UnmappedCode{Row: r, Column: c.Name, Code: code})
				out.Records[r].Cells[col] = Cell{}
				continue
			}
			out.Records[r].Cells[col] = Cell{Value: label, Valid: true}
		}
		out.Columns[col].Kind = KindLabel
	}
	return out, warnings
}

// parseCode reads a whole-number code, accepting float spellings such as
// "3.0" or "3e0".
func parseCode(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
