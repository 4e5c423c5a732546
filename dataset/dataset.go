package dataset

import (
	"strings"
	"time"
)

// Header names of the daily rentals file.
const (
	ColDate    = "dteday"
	ColSeason  = "season"
	ColYear    = "yr"
	ColMonth   = "mnth"
	ColWeather = "weathersit"
	ColCount   = "cnt"
)

// RequiredColumns must all be present in a source header.
var RequiredColumns = []string{ColDate, ColSeason, ColYear, ColMonth, ColWeather, ColCount}

// aliases lets callers use the logical record attribute names.
var aliases = map[string]string{
	"date":    ColDate,
	"year":    ColYear,
	"month":   ColMonth,
	"weather": ColWeather,
	"count":   ColCount,
}

// CanonicalName maps a logical attribute name (date, year, month, weather,
// count) to its header name. Unknown names are returned trimmed.
func CanonicalName(name string) string {
	n := strings.TrimSpace(name)
	if c, ok := aliases[strings.ToLower(n)]; ok {
		return c
	}
	return n
}

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindNumeric
	KindDate
	KindCode  // integer codes that still need relabeling
	KindLabel // human readable categories
)

func (k ColumnKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindDate:
		return "date"
	case KindCode:
		return "code"
	case KindLabel:
		return "label"
	default:
		return "text"
	}
}

type Column struct {
	Name string     `json:"name"`
	Kind ColumnKind `json:"kind"`
}

// Cell is a single value. Valid is false for missing values.
type Cell struct {
	Value string
	Valid bool
}

func (c Cell) String() string {
	if !c.Valid {
		return ""
	}
	return c.Value
}

// Record is one calendar day.
type Record struct {
	Date  time.Time
	Count int
	Cells []Cell
}

// Dataset is an ordered, read-only table of records. Functions in this module
// never modify a Dataset they are handed; they return new ones.
type Dataset struct {
	Columns []Column
	Records []Record

	index map[string]int
}

func newDataset(cols []Column, recs []Record) *Dataset {
	d := &Dataset{Columns: cols, Records: recs}
	d.buildIndex()
	return d
}

func (d *Dataset) buildIndex() {
	d.index = make(map[string]int, len(d.Columns))
	for i, c := range d.Columns {
		d.index[c.Name] = i
	}
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// Column resolves name (header or logical alias) to a column index.
func (d *Dataset) Column(name string) (int, bool) {
	if d == nil {
		return -1, false
	}
	n := CanonicalName(name)
	if d.index == nil {
		for i, c := range d.Columns {
			if c.Name == n {
				return i, true
			}
		}
		return -1, false
	}
	i, ok := d.index[n]
	return i, ok
}

func (d *Dataset) ColumnNames() []string {
	names := make([]string, len(d.Columns))
	for i, c := range d.Columns {
		names[i] = c.Name
	}
	return names
}

// Value returns the cell of record row in column col.
func (d *Dataset) Value(row, col int) Cell {
	if row < 0 || row >= len(d.Records) {
		return Cell{}
	}
	cells := d.Records[row].Cells
	if col < 0 || col >= len(cells) {
		return Cell{}
	}
	return cells[col]
}

// Clone deep-copies the dataset.
func (d *Dataset) Clone() *Dataset {
	cols := append([]Column(nil), d.Columns...)
	recs := make([]Record, len(d.Records))
	for i, r := range d.Records {
		recs[i] = Record{
			Date:  r.Date,
			Count: r.Count,
			Cells: append([]Cell(nil), r.Cells...),
		}
	}
	return newDataset(cols, recs)
}

// Subset returns a new dataset holding the records at idx, in that order.
// Cell slices are shared with d; both are read-only.
func (d *Dataset) Subset(idx []int) *Dataset {
	recs := make([]Record, 0, len(idx))
	for _, i := range idx {
		recs = append(recs, d.Records[i])
	}
	return newDataset(append([]Column(nil), d.Columns...), recs)
}

// Strings renders record row as plain strings, header order.
func (d *Dataset) Strings(row int) []string {
	cells := d.Records[row].Cells
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.String()
	}
	return out
}
