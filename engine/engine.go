// Package engine filters and aggregates a relabeled bike-rental Dataset.
//
// Every function is pure: inputs are read, never modified, and results are
// new values.
package engine

import (
	"errors"
	"fmt"
	"sort"

	"github.com/andareed/siftly-bikes/dataset"
)

// MissingLabel stands in for missing cells (for example unmapped codes) in
// distinct values, filters and groups.
const MissingLabel = "(missing)"

// DefaultTopN is the length of the top days ranking.
const DefaultTopN = 10

var ErrInvalidSelection = errors.New("invalid selection")

// InvalidSelectionError names a column that is not in the dataset.
type InvalidSelectionError struct {
	Column string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid selection: no column %q", e.Column)
}

func (e *InvalidSelectionError) Is(target error) bool { return target == ErrInvalidSelection }

// Selection is a column and the values accepted in it. No values means no
// filter.
type Selection struct {
	Column string   `json:"column"`
	Values []string `json:"values"`
}

func (s Selection) IsEmpty() bool { return len(s.Values) == 0 }

// GroupSum is one bar of the grouped chart.
type GroupSum struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}

// DayCount is one entry of the top days ranking.
type DayCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func keyOf(c dataset.Cell) string {
	if !c.Valid {
		return MissingLabel
	}
	return c.Value
}

func column(ds *dataset.Dataset, name string) (int, error) {
	i, ok := ds.Column(name)
	if !ok {
		return -1, &InvalidSelectionError{Column: name}
	}
	return i, nil
}

// CategoricalColumns lists, in header order, the columns holding non-numeric
// values, followed by yr, which is numeric but denotes a category.
func CategoricalColumns(ds *dataset.Dataset) []string {
	var out []string
	hasYear := false
	for _, c := range ds.Columns {
		switch {
		case c.Name == dataset.ColYear:
			hasYear = true
		case c.Kind == dataset.KindLabel, c.Kind == dataset.KindText, c.Kind == dataset.KindDate:
			out = append(out, c.Name)
		}
	}
	if hasYear {
		out = append(out, dataset.ColYear)
	}
	return out
}

// DistinctValues returns the values observed in column, in first-seen order.
func DistinctValues(ds *dataset.Dataset, name string) ([]string, error) {
	col, err := column(ds, name)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	var out []string
	for r := range ds.Records {
		k := keyOf(ds.Value(r, col))
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out, nil
}

// ApplyFilter keeps the records whose value in sel.Column is one of
// sel.Values, preserving order. An empty selection on a known column returns
// ds itself.
func ApplyFilter(ds *dataset.Dataset, sel Selection) (*dataset.Dataset, error) {
	col, err := column(ds, sel.Column)
	if err != nil {
		return nil, err
	}
	if sel.IsEmpty() {
		return ds, nil
	}

	accept := make(map[string]bool, len(sel.Values))
	for _, v := range sel.Values {
		accept[v] = true
	}

	idx := make([]int, 0, ds.Len())
	for r := range ds.Records {
		if accept[keyOf(ds.Value(r, col))] {
			idx = append(idx, r)
		}
	}
	return ds.Subset(idx), nil
}

// TotalCount sums cnt over ds.
func TotalCount(ds *dataset.Dataset) int {
	if ds.Len() == 0 {
		return 0
	}
	total := 0
	for _, r := range ds.Records {
		total += r.Count
	}
	return total
}

// GroupedSums sums cnt per distinct value of column. Missing cells form their
// own MissingLabel group, so the group totals add up to TotalCount(ds).
func GroupedSums(ds *dataset.Dataset, name string) (map[string]int, error) {
	col, err := column(ds, name)
	if err != nil {
		return nil, err
	}
	out := make(map[string]int)
	for r, rec := range ds.Records {
		out[keyOf(ds.Value(r, col))] += rec.Count
	}
	return out, nil
}

// SortedGroups orders grouped sums for display: largest first, equal counts by
// key.
func SortedGroups(sums map[string]int) []GroupSum {
	out := make([]GroupSum, 0, len(sums))
	for k, v := range sums {
		out = append(out, GroupSum{Key: k, Count: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// TopNDays sums cnt per date and returns the n largest, descending. Equal
// counts are ordered by ascending date.
func TopNDays(ds *dataset.Dataset, n int) []DayCount {
	if n <= 0 || ds.Len() == 0 {
		return []DayCount{}
	}

	type day struct {
		key   string
		count int
	}
	byDate := make(map[string]*day)
	var days []*day
	for _, rec := range ds.Records {
		k := rec.Date.Format("2006-01-02")
		d, ok := byDate[k]
		if !ok {
			d = &day{key: k}
			byDate[k] = d
			days = append(days, d)
		}
		d.count += rec.Count
	}

	sort.Slice(days, func(i, j int) bool {
		if days[i].count != days[j].count {
			return days[i].count > days[j].count
		}
		return days[i].key < days[j].key
	})
	if len(days) > n {
		days = days[:n]
	}

	out := make([]DayCount, len(days))
	for i, d := range days {
		out[i] = DayCount{Date: d.key, Count: d.count}
	}
	return out
}
