package engine

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/andareed/siftly-bikes/dataset"
)

const header = "dteday,season,yr,mnth,weathersit,temp,cnt"

func build(t *testing.T, lines ...string) *dataset.Dataset {
	t.Helper()
	var rows [][]string
	for _, l := range lines {
		rows = append(rows, strings.Split(l, ","))
	}
	ds, err := dataset.FromRecords("test", strings.Split(header, ","), rows)
	if err != nil {
		t.Fatalf("FromRecords: %v", err)
	}
	out, _ := dataset.Relabel(ds)
	return out
}

func exampleDataset(t *testing.T) *dataset.Dataset {
	return build(t,
		"2011-01-01,1,0,1,2,0.3,100",
		"2011-01-02,1,0,1,1,0.4,50",
	)
}

// randomDataset builds n days with random codes; some weather codes are out
// of range so missing cells are exercised too.
func randomDataset(t *testing.T, seed int64, n int) *dataset.Dataset {
	r := rand.New(rand.NewSource(seed))
	lines := make([]string, n)
	for i := range lines {
		day := fmt.Sprintf("2011-%02d-%02d", 1+i/28%12, 1+i%28)
		lines[i] = fmt.Sprintf("%s,%d,%d,%d,%d,0.5,%d",
			day, 1+r.Intn(4), r.Intn(2), 1+r.Intn(12), 1+r.Intn(5), r.Intn(1000))
	}
	return build(t, lines...)
}

func TestWorkedExample(t *testing.T) {
	ds := exampleDataset(t)

	got, err := ApplyFilter(ds, Selection{Column: "weather", Values: []string{"Mist"}})
	if err != nil {
		t.Fatalf("ApplyFilter: %v", err)
	}
	if got.Len() != 1 || got.Records[0].Count != 100 {
		t.Fatalf("filter: got %d records", got.Len())
	}
	if total := TotalCount(got); total != 100 {
		t.Errorf("TotalCount: got %d, want 100", total)
	}

	top := TopNDays(ds, 10)
	want := []DayCount{{"2011-01-01", 100}, {"2011-01-02", 50}}
	if !reflect.DeepEqual(top, want) {
		t.Errorf("TopNDays: got %v, want %v", top, want)
	}
}

func TestApplyFilterEmptySelectionIsIdentity(t *testing.T) {
	ds := randomDataset(t, 1, 60)
	got, err := ApplyFilter(ds, Selection{Column: "season"})
	if err != nil {
		t.Fatal(err)
	}
	if got != ds {
		t.Error("empty selection should return the dataset unchanged")
	}
}

func TestApplyFilterMembershipAndOrder(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ds := randomDataset(t, seed, 120)
		sel := Selection{Column: "season", Values: []string{"Summer", "Winter"}}

		got, err := ApplyFilter(ds, sel)
		if err != nil {
			t.Fatal(err)
		}

		col, _ := ds.Column("season")
		var want []dataset.Record
		for r, rec := range ds.Records {
			v := ds.Value(r, col).Value
			if v == "Summer" || v == "Winter" {
				want = append(want, rec)
			}
		}
		if !reflect.DeepEqual(got.Records, want) {
			t.Errorf("seed %d: filtered records differ from predicate scan", seed)
		}
	}
}

func TestApplyFilterDoesNotModifyInput(t *testing.T) {
	ds := randomDataset(t, 7, 40)
	before := ds.Clone()
	if _, err := ApplyFilter(ds, Selection{Column: "month", Values: []string{"March"}}); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(ds, before) {
		t.Error("ApplyFilter modified its input")
	}
}

func TestMissingCellsFilterAndGroup(t *testing.T) {
	ds := build(t,
		"2011-01-01,1,0,1,9,0.3,10",
		"2011-01-02,1,0,1,1,0.4,20",
	)

	got, err := ApplyFilter(ds, Selection{Column: "weathersit", Values: []string{MissingLabel}})
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 1 || got.Records[0].Count != 10 {
		t.Errorf("filter on missing: got %d records", got.Len())
	}

	sums, err := GroupedSums(ds, "weather")
	if err != nil {
		t.Fatal(err)
	}
	want := map[string]int{MissingLabel: 10, "Clear": 20}
	if !reflect.DeepEqual(sums, want) {
		t.Errorf("GroupedSums: got %v, want %v", sums, want)
	}
}

func TestTotalCount(t *testing.T) {
	if got := TotalCount(build(t)); got != 0 {
		t.Errorf("empty TotalCount: got %d", got)
	}
	if got := TotalCount(nil); got != 0 {
		t.Errorf("nil TotalCount: got %d", got)
	}
	ds := randomDataset(t, 3, 50)
	sel := Selection{Column: "yr", Values: []string{"2012"}}
	filtered, _ := ApplyFilter(ds, sel)

	col, _ := ds.Column("yr")
	want := 0
	for r, rec := range ds.Records {
		if ds.Value(r, col).Value == "2012" {
			want += rec.Count
		}
	}
	if got := TotalCount(filtered); got != want {
		t.Errorf("TotalCount: got %d, want %d", got, want)
	}
}

func TestGroupedSumsPartition(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		ds := randomDataset(t, seed, 200)
		filtered, _ := ApplyFilter(ds, Selection{Column: "season", Values: []string{"Spring", "Fall"}})

		for _, col := range []string{"season", "month", "weather", "yr"} {
			sums, err := GroupedSums(filtered, col)
			if err != nil {
				t.Fatal(err)
			}
			total := 0
			for _, v := range sums {
				total += v
			}
			if total != TotalCount(filtered) {
				t.Errorf("seed %d %s: group total %d != TotalCount %d", seed, col, total, TotalCount(filtered))
			}
		}
	}
}

func TestGroupedSumsKeysAreObserved(t *testing.T) {
	sums, err := GroupedSums(exampleDataset(t), "season")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(sums, map[string]int{"Spring": 150}) {
		t.Errorf("got %v", sums)
	}
}

func TestTopNDays(t *testing.T) {
	ds := randomDataset(t, 11, 300)
	top := TopNDays(ds, 10)
	if len(top) != 10 {
		t.Fatalf("len: got %d, want 10", len(top))
	}

	perDate := make(map[string]int)
	for _, r := range ds.Records {
		perDate[r.Date.Format("2006-01-02")] += r.Count
	}
	for i, d := range top {
		if perDate[d.Date] != d.Count {
			t.Errorf("%s: got %d, want %d", d.Date, d.Count, perDate[d.Date])
		}
		if i > 0 && top[i-1].Count < d.Count {
			t.Errorf("not descending at %d", i)
		}
	}
}

func TestTopNDaysSumsDuplicateDates(t *testing.T) {
	ds := build(t,
		"2011-01-01,1,0,1,1,0.3,10",
		"2011-01-02,1,0,1,1,0.3,25",
		"2011-01-01,1,0,1,1,0.3,20",
	)
	want := []DayCount{{"2011-01-01", 30}, {"2011-01-02", 25}}
	if got := TopNDays(ds, 10); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTopNDaysTieBreak(t *testing.T) {
	ds := build(t,
		"2011-03-01,1,0,3,1,0.3,40",
		"2011-01-05,1,0,1,1,0.3,40",
		"2011-02-01,1,0,2,1,0.3,90",
		"2011-01-01,1,0,1,1,0.3,40",
	)
	want := []DayCount{{"2011-02-01", 90}, {"2011-01-01", 40}, {"2011-01-05", 40}}
	if got := TopNDays(ds, 3); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTopNDaysEdges(t *testing.T) {
	ds := exampleDataset(t)
	if got := TopNDays(ds, 0); len(got) != 0 {
		t.Errorf("n=0: got %v", got)
	}
	if got := TopNDays(build(t), 10); len(got) != 0 {
		t.Errorf("empty dataset: got %v", got)
	}
	if got := TopNDays(ds, 10); len(got) != 2 {
		t.Errorf("fewer dates than n: got %d entries", len(got))
	}
}

func TestInvalidSelection(t *testing.T) {
	ds := exampleDataset(t)

	_, err := ApplyFilter(ds, Selection{Column: "colour", Values: []string{"red"}})
	if !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("ApplyFilter: got %v", err)
	}
	if got, err := ApplyFilter(ds, Selection{Column: "nope"}); !errors.Is(err, ErrInvalidSelection) || got != nil {
		t.Errorf("ApplyFilter with no values: got %v, %v", got, err)
	}
	if _, err := GroupedSums(ds, "colour"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("GroupedSums: got %v", err)
	}
	if _, err := DistinctValues(ds, "colour"); !errors.Is(err, ErrInvalidSelection) {
		t.Errorf("DistinctValues: got %v", err)
	}
	var ise *InvalidSelectionError
	if _, err := ComputeView(context.Background(), ds, Selection{Column: "colour"}, Options{}); !errors.As(err, &ise) || ise.Column != "colour" {
		t.Errorf("ComputeView: got %v", err)
	}
}

func TestCategoricalColumns(t *testing.T) {
	ds := exampleDataset(t)
	want := []string{"dteday", "season", "mnth", "weathersit", "yr"}
	if got := CategoricalColumns(ds); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDistinctValues(t *testing.T) {
	ds := build(t,
		"2011-01-01,1,0,1,2,0.3,100",
		"2011-01-02,1,0,1,1,0.4,50",
		"2011-01-03,1,0,1,2,0.4,50",
		"2011-01-04,1,0,1,7,0.4,50",
	)
	got, err := DistinctValues(ds, "weather")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Mist", "Clear", MissingLabel}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortedGroups(t *testing.T) {
	got := SortedGroups(map[string]int{"Fall": 5, "Spring": 9, "Summer": 5})
	want := []GroupSum{{"Spring", 9}, {"Fall", 5}, {"Summer", 5}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
