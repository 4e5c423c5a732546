package engine

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestComputeView(t *testing.T) {
	ds := build(t,
		"2011-01-01,1,0,1,2,0.3,100",
		"2011-01-02,1,0,1,1,0.4,50",
		"2011-07-02,3,0,7,1,0.8,400",
	)
	sel := Selection{Column: "season", Values: []string{"Spring"}}

	v, err := ComputeView(context.Background(), ds, sel, Options{})
	if err != nil {
		t.Fatalf("ComputeView: %v", err)
	}
	if v.Table.Len() != 2 {
		t.Errorf("table: got %d rows, want 2", v.Table.Len())
	}
	if v.Total != 150 {
		t.Errorf("total: got %d, want 150", v.Total)
	}
	if !reflect.DeepEqual(v.Grouped, map[string]int{"Spring": 150}) {
		t.Errorf("grouped: got %v", v.Grouped)
	}
	// the ranking ignores the filter unless asked otherwise
	if len(v.Top) != 3 || v.Top[0].Date != "2011-07-02" {
		t.Errorf("top: got %v", v.Top)
	}

	v, err = ComputeView(context.Background(), ds, sel, Options{TopN: 1, TopFromFiltered: true})
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v.Top, []DayCount{{"2011-01-01", 100}}) {
		t.Errorf("filtered top: got %v", v.Top)
	}
}

func TestComputeViewNoFilter(t *testing.T) {
	ds := exampleDataset(t)
	v, err := ComputeView(context.Background(), ds, Selection{Column: "weather"}, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if v.Table != ds {
		t.Error("empty selection should show the full dataset")
	}
	if !reflect.DeepEqual(v.Grouped, map[string]int{"Mist": 100, "Clear": 50}) {
		t.Errorf("grouped: got %v", v.Grouped)
	}
}

func TestComputeViewCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := ComputeView(ctx, exampleDataset(t), Selection{Column: "season"}, Options{})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want context.Canceled", err)
	}
}
