package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/andareed/siftly-bikes/charts"
	"github.com/andareed/siftly-bikes/dataset"
	"github.com/andareed/siftly-bikes/engine"
)

func testView(t *testing.T, sel engine.Selection) engine.View {
	t.Helper()
	raw, err := dataset.Load(writeDayCSV(t, dayCSV))
	if err != nil {
		t.Fatal(err)
	}
	ds, _ := dataset.Relabel(raw)
	v, err := engine.ComputeView(context.Background(), ds, sel, engine.Options{})
	if err != nil {
		t.Fatal(err)
	}
	return v
}

func TestExportView(t *testing.T) {
	v := testView(t, engine.Selection{Column: "season", Values: []string{"Fall"}})
	path := filepath.Join(t.TempDir(), "out.csv")

	if err := ExportView(v, path); err != nil {
		t.Fatalf("ExportView: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	want := [][]string{
		{"instant", "dteday", "season", "yr", "mnth", "weathersit", "temp", "cnt"},
		{"3", "2011-07-04", "Fall", "2011", "July", "Clear", "0.75", "6043"},
	}
	if !reflect.DeepEqual(records, want) {
		t.Errorf("got %v\nwant %v", records, want)
	}
}

func TestExportViewNoData(t *testing.T) {
	if err := ExportView(engine.View{}, filepath.Join(t.TempDir(), "x.csv")); err == nil {
		t.Error("expected an error without a table")
	}
}

func TestSaveChart(t *testing.T) {
	v := testView(t, engine.Selection{Column: "weathersit"})
	path := filepath.Join(t.TempDir(), "chart.png")

	if err := SaveChart(v, path, charts.Size{Width: 320, Height: 240}); err != nil {
		t.Fatalf("SaveChart: %v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(b, []byte("\x89PNG")) {
		t.Error("file is not a PNG")
	}
}

func TestSaveChartNoDataRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chart.png")
	err := SaveChart(engine.View{Selection: engine.Selection{Column: "season"}}, path, charts.Size{})
	if !errors.Is(err, charts.ErrNoData) {
		t.Fatalf("got %v, want ErrNoData", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("chart file left behind: %v", err)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		sel  engine.Selection
		want string
	}{
		{engine.Selection{}, "all"},
		{engine.Selection{Column: "season"}, "season"},
		{engine.Selection{Column: "season", Values: []string{"Spring", "Fall"}}, "season-spring-fall"},
		{engine.Selection{Column: "weathersit", Values: []string{"Light Snow"}}, "weathersit-light-snow"},
		{engine.Selection{Column: "weathersit", Values: []string{engine.MissingLabel}}, "weathersit-missing"},
	}
	for _, tt := range tests {
		if got := slug(tt.sel); got != tt.want {
			t.Errorf("slug(%v): got %q, want %q", tt.sel, got, tt.want)
		}
	}
}
