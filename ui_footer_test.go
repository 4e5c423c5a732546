package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string { return ansiRE.ReplaceAllString(s, "") }

func TestRenderFooter(t *testing.T) {
	st := FooterState{
		Mode:     CmdNone,
		Source:   "day.csv",
		Filter:   "season=Spring",
		Focus:    "values",
		Cursor:   1,
		Shown:    3,
		Total:    731,
		TopScope: "filtered",
		Unmapped: 2,
		Status:   "✓ Row copied",
		Legend:   "(? help)",
	}
	out := stripANSI(RenderFooter(140, st))

	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	for _, want := range []string{"NORMAL", "day.csv", "filter season=Spring", "focus values", "top filtered", "! 2 unmapped", "row 1 · 3/731 days"} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("control bar %q missing %q", lines[0], want)
		}
	}
	if !strings.HasPrefix(lines[1], "✓ Row copied") || !strings.HasSuffix(lines[1], "(? help)") {
		t.Errorf("status bar: %q", lines[1])
	}
	for i, l := range lines {
		if w := runewidth.StringWidth(l); w != 140 {
			t.Errorf("line %d is %d wide, want 140", i, w)
		}
	}
}

func TestRenderFooterDefaults(t *testing.T) {
	out := stripANSI(RenderFooter(120, FooterState{Source: "day.csv"}))
	for _, want := range []string{"filter None", "top all", "row 0 · 0/0 days", "(? help · / search · q quit)"} {
		if !strings.Contains(out, want) {
			t.Errorf("footer %q missing %q", out, want)
		}
	}
	if strings.Contains(out, "unmapped") {
		t.Errorf("no warnings but footer shows them: %q", out)
	}
}

func TestRenderFooterCommandMode(t *testing.T) {
	st := FooterState{Mode: CmdSearch, Input: "search: 2012", Source: "day.csv"}
	out := stripANSI(RenderFooter(100, st))
	if !strings.Contains(out, "SEARCH") || !strings.Contains(out, "day.csv ▸ search: 2012") {
		t.Errorf("footer %q missing command input", out)
	}
}

func TestRenderFooterNarrowDropsSegments(t *testing.T) {
	st := FooterState{
		Source:   "day.csv",
		Filter:   "weathersit=Clear",
		Focus:    "table",
		Cursor:   4,
		Shown:    10,
		Total:    731,
		Unmapped: 1,
	}
	out := stripANSI(RenderFooter(60, st))
	first := strings.Split(out, "\n")[0]

	if w := runewidth.StringWidth(first); w != 60 {
		t.Errorf("control bar is %d wide, want 60: %q", w, first)
	}
	for _, want := range []string{"NORMAL", "row 4 · 10/731 days"} {
		if !strings.Contains(first, want) {
			t.Errorf("narrow bar %q lost %q", first, want)
		}
	}
	if strings.Contains(first, "focus") {
		t.Errorf("focus should be dropped first: %q", first)
	}
}

func TestFitSegments(t *testing.T) {
	segs := []footerSegment{
		{text: "aaaa", drop: 0},
		{text: "bbbb", drop: 2},
		{text: "cccc", drop: 1},
	}
	tests := []struct {
		width int
		want  []string
	}{
		{20, []string{"aaaa", "bbbb", "cccc"}},
		{11, []string{"aaaa", "cccc"}},
		{6, []string{"aaaa"}},
		{2, []string{"aa"}},
		{0, nil},
	}
	for _, tt := range tests {
		in := append([]footerSegment(nil), segs...)
		got := fitSegments(in, tt.width)
		var texts []string
		for _, s := range got {
			texts = append(texts, s.text)
		}
		if strings.Join(texts, ",") != strings.Join(tt.want, ",") {
			t.Errorf("width %d: got %v, want %v", tt.width, texts, tt.want)
		}
	}
}

func TestRenderFooterZeroWidth(t *testing.T) {
	if got := RenderFooter(0, FooterState{}); got != "" {
		t.Errorf("got %q", got)
	}
}

func TestTruncatePlain(t *testing.T) {
	tests := []struct {
		in   string
		w    int
		want string
	}{
		{"season", 10, "season"},
		{"season", 3, "sea"},
		{"season", 0, ""},
		{"日本語", 4, "日本"},
	}
	for _, tt := range tests {
		if got := truncatePlain(tt.in, tt.w); got != tt.want {
			t.Errorf("truncatePlain(%q, %d): got %q, want %q", tt.in, tt.w, got, tt.want)
		}
	}
}
