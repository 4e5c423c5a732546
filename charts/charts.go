// Package charts renders the dashboard bar charts as PNG images.
package charts

import (
	"errors"
	"fmt"
	"io"

	"github.com/andareed/siftly-bikes/engine"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var ErrNoData = errors.New("charts: nothing to plot")

type Size struct {
	Width  int
	Height int
}

var DefaultSize = Size{Width: 1024, Height: 600}

var (
	groupedFill = drawing.ColorFromHex("4c72b0")
	// viridis-like ramp for the top days, darkest first
	topDayRamp = []drawing.Color{
		drawing.ColorFromHex("440154"), drawing.ColorFromHex("482878"),
		drawing.ColorFromHex("3e4989"), drawing.ColorFromHex("31688e"),
		drawing.ColorFromHex("26828e"), drawing.ColorFromHex("1f9e89"),
		drawing.ColorFromHex("35b779"), drawing.ColorFromHex("6ece58"),
		drawing.ColorFromHex("b5de2b"), drawing.ColorFromHex("fde725"),
	}
)

func (s Size) orDefault() Size {
	if s.Width <= 0 {
		s.Width = DefaultSize.Width
	}
	if s.Height <= 0 {
		s.Height = DefaultSize.Height
	}
	return s
}

// GroupedBarChart writes a PNG bar chart of rentals per category of column.
func GroupedBarChart(w io.Writer, column string, groups []engine.GroupSum, size Size) error {
	if len(groups) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(groups))
	for i, g := range groups {
		bars[i] = chart.Value{
			Label: g.Key,
			Value: float64(g.Count),
			Style: chart.Style{FillColor: groupedFill, StrokeColor: groupedFill},
		}
	}
	return render(w, fmt.Sprintf("Rentals by %s", column), bars, size.orDefault())
}

// TopDaysBarChart writes a PNG bar chart of the top rental days.
func TopDaysBarChart(w io.Writer, days []engine.DayCount, size Size) error {
	if len(days) == 0 {
		return ErrNoData
	}
	bars := make([]chart.Value, len(days))
	for i, d := range days {
		c := topDayRamp[i*len(topDayRamp)/len(days)]
		bars[i] = chart.Value{
			Label: d.Date,
			Value: float64(d.Count),
			Style: chart.Style{FillColor: c, StrokeColor: c},
		}
	}
	return render(w, fmt.Sprintf("Top %d rental days", len(days)), bars, size.orDefault())
}

func render(w io.Writer, title string, bars []chart.Value, size Size) error {
	maxV := 0.0
	for _, b := range bars {
		if b.Value > maxV {
			maxV = b.Value
		}
	}
	if maxV == 0 {
		maxV = 1
	}

	const spacing = 8
	barWidth := (size.Width-120)/len(bars) - spacing
	switch {
	case barWidth < 2:
		barWidth = 2
	case barWidth > 120:
		barWidth = 120
	}

	graph := chart.BarChart{
		Title:      title,
		Width:      size.Width,
		Height:     size.Height,
		BarWidth:   barWidth,
		BarSpacing: spacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 24}},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: maxV * 1.1},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("%.0f", f)
				}
				return ""
			},
		},
		Bars: bars,
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("charts: render %q: %w", title, err)
	}
	return nil
}
