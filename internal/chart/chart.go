// Package chart builds chart specifications for the web UI. Specs are
// plain data (series plus axis options); the rendering itself is the UI's
// concern.
package chart

import (
	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/summary"
)

// Series is one drawable series. Categorical charts set Labels, numeric
// charts set X.
type Series struct {
	Type   string    `json:"type"`
	Labels []string  `json:"labels,omitempty"`
	X      []float64 `json:"x,omitempty"`
	Y      []float64 `json:"y"`
}

// Spec describes one chart.
type Spec struct {
	Title       string   `json:"title"`
	XAxisTitle  string   `json:"xAxisTitle"`
	YAxisTitle  string   `json:"yAxisTitle"`
	YAxisType   string   `json:"yAxisType"`
	RangeSlider bool     `json:"rangeSlider"`
	ShowLegend  bool     `json:"showLegend"`
	Series      []Series `json:"series"`
}

// Summary builds the fixed-cutoff overview chart: a line and a bar series
// over the cutoff labels, in reference currency.
func Summary(records []summary.Record, title string) Spec {
	labels := make([]string, len(records))
	values := make([]float64, len(records))
	for i, record := range records {
		labels[i] = record.Cutoff
		values[i] = float64(record.ValueUSD)
	}

	return Spec{
		Title:      title,
		XAxisTitle: "Percentile",
		YAxisTitle: "$ USD",
		YAxisType:  "linear",
		Series: []Series{
			{Type: "line", Labels: labels, Y: values},
			{Type: "bar", Labels: labels, Y: values},
		},
	}
}

// Detailed builds the fine-grained chart over the selected percentile
// range, in the variable's native unit, with an optional log y-axis and a
// range slider.
func Detailed(points []dataset.Point, title, yAxisType string) Spec {
	xs := make([]float64, len(points))
	ys := make([]float64, len(points))
	for i, p := range points {
		xs[i] = p.Band.Lower
		ys[i] = p.Value
	}

	return Spec{
		Title:       title,
		XAxisTitle:  "Percentile",
		YAxisTitle:  "Value",
		YAxisType:   yAxisType,
		RangeSlider: true,
		Series: []Series{
			{Type: "line", X: xs, Y: ys},
			{Type: "bar", X: xs, Y: ys},
		},
	}
}
