// Package summary computes the fixed-cutoff summary of a filtered
// distribution: for each of the ten canonical percentile cutoffs it looks
// up the matching point, converts its value to the reference currency, and
// attaches an affordability label.
package summary

import (
	"fmt"

	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/pkg/afford"
	"github.com/shopspring/decimal"
)

// Cutoff is one summary boundary: the percentile value at which a point
// must exist, and the display label for that slice of the distribution.
type Cutoff struct {
	Percentile float64
	Label      string
}

// Cutoffs returns the fixed summary boundaries in ascending order.
func Cutoffs() []Cutoff {
	return []Cutoff{
		{1, "Bottom 1%"},
		{5, "Bottom 5%"},
		{10, "Bottom 10%"},
		{50, "Middle 50%"},
		{90, "Top 10%"},
		{95, "Top 5%"},
		{99, "Top 1%"},
		{99.9, "Top 0.1%"},
		{99.99, "Top 0.01%"},
		{99.999, "Top 0.001%"},
	}
}

// Record is one row of the summary: a cutoff label, the native value
// truncated to a whole unit, the converted reference-currency value, and
// the affordability label for the converted amount.
type Record struct {
	Cutoff      string  `json:"cutoff"`
	ValueNative int64   `json:"valueNative"`
	ValueUSD    int64   `json:"valueUsd"`
	Afford      string  `json:"afford"`
	Percentile  float64 `json:"percentile"`
}

// MissingCutoffError indicates that the filtered data holds no point at a
// required cutoff percentile. Callers surface it as a data-availability
// gap rather than skipping the row.
type MissingCutoffError struct {
	Percentile float64
	Label      string
}

func (e *MissingCutoffError) Error() string {
	return fmt.Sprintf("no observation at cutoff percentile %v (%s)", e.Percentile, e.Label)
}

// Summarize builds one record per cutoff from points keyed by band lower
// bound. referenceRate converts the native unit to the reference currency
// as value / referenceRate, rounded half away from zero. Pure given its
// inputs; rate fetching belongs to the caller.
func Summarize(points []dataset.Point, referenceRate float64) ([]Record, error) {
	if referenceRate <= 0 {
		return nil, fmt.Errorf("invalid reference rate %v", referenceRate)
	}

	rate := decimal.NewFromFloat(referenceRate)
	records := make([]Record, 0, len(Cutoffs()))
	for _, cutoff := range Cutoffs() {
		point, ok := findPoint(points, cutoff.Percentile)
		if !ok {
			return nil, &MissingCutoffError{Percentile: cutoff.Percentile, Label: cutoff.Label}
		}

		native := int64(point.Value)
		usd := decimal.NewFromInt(native).DivRound(rate, 0).IntPart()

		records = append(records, Record{
			Cutoff:      cutoff.Label,
			ValueNative: native,
			ValueUSD:    usd,
			Afford:      afford.Classify(usd),
			Percentile:  cutoff.Percentile,
		})
	}

	return records, nil
}

func findPoint(points []dataset.Point, cutoff float64) (dataset.Point, bool) {
	for _, p := range points {
		if p.Band.Lower == cutoff {
			return p, true
		}
	}
	return dataset.Point{}, false
}
