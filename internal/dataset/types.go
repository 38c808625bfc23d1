// Package dataset loads and filters the per-country WID tables: a global
// country index, per-country observations, and per-country variable
// metadata. All tables are semicolon-separated CSV with a header row.
package dataset

import (
	"strings"

	"github.com/iwvelando/income-explorer/pkg/percentile"
)

// Country is one row of the global country index.
type Country struct {
	Alpha2    string `json:"alpha2"`
	TitleName string `json:"titleName"`
}

// Observation is one row of a country's data table. Values are in the
// variable's native currency unit and are never mutated after load.
type Observation struct {
	Variable   string  `json:"variable"`
	Year       int     `json:"year"`
	Percentile string  `json:"percentile"`
	Value      float64 `json:"value"`
}

// VariableMeta describes one variable of a country's metadata table.
type VariableMeta struct {
	Variable  string `json:"variable"`
	Unit      string `json:"unit"`
	ShortName string `json:"shortName"`
	ShortType string `json:"shortType"`
	ShortPop  string `json:"shortPop"`
	ShortAge  string `json:"shortAge"`
}

// DisplayLabel joins the descriptive columns the way the explorer presents
// a variable for selection.
func (m VariableMeta) DisplayLabel() string {
	return strings.Join([]string{m.ShortName, m.ShortType, m.ShortPop, m.ShortAge, m.Unit}, " | ")
}

// Point is an observation whose band label has been parsed. The summary
// and the detailed chart work on points keyed by the band's lower bound.
type Point struct {
	Band  percentile.Range `json:"band"`
	Value float64          `json:"value"`
}
