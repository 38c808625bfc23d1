// Package explore ties the pipeline together: one user selection in, one
// fully computed view out. Each call recomputes from scratch; a view owns
// its data and shares nothing with other requests.
package explore

import (
	"context"
	"fmt"

	"github.com/iwvelando/income-explorer/internal/chart"
	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/rates"
	"github.com/iwvelando/income-explorer/internal/summary"
	"github.com/iwvelando/income-explorer/pkg/constants"
	"github.com/iwvelando/income-explorer/pkg/format"
	"github.com/iwvelando/income-explorer/pkg/validation"
	"go.uber.org/zap"
)

// Selection holds one set of user inputs. Zero Year means "pick the
// default year for the variable"; Start/End default to the full range when
// both are zero.
type Selection struct {
	Country  string
	Variable string
	Year     int
	Group    string
	Start    float64
	End      float64
	YAxis    string
}

// SummaryRow is one display row of the summary table.
type SummaryRow struct {
	Cutoff   string `json:"cutoff"`
	ValueUSD int64  `json:"valueUsd"`
	USD      string `json:"usd"`
	Local    string `json:"local"`
	Afford   string `json:"afford"`
}

// View is the computed result for one selection.
type View struct {
	Country      dataset.Country      `json:"country"`
	Variable     dataset.VariableMeta `json:"variable"`
	Year         int                  `json:"year"`
	Group        string               `json:"group"`
	Currency     string               `json:"currency"`
	Rate         float64              `json:"rate"`
	Points       []dataset.Point      `json:"points"`
	Detail       []dataset.Point      `json:"detail"`
	Summary      []SummaryRow         `json:"summary"`
	SummaryChart chart.Spec           `json:"summaryChart"`
	DetailChart  chart.Spec           `json:"detailChart"`
}

// Title returns the chart heading for the view.
func (v *View) Title() string {
	return fmt.Sprintf("%s in %d", v.Variable.DisplayLabel(), v.Year)
}

// Explorer runs the filtering and summarization pipeline against a data
// store and a rate provider.
type Explorer struct {
	store  *dataset.Store
	rates  rates.Provider
	logger *zap.Logger
}

// New constructs an Explorer.
func New(store *dataset.Store, provider rates.Provider, logger *zap.Logger) *Explorer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Explorer{store: store, rates: provider, logger: logger}
}

// Explore computes the view for one selection. Domain failures come back
// as typed errors (*dataset.NoDataError, *summary.MissingCutoffError,
// *rates.ProviderError) so the interactive layer can present each as a
// recoverable message.
func (e *Explorer) Explore(ctx context.Context, sel Selection) (*View, error) {
	if err := e.normalize(&sel); err != nil {
		return nil, err
	}

	country, err := e.lookupCountry(sel.Country)
	if err != nil {
		return nil, err
	}

	observations, err := e.store.Observations(sel.Country)
	if err != nil {
		return nil, err
	}
	meta, err := e.store.Metadata(sel.Country)
	if err != nil {
		return nil, err
	}

	varMeta, ok := findVariable(meta, sel.Variable)
	if !ok {
		return nil, fmt.Errorf("unknown variable %q for country %s", sel.Variable, sel.Country)
	}

	if sel.Year == 0 {
		year, ok := dataset.DefaultYear(dataset.Years(observations, sel.Variable))
		if !ok {
			return nil, &dataset.NoDataError{Variable: sel.Variable, Group: sel.Group}
		}
		sel.Year = year
	}

	filtered, err := dataset.Filter(observations, sel.Variable, sel.Year, sel.Group)
	if err != nil {
		return nil, err
	}
	if len(filtered) == 0 {
		return nil, &dataset.NoDataError{Variable: sel.Variable, Year: sel.Year, Group: sel.Group}
	}

	points, err := dataset.Points(filtered)
	if err != nil {
		return nil, err
	}

	rate, err := e.rates.Rate(ctx, varMeta.Unit)
	if err != nil {
		return nil, err
	}

	records, err := summary.Summarize(points, rate)
	if err != nil {
		return nil, err
	}

	view := &View{
		Country:  country,
		Variable: varMeta,
		Year:     sel.Year,
		Group:    sel.Group,
		Currency: varMeta.Unit,
		Rate:     rate,
		Points:   points,
		Detail:   dataset.ClipPoints(points, sel.Start, sel.End),
		Summary:  buildRows(records, varMeta.Unit),
	}
	view.SummaryChart = chart.Summary(records, view.Title())
	view.DetailChart = chart.Detailed(view.Detail, view.Title(), sel.YAxis)

	e.logger.Info("computed view",
		zap.String("op", "explore.Explore"),
		zap.String("country", sel.Country),
		zap.String("variable", sel.Variable),
		zap.Int("year", sel.Year),
		zap.String("group", sel.Group),
		zap.Int("points", len(points)),
		zap.Float64("rate", rate),
	)
	return view, nil
}

func (e *Explorer) normalize(sel *Selection) error {
	if sel.Country == "" {
		sel.Country = constants.DefaultCountry
	}
	if sel.Group == "" {
		sel.Group = constants.DefaultGroup
	}
	if sel.YAxis == "" {
		sel.YAxis = constants.AxisLinear
	}
	if sel.Start == 0 && sel.End == 0 {
		sel.End = constants.PercentileMax
	}

	if sel.Variable == "" {
		return fmt.Errorf("no variable selected")
	}
	if err := validation.ValidateGroup(sel.Group); err != nil {
		return err
	}
	if err := validation.ValidateAxisType(sel.YAxis); err != nil {
		return err
	}
	return validation.ValidateBounds(sel.Start, sel.End)
}

// lookupCountry resolves the display name, falling back to the bare code
// when the index has no entry for it.
func (e *Explorer) lookupCountry(code string) (dataset.Country, error) {
	countries, err := e.store.Countries()
	if err != nil {
		return dataset.Country{}, err
	}
	for _, c := range countries {
		if c.Alpha2 == code {
			return c, nil
		}
	}
	return dataset.Country{Alpha2: code, TitleName: code}, nil
}

func findVariable(meta []dataset.VariableMeta, variable string) (dataset.VariableMeta, bool) {
	for _, m := range meta {
		if m.Variable == variable {
			return m, true
		}
	}
	return dataset.VariableMeta{}, false
}

// DefaultVariable picks the variable preselected by the explorer: the
// canonical pre-tax income variable when present, otherwise the first one.
func DefaultVariable(meta []dataset.VariableMeta) (string, bool) {
	if len(meta) == 0 {
		return "", false
	}
	for _, m := range meta {
		if m.Variable == constants.DefaultVariable {
			return m.Variable, true
		}
	}
	return meta[0].Variable, true
}

func buildRows(records []summary.Record, currency string) []SummaryRow {
	rows := make([]SummaryRow, 0, len(records))
	for _, record := range records {
		rows = append(rows, SummaryRow{
			Cutoff:   record.Cutoff,
			ValueUSD: record.ValueUSD,
			USD:      format.CompactCurrency(record.ValueUSD, constants.ReferenceCurrency),
			Local:    format.CompactCurrency(record.ValueNative, currency),
			Afford:   record.Afford,
		})
	}
	return rows
}
