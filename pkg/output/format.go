// Package output provides utilities for formatting and displaying explorer views.
package output

import (
	"fmt"

	"github.com/iwvelando/income-explorer/internal/explore"
	"github.com/iwvelando/income-explorer/pkg/format"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(view *explore.View) {
	p := message.NewPrinter(format.LocaleFor(view.Country.Alpha2))

	fmt.Printf("--- %s (%s) ---\n", view.Country.TitleName, view.Country.Alpha2)
	fmt.Printf("%s\n", view.Title())
	fmt.Printf("1 USD = %v %s\n\n", view.Rate, view.Currency)

	fmt.Printf("Percentile   | USD        | Local      | Affords\n")
	fmt.Printf("__________   | ___        | _____      | _______\n")
	for _, row := range view.Summary {
		fmt.Printf("%-12s | %-10s | %-10s | %s\n", row.Cutoff, row.USD, row.Local, row.Afford)
	}

	fmt.Printf("\nBand            | Value\n")
	fmt.Printf("____            | _____\n")
	for _, point := range view.Detail {
		_, _ = p.Printf("p%vp%v | %.0f\n", point.Band.Lower, point.Band.Upper, point.Value)
	}
}

// CsvFormat outputs the summary table in comma-separated value format.
func CsvFormat(view *explore.View) {
	fmt.Printf("\"cutoff\",\"value_usd\",\"usd\",\"local\",\"afford\"\n")
	for _, row := range view.Summary {
		fmt.Printf("\"%s\",\"%d\",\"%s\",\"%s\",\"%s\"\n",
			row.Cutoff, row.ValueUSD, row.USD, row.Local, row.Afford)
	}
}
