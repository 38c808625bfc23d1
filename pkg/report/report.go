// Package report writes an explorer summary as a PDF document.
package report

import (
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/iwvelando/income-explorer/internal/explore"
)

// pdfText reduces a string to what the PDF standard fonts can render: the
// illustrative labels carry emoji that have no Latin-1 representation.
func pdfText(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r < 0x100 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// WriteSummary renders the summary table of a view to a PDF file.
func WriteSummary(path string, view *explore.View) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Income Distribution Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 8, pdfText(fmt.Sprintf("%s (%s)", view.Country.TitleName, view.Country.Alpha2)),
		"", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, pdfText(view.Title()), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("1 USD = %v %s", view.Rate, view.Currency), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	colWidths := []float64{35, 30, 30, 95}
	headers := []string{"Percentile", "USD", "Local", "Affords"}

	pdf.SetFont("Helvetica", "B", 10)
	for i, header := range headers {
		pdf.CellFormat(colWidths[i], 7, header, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range view.Summary {
		cells := []string{row.Cutoff, row.USD, row.Local, row.Afford}
		for i, cell := range cells {
			pdf.CellFormat(colWidths[i], 7, pdfText(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("failed to write PDF report: %w", err)
	}
	return nil
}
