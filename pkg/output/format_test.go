package output

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/iwvelando/income-explorer/internal/dataset"
	"github.com/iwvelando/income-explorer/internal/explore"
	"github.com/iwvelando/income-explorer/pkg/percentile"
)

func sampleView() *explore.View {
	return &explore.View{
		Country: dataset.Country{Alpha2: "IN", TitleName: "India"},
		Variable: dataset.VariableMeta{
			Variable:  "aptincj992",
			Unit:      "INR",
			ShortName: "Pre-tax national income",
			ShortType: "Average",
			ShortPop:  "equal-split adults",
			ShortAge:  "Adults",
		},
		Year:     2022,
		Currency: "INR",
		Rate:     80,
		Detail: []dataset.Point{
			{Band: percentile.MustParse("p50p51"), Value: 160000},
		},
		Summary: []explore.SummaryRow{
			{Cutoff: "Bottom 1%", ValueUSD: 100, USD: "$100", Local: "₹8K", Afford: "pair of Nike shoes 👟"},
			{Cutoff: "Top 1%", ValueUSD: 50000, USD: "$50K", Local: "₹4M", Afford: "wedding celebration 💒"},
		},
	}
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = oldStdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestPrettyFormat(t *testing.T) {
	out := captureStdout(t, func() {
		PrettyFormat(sampleView())
	})

	if !strings.Contains(out, "--- India (IN) ---") {
		t.Errorf("PrettyFormat missing country header:\n%s", out)
	}
	if !strings.Contains(out, "Pre-tax national income | Average | equal-split adults | Adults | INR in 2022") {
		t.Errorf("PrettyFormat missing title line:\n%s", out)
	}
	if !strings.Contains(out, "1 USD = 80 INR") {
		t.Errorf("PrettyFormat missing rate line:\n%s", out)
	}
	if !strings.Contains(out, "Bottom 1%") || !strings.Contains(out, "$100") {
		t.Errorf("PrettyFormat missing summary row:\n%s", out)
	}
}

func TestCsvFormat(t *testing.T) {
	out := captureStdout(t, func() {
		CsvFormat(sampleView())
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("CsvFormat produced %d lines, expected header plus two rows:\n%s", len(lines), out)
	}
	if lines[0] != `"cutoff","value_usd","usd","local","afford"` {
		t.Errorf("CsvFormat header = %s", lines[0])
	}
	if !strings.Contains(lines[1], `"Bottom 1%","100","$100","₹8K"`) {
		t.Errorf("CsvFormat row = %s", lines[1])
	}
}
