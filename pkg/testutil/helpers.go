// Package testutil provides common utility functions for testing.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
)

// Fixture selection constants matching the sample tables below.
const (
	SampleCountry  = "IN"
	SampleVariable = "aptincj992"
	SampleYear     = 2022
	SampleUnit     = "INR"
)

// SampleRate is the USD->INR rate the fixtures were designed around.
const SampleRate = 80.0

// CutoffBands returns band labels whose parsed lower bounds equal the ten
// summary cutoffs, in ascending cutoff order. All of them belong to the
// detailed_p_groups grouping mode.
func CutoffBands() []string {
	return []string{
		"p1p2", "p5p6", "p10p11", "p50p51", "p90p91",
		"p95p96", "p99p99.1", "p99.9p99.91", "p99.99p99.991", "p99.999p100",
	}
}

// SampleValues returns the native-currency values stored at the cutoff
// bands for the sample year, in the same order as CutoffBands.
func SampleValues() []float64 {
	return []float64{
		8000, 20000, 40000, 160000, 800000,
		1600000, 4000000, 16000000, 80000000, 400000000,
	}
}

// WriteSampleData writes a small WID-shaped data directory: a country
// index, one country's observations covering two years at the summary
// cutoff bands, and the matching variable metadata.
func WriteSampleData(dir string) error {
	countries := "alpha2;titlename\n" +
		"IN;India\n" +
		"US;USA\n"

	data := "country;variable;percentile;year;value;age;pop\n"
	bands := CutoffBands()
	values := SampleValues()
	for i, band := range bands {
		data += fmt.Sprintf("IN;%s;%s;%d;%.0f;992;j\n", SampleVariable, band, SampleYear, values[i])
		// The previous year holds half the values so year filtering is
		// observable in tests.
		data += fmt.Sprintf("IN;%s;%s;%d;%.0f;992;j\n", SampleVariable, band, SampleYear-1, values[i]/2)
	}
	// A band outside detailed_p_groups and a second variable, both of
	// which filters must exclude.
	data += fmt.Sprintf("IN;%s;p0p50;%d;50000;992;j\n", SampleVariable, SampleYear)
	data += fmt.Sprintf("IN;shwealj992;p1p2;%d;1000;992;j\n", SampleYear)

	meta := "country;variable;unit;shortname;shorttype;shortpop;shortage\n" +
		fmt.Sprintf("IN;%s;INR;Pre-tax national income;Average;equal-split adults;Adults\n", SampleVariable) +
		"IN;shwealj992;INR;Net personal wealth;Share;equal-split adults;Adults\n"

	files := map[string]string{
		"WID_countries.csv":   countries,
		"WID_data_IN.csv":     data,
		"WID_metadata_IN.csv": meta,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			return err
		}
	}
	return nil
}
