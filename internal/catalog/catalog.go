// Package catalog defines the fixed percentile grouping modes offered by the
// explorer. Groups are derived from small integer ranges at package
// initialization rather than hand-written literals, so the labels cannot
// drift from what pkg/percentile parses.
package catalog

import (
	"github.com/iwvelando/income-explorer/pkg/percentile"
)

// Group names, in the order they are presented.
const (
	KeyGroups         = "key_groups"
	DetailedPGroups   = "detailed_p_groups"
	DetailedTopGroups = "detailed_top_groups"
)

// thousandths of a percentile point per unit percentile
const milli = 1000

var groups = map[string][]string{
	KeyGroups:         buildKeyGroups(),
	DetailedPGroups:   buildDetailedPGroups(),
	DetailedTopGroups: buildDetailedTopGroups(),
}

// Names returns the group names in presentation order.
func Names() []string {
	return []string{KeyGroups, DetailedPGroups, DetailedTopGroups}
}

// Groups returns the mapping from group name to its ordered band labels.
// The returned slices are shared; callers must not modify them.
func Groups() map[string][]string {
	out := make(map[string][]string, len(groups))
	for name, labels := range groups {
		out[name] = labels
	}
	return out
}

// Group returns the ordered band labels for one grouping mode.
func Group(name string) ([]string, bool) {
	labels, ok := groups[name]
	return labels, ok
}

// buildKeyGroups returns the five canonical splits plus the top 0.01%
// band, followed by all ten decile bands.
func buildKeyGroups() []string {
	labels := []string{
		"p0p100", "p0p50", "p50p90", "p90p99", "p99p100", "p99.99p100",
	}
	for i := 0; i < 10; i++ {
		labels = append(labels, percentile.Label(i*10*milli, (i+1)*10*milli))
	}
	return labels
}

// buildDetailedPGroups returns bands of strictly increasing resolution
// approaching the top of the distribution: unit percentiles up to p99,
// then tenths within the top 1%, hundredths within the top 0.1%,
// thousandths within the top 0.01%, and the single top ten-thousandth band.
func buildDetailedPGroups() []string {
	var labels []string

	// p0p1 .. p98p99
	for i := 0; i < 99; i++ {
		labels = append(labels, percentile.Label(i*milli, (i+1)*milli))
	}
	// p99p99.1 .. p99.8p99.9
	for i := 99000; i < 99900; i += 100 {
		labels = append(labels, percentile.Label(i, i+100))
	}
	// p99.9p99.91 .. p99.98p99.99
	for i := 99900; i < 99990; i += 10 {
		labels = append(labels, percentile.Label(i, i+10))
	}
	// p99.99p99.991 .. p99.998p99.999
	for i := 99990; i < 99999; i++ {
		labels = append(labels, percentile.Label(i, i+1))
	}
	// p99.999p100
	labels = append(labels, percentile.Label(99999, 100000))

	return labels
}

// buildDetailedTopGroups returns the 100 cumulative top-share bands
// p0p100, p1p100, ..., p99p100.
func buildDetailedTopGroups() []string {
	var labels []string
	for i := 0; i < 100; i++ {
		labels = append(labels, percentile.Label(i*milli, 100*milli))
	}
	return labels
}
