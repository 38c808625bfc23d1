// Package percentile provides parsing and construction of percentile band
// labels of the form p<lower>p<upper>, e.g. "p50p90" or "p99.99p100".
package percentile

import (
	"fmt"
	"strconv"
	"strings"
)

// Range is the numeric interval denoted by a percentile band label.
type Range struct {
	Lower float64
	Upper float64
}

// ParseError indicates a label that does not follow the p<lower>p<upper> form.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid percentile label %q: %s", e.Label, e.Reason)
}

// Parse converts a band label into its numeric interval. It strips the
// leading "p", splits on the remaining "p", and converts both parts to
// floats. Malformed labels return a *ParseError, never a default.
func Parse(label string) (Range, error) {
	body, ok := strings.CutPrefix(label, "p")
	if !ok {
		return Range{}, &ParseError{Label: label, Reason: "missing leading 'p'"}
	}

	parts := strings.Split(body, "p")
	if len(parts) != 2 {
		return Range{}, &ParseError{Label: label, Reason: "expected exactly one interior 'p' separator"}
	}

	lower, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Range{}, &ParseError{Label: label, Reason: fmt.Sprintf("lower bound %q is not numeric", parts[0])}
	}
	upper, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Range{}, &ParseError{Label: label, Reason: fmt.Sprintf("upper bound %q is not numeric", parts[1])}
	}

	return Range{Lower: lower, Upper: upper}, nil
}

// MustParse parses a label and panics on error. Intended for fixed labels
// known to be valid, e.g. in tests and catalog construction.
func MustParse(label string) Range {
	r, err := Parse(label)
	if err != nil {
		panic(err)
	}
	return r
}

// Label builds a band label from bounds expressed in thousandths of a
// percentile point (so 99991 means 99.991). Constructing labels from
// integers keeps the catalog and the parser in exact agreement; Parse
// round-trips every label produced here.
func Label(lower, upper int) string {
	return "p" + formatThousandths(lower) + "p" + formatThousandths(upper)
}

func formatThousandths(n int) string {
	whole := n / 1000
	frac := n % 1000
	if frac == 0 {
		return strconv.Itoa(whole)
	}
	s := fmt.Sprintf("%d.%03d", whole, frac)
	return strings.TrimRight(s, "0")
}
