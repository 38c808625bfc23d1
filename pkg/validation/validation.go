// Package validation provides input validation for explorer selections.
package validation

import (
	"fmt"

	"github.com/iwvelando/income-explorer/internal/catalog"
	"github.com/iwvelando/income-explorer/pkg/constants"
)

// ValidateOutputFormat checks the CLI output format selection.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format %q; expected %s or %s",
		format, constants.OutputFormatPretty, constants.OutputFormatCSV)
}

// ValidateAxisType checks the y-axis scale mode for the detailed chart.
func ValidateAxisType(axis string) error {
	switch axis {
	case constants.AxisLinear, constants.AxisLog:
		return nil
	}
	return fmt.Errorf("invalid y-axis type %q; expected %s or %s",
		axis, constants.AxisLinear, constants.AxisLog)
}

// ValidateBounds checks a percentile range selection.
func ValidateBounds(start, end float64) error {
	if start < constants.PercentileMin || end > constants.PercentileMax {
		return fmt.Errorf("percentile bounds [%v, %v] outside [%v, %v]",
			start, end, constants.PercentileMin, constants.PercentileMax)
	}
	if start >= end {
		return fmt.Errorf("percentile range start %v must be below end %v", start, end)
	}
	return nil
}

// ValidateGroup checks that a grouping mode exists in the catalog.
func ValidateGroup(name string) error {
	if _, ok := catalog.Group(name); !ok {
		return fmt.Errorf("unknown percentile group %q", name)
	}
	return nil
}
