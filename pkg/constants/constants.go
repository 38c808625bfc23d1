// Package constants provides shared constants for the income-explorer application.
package constants

// ReferenceCurrency is the common currency used for cross-country comparisons.
const ReferenceCurrency = "USD"

// Selection defaults mirroring the explorer UI.
const (
	// DefaultCountry is the country preselected in the explorer
	DefaultCountry = "IN"

	// DefaultVariable is the variable preselected when available
	// (pre-tax national income, equal-split adults)
	DefaultVariable = "aptincj992"

	// DefaultGroup is the grouping mode preselected in the explorer
	DefaultGroup = "detailed_p_groups"

	// PercentileMin is the lower bound of the selectable percentile range
	PercentileMin = 0.0

	// PercentileMax is the upper bound of the selectable percentile range
	PercentileMax = 100.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// Axis scale constants for the detailed chart
const (
	// AxisLinear is the linear y-axis scale mode
	AxisLinear = "linear"

	// AxisLog is the logarithmic y-axis scale mode
	AxisLog = "log"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultDataDir is the default directory holding the WID CSV tables
	DefaultDataDir = "wid_all_data"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the web UI
	DefaultServerAddress = ":8080"
)

// Rate provider defaults
const (
	// DefaultRateProviderURL is the USD-base exchange rate endpoint
	DefaultRateProviderURL = "https://api.exchangerate-api.com/v4/latest/USD"

	// DefaultRateTimeoutSeconds is the request timeout for rate fetches
	DefaultRateTimeoutSeconds = 10
)
