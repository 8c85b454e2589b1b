// Package constants provides shared constants for the loan-schedule application.
package constants

// DateLayout is the format expected for payment dates in config files and is
// also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPlaces is the number of decimal places kept for currency values
	DecimalPlaces = 2

	// TwiceMonthlyFirstDay is the day of month of the first payment in a
	// twice-monthly pair; the second lands on the last day of the month.
	TwiceMonthlyFirstDay = 15

	// DefaultTermMonths is the loan length the default payment counts are
	// derived from.
	DefaultTermMonths = 3
)

// Currency constants
const (
	// DefaultCurrency is the ISO 4217 code used when none is provided
	DefaultCurrency = "CAD"

	// DefaultLocale is the BCP 47 tag used for number formatting
	DefaultLocale = "en-CA"
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"

	// OutputFormatYAML is the YAML output format
	OutputFormatYAML = "yaml"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "loan.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "loan.yaml.example"

	// EnvPrefix is the prefix for environment variable overrides
	EnvPrefix = "LOAN_SCHEDULE"
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)
