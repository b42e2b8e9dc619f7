// Package constants provides shared constants for the supervision-roi application.
package constants

// Calendar constants used by the cost and volume models.
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// WeeksPerYear is the number of billable weeks in a year
	WeeksPerYear = 52

	// WeekdaysPerWeek is the number of covered weekdays in a week
	WeekdaysPerWeek = 5

	// WeekendDaysPerWeek is the number of covered weekend days in a week
	WeekendDaysPerWeek = 2

	// WorkingDaysPerMonth is the assumed number of scanning days in a month
	WorkingDaysPerMonth = 22

	// FTEHoursPerYear is the standard annual hours of one full-time equivalent
	FTEHoursPerYear = 2080

	// LocumShiftsPerWeekend is the number of backfill shifts bought per weekend
	LocumShiftsPerWeekend = 2

	// WeekendsPerMonth is the number of weekends assumed in a month
	WeekendsPerMonth = 4
)

// Revenue model constants
const (
	// AfterHoursScanIncrease is the scan rate uplift from evening scanning
	AfterHoursScanIncrease = 0.08

	// MaxDowntimeScanIncrease caps the scan rate uplift recovered from downtime
	MaxDowntimeScanIncrease = 0.10

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Default plan unit prices (currency units per plan period).
const (
	DefaultHourlyPrice  = 140.0
	DefaultDailyPrice   = 950.0
	DefaultMonthlyPrice = 18000.0
	DefaultAnnualPrice  = 200000.0
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// OutputFormatJSON is the JSON output format
	OutputFormatJSON = "json"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// ExampleConfigFile is the example configuration file name
	ExampleConfigFile = "config.yaml.example"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"

	// DefaultContactURL is the call-to-action link shown under the results
	DefaultContactURL = "https://calendly.com/"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxBodySizeBytes is the default maximum request body size (256 KB)
	DefaultMaxBodySizeBytes int64 = 256 * 1024
)

// Validation constants
const (
	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100
)
