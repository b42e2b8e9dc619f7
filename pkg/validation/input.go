package validation

import (
	"fmt"
	"strings"

	"github.com/iwvelando/supervision-roi/internal/roi"
	"go.uber.org/multierr"
)

// Bounds accepted for calculator inputs.
const (
	MaxMonthlyVolume    = 1000
	MaxAvgPerDay        = 500
	MinHourlyRate       = 50.0
	MaxHourlyRate       = 2000.0
	MinAnnualSalary     = 100000.0
	MaxAnnualSalary     = 2000000.0
	MaxPerDiemRate      = 5000.0
	MaxAvgReimbursement = 10000.0
	MaxDowntimePct      = 100.0
	MinCenters          = 1
	MaxCenters          = 100
)

// ValidateInput checks in against the documented input bounds and returns
// every violation combined into a single error. The engine itself accepts
// any value; these bounds belong to the presentation layer.
func ValidateInput(in roi.Input) error {
	var err error

	err = multierr.Append(err, intRange("monthlyVolume", in.MonthlyVolume, 0, MaxMonthlyVolume))
	err = multierr.Append(err, intRange("avgPerDay", in.AvgPerDay, 0, MaxAvgPerDay))
	err = multierr.Append(err, intRange("numCenters", in.NumCenters, MinCenters, MaxCenters))

	switch c := in.Compensation.(type) {
	case roi.HourlyRate:
		err = multierr.Append(err, floatRange("hourlyRate", c.Rate, MinHourlyRate, MaxHourlyRate))
	case roi.AnnualSalary:
		err = multierr.Append(err, floatRange("annualSalary", c.Salary, MinAnnualSalary, MaxAnnualSalary))
	default:
		err = multierr.Append(err, fmt.Errorf("compensation is required"))
	}

	err = multierr.Append(err, floatRange("perDiemRate", in.PerDiemRate, 0, MaxPerDiemRate))
	err = multierr.Append(err, floatRange("avgReimbursement", in.AvgReimbursement, 0, MaxAvgReimbursement))
	err = multierr.Append(err, floatRange("downtimePct", in.DowntimePct, 0, MaxDowntimePct))

	if strings.TrimSpace(in.WeekdayStart) == "" {
		err = multierr.Append(err, fmt.Errorf("weekdayStart is required"))
	}
	if strings.TrimSpace(in.WeekdayEnd) == "" {
		err = multierr.Append(err, fmt.Errorf("weekdayEnd is required"))
	}

	if !in.Plan.Known() {
		err = multierr.Append(err, fmt.Errorf("coveragePlan must be one of %s, got %q", planNames(), in.Plan))
	}

	// Only the selected plan is priced; other entries are never read.
	if price, ok := in.Prices.UnitPrice(in.Plan); ok && price < 0 {
		err = multierr.Append(err, fmt.Errorf("price for plan %s must not be negative, got %v", in.Plan, price))
	}

	return err
}

// Errors splits a combined validation error into its individual violations.
func Errors(err error) []string {
	errs := multierr.Errors(err)
	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		messages = append(messages, e.Error())
	}
	return messages
}

func intRange(field string, value, min, max int) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %d and %d, got %d", field, min, max, value)
	}
	return nil
}

func floatRange(field string, value, min, max float64) error {
	if value < min || value > max {
		return fmt.Errorf("%s must be between %v and %v, got %v", field, min, max, value)
	}
	return nil
}

func planNames() string {
	names := make([]string, 0, len(roi.Plans))
	for _, plan := range roi.Plans {
		names = append(names, string(plan))
	}
	return strings.Join(names, ", ")
}
