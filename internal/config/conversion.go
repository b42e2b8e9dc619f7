package config

import (
	"fmt"

	"github.com/iwvelando/supervision-roi/internal/roi"
)

// PriceTable converts the configured pricing section into a roi.PriceTable.
// Keys are matched to plans case-insensitively and unknown keys are dropped.
// A nil table is returned when no pricing is configured.
func (c *Configuration) PriceTable() roi.PriceTable {
	if len(c.Pricing) == 0 {
		return nil
	}

	table := make(roi.PriceTable, len(c.Pricing))
	for key, price := range c.Pricing {
		plan := roi.ParsePlan(key)
		if !plan.Known() {
			continue
		}
		table[plan] = price
	}
	return table
}

// ToInput converts a scenario into an engine input priced with prices.
func (s Scenario) ToInput(prices roi.PriceTable) (roi.Input, error) {
	comp, err := roi.NewCompensation(s.Compensation.Kind, s.Compensation.HourlyRate, s.Compensation.AnnualSalary)
	if err != nil {
		return roi.Input{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}

	in := roi.Input{
		MonthlyVolume:    s.MonthlyVolume,
		AvgPerDay:        s.AvgPerDay,
		Compensation:     comp,
		PerDiemRate:      s.PerDiemRate,
		WeekdayStart:     s.WeekdayStart,
		WeekdayEnd:       s.WeekdayEnd,
		WeekendCoverage:  s.WeekendCoverage,
		AfterHours:       s.AfterHours,
		AvgReimbursement: s.AvgReimbursement,
		DowntimePct:      s.DowntimePct,
		NumCenters:       s.NumCenters,
		Plan:             roi.ParsePlan(s.CoveragePlan),
		Prices:           prices,
	}

	// Weekend bounds only exist when weekend coverage is on.
	if s.WeekendCoverage {
		in.WeekendStart = s.WeekendStart
		in.WeekendEnd = s.WeekendEnd
	}

	return in, nil
}
