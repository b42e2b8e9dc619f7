// Package testutil provides common utility functions for testing.
package testutil

import (
	"github.com/iwvelando/supervision-roi/internal/estimate"
	"github.com/iwvelando/supervision-roi/internal/roi"
)

// FindEstimate finds an estimate by scenario name in the results slice.
// Returns a pointer to the estimate if found, nil otherwise.
func FindEstimate(results []estimate.Estimate, name string) *estimate.Estimate {
	for i := range results {
		if results[i].Name == name {
			return &results[i]
		}
	}
	return nil
}

// SampleInput returns the calculator's default form values: 250 scans a
// month, a $200/hr physician covering 8 AM to 5 PM on weekdays at one
// center, priced on the hourly plan.
func SampleInput() roi.Input {
	return roi.Input{
		MonthlyVolume: 250,
		Compensation:  roi.HourlyRate{Rate: 200},
		PerDiemRate:   1800,
		WeekdayStart:  "8:00 AM",
		WeekdayEnd:    "5:00 PM",
		NumCenters:    1,
		Plan:          roi.PlanHourly,
	}
}
