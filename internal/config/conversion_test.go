package config

import (
	"errors"
	"testing"

	"github.com/iwvelando/supervision-roi/internal/roi"
)

func TestScenarioToInput(t *testing.T) {
	rate := 200.0
	salary := 400000.0

	scenario := Scenario{
		Name:             "weekend",
		Active:           true,
		MonthlyVolume:    250,
		AvgPerDay:        5,
		Compensation:     CompensationConfig{Kind: "annual", HourlyRate: &rate, AnnualSalary: &salary},
		PerDiemRate:      1800,
		WeekdayStart:     "8:00 AM",
		WeekdayEnd:       "5:00 PM",
		WeekendCoverage:  true,
		WeekendStart:     "8:00 AM",
		WeekendEnd:       "12:00 PM",
		AfterHours:       true,
		AvgReimbursement: 50,
		DowntimePct:      3,
		NumCenters:       2,
		CoveragePlan:     " monthly ",
	}
	prices := roi.PriceTable{roi.PlanMonthly: 15000}

	in, err := scenario.ToInput(prices)
	if err != nil {
		t.Fatalf("ToInput() error = %v", err)
	}

	if in.Compensation != (roi.AnnualSalary{Salary: 400000}) {
		t.Errorf("ToInput() Compensation = %#v, expected annual salary", in.Compensation)
	}
	if in.Plan != roi.PlanMonthly {
		t.Errorf("ToInput() Plan = %q, expected Monthly", in.Plan)
	}
	if in.WeekendStart != "8:00 AM" || in.WeekendEnd != "12:00 PM" {
		t.Errorf("ToInput() weekend bounds = %q-%q", in.WeekendStart, in.WeekendEnd)
	}
	if in.Prices[roi.PlanMonthly] != 15000 {
		t.Errorf("ToInput() did not carry prices: %v", in.Prices)
	}
	if in.MonthlyVolume != 250 || in.AvgPerDay != 5 || in.NumCenters != 2 || in.PerDiemRate != 1800 {
		t.Errorf("ToInput() volumes not carried: %+v", in)
	}
	if !in.AfterHours || in.AvgReimbursement != 50 || in.DowntimePct != 3 {
		t.Errorf("ToInput() revenue inputs not carried: %+v", in)
	}
}

func TestScenarioToInputDropsWeekendBoundsWithoutCoverage(t *testing.T) {
	rate := 200.0
	scenario := Scenario{
		Name:         "weekday only",
		Compensation: CompensationConfig{Kind: "hourly", HourlyRate: &rate},
		WeekendStart: "8:00 AM",
		WeekendEnd:   "12:00 PM",
	}

	in, err := scenario.ToInput(nil)
	if err != nil {
		t.Fatalf("ToInput() error = %v", err)
	}
	if in.WeekendStart != "" || in.WeekendEnd != "" {
		t.Errorf("ToInput() kept weekend bounds %q-%q without coverage", in.WeekendStart, in.WeekendEnd)
	}
}

func TestScenarioToInputInvalidCompensation(t *testing.T) {
	salary := 400000.0

	tests := []struct {
		name string
		comp CompensationConfig
	}{
		{"Hourly without rate", CompensationConfig{Kind: "hourly", AnnualSalary: &salary}},
		{"Missing kind", CompensationConfig{AnnualSalary: &salary}},
		{"Unknown kind", CompensationConfig{Kind: "equity", AnnualSalary: &salary}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Scenario{Name: "bad", Compensation: tt.comp}.ToInput(nil)
			if !errors.Is(err, roi.ErrInvalidInput) {
				t.Errorf("ToInput() error = %v, expected ErrInvalidInput", err)
			}
		})
	}
}
