package output

import (
	"fmt"

	"github.com/iwvelando/supervision-roi/internal/estimate"
	"github.com/iwvelando/supervision-roi/internal/roi"
	"github.com/iwvelando/supervision-roi/pkg/format"
)

// Disclaimer is printed under every set of results.
const Disclaimer = "This tool is for estimate purposes only. Actual results may vary. Contact us for a customized assessment."

// Figures are the raw engine figures of one estimate.
type Figures struct {
	CostSavings      float64 `json:"costSavings"`
	AddedRevenue     float64 `json:"addedRevenue"`
	TotalMargin      float64 `json:"totalMargin"`
	FTESaved         float64 `json:"fteSaved"`
	ROIPct           float64 `json:"roiPct"`
	PlanCost         float64 `json:"planCost"`
	MDAnnualCost     float64 `json:"mdAnnualCost"`
	LocumAnnualCost  float64 `json:"locumAnnualCost"`
	SingleFTECost    float64 `json:"singleFteCost"`
	WeeklyHours      float64 `json:"weeklyHours"`
	ScansPerMonth    int     `json:"scansPerMonth"`
	AnnualScans      int     `json:"annualScans"`
	ScanRateIncrease float64 `json:"scanRateIncrease"`
}

// Summary holds the display strings of one estimate.
type Summary struct {
	CostSavings  string `json:"costSavings"`
	AddedRevenue string `json:"addedRevenue"`
	FTESaved     string `json:"fteSaved"`
	TotalMargin  string `json:"totalMargin"`
	ROIPct       string `json:"roiPct"`
	PlanLabel    string `json:"planLabel"`
	Statement    string `json:"statement"`
}

// Report pairs the raw figures of an estimate with their display strings.
type Report struct {
	Name    string  `json:"name,omitempty"`
	Plan    string  `json:"plan"`
	Figures Figures `json:"figures"`
	Summary Summary `json:"summary"`
}

// NewReport builds the Report for a result computed under plan.
func NewReport(name string, plan roi.Plan, result roi.Result) Report {
	label := plan.Label()
	return Report{
		Name: name,
		Plan: string(plan),
		Figures: Figures{
			CostSavings:      result.CostSavings,
			AddedRevenue:     result.AddedRevenue,
			TotalMargin:      result.TotalMargin,
			FTESaved:         result.FTESaved,
			ROIPct:           result.ROIPct,
			PlanCost:         result.PlanCost,
			MDAnnualCost:     result.MDAnnualCost,
			LocumAnnualCost:  result.LocumAnnualCost,
			SingleFTECost:    result.SingleFTECost,
			WeeklyHours:      result.WeeklyHours,
			ScansPerMonth:    result.ScansPerMonth,
			AnnualScans:      result.AnnualScans,
			ScanRateIncrease: result.ScanRateIncrease,
		},
		Summary: Summary{
			CostSavings:  format.Currency(result.CostSavings),
			AddedRevenue: format.Currency(result.AddedRevenue),
			FTESaved:     format.Number(result.FTESaved, 2),
			TotalMargin:  format.Currency(result.TotalMargin),
			ROIPct:       format.Percent(result.ROIPct),
			PlanLabel:    label,
			Statement:    fmt.Sprintf("Savings are calculated relative to your selected %s.", label),
		},
	}
}

// Reports converts estimates into Reports, preserving order.
func Reports(results []estimate.Estimate) []Report {
	reports := make([]Report, 0, len(results))
	for _, result := range results {
		reports = append(reports, NewReport(result.Name, result.Input.Plan, result.Result))
	}
	return reports
}
