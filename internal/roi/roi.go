// Package roi estimates the financial return of replacing in-house physician
// supervision of contrast imaging with a remote supervision plan.
//
// The computation runs in four forward-only stages: the coverage schedule is
// resolved into weekly hours, scan volumes are resolved, current staffing and
// plan costs are modeled, and finally savings, revenue and ROI are derived.
// Every stage is a pure function and Compute holds no state between calls.
package roi

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when the input cannot be priced at all, which
// only happens when the compensation model is missing.
var ErrInvalidInput = errors.New("invalid input")

// Input holds everything needed for one ROI estimate.
type Input struct {
	MonthlyVolume    int
	AvgPerDay        int
	Compensation     Compensation
	PerDiemRate      float64
	WeekdayStart     string
	WeekdayEnd       string
	WeekendCoverage  bool
	WeekendStart     string
	WeekendEnd       string
	AfterHours       bool
	AvgReimbursement float64
	DowntimePct      float64
	NumCenters       int
	Plan             Plan
	Prices           PriceTable
}

// Result holds the outcome of an estimate along with the intermediate figures
// used to produce it.
type Result struct {
	CostSavings  float64
	AddedRevenue float64
	TotalMargin  float64
	FTESaved     float64
	ROIPct       float64

	PlanCost         float64
	MDAnnualCost     float64
	LocumAnnualCost  float64
	SingleFTECost    float64
	WeeklyHours      float64
	ScansPerMonth    int
	AnnualScans      int
	ScanRateIncrease float64
}

// Compute runs the full estimate for in. The only failure is a missing
// compensation model; all other degenerate inputs resolve to zero figures.
func Compute(logger *zap.Logger, in Input) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	weeklyHours := ResolveWeeklyHours(in.WeekdayStart, in.WeekdayEnd, in.WeekendCoverage, in.WeekendStart, in.WeekendEnd)
	volumes := ResolveVolumes(in.MonthlyVolume, in.AvgPerDay, in.NumCenters)

	costs, err := ModelCosts(in.Compensation, weeklyHours, in.NumCenters, in.PerDiemRate, in.WeekendCoverage, in.Plan, in.Prices)
	if err != nil {
		return Result{}, fmt.Errorf("failed to model costs: %w", err)
	}

	result := ComputeOutcome(costs, volumes.AnnualScans, in.AfterHours, in.DowntimePct, in.AvgReimbursement)
	result.WeeklyHours = weeklyHours
	result.ScansPerMonth = volumes.ScansPerMonth
	result.AnnualScans = volumes.AnnualScans

	if !in.Plan.Known() {
		logger.Debug(fmt.Sprintf("plan %q is not priced, plan cost is zero", in.Plan),
			zap.String("op", "roi.Compute"),
		)
	}
	logger.Debug("roi computed",
		zap.String("op", "roi.Compute"),
		zap.String("plan", string(in.Plan)),
		zap.Float64("weeklyHours", weeklyHours),
		zap.Int("annualScans", volumes.AnnualScans),
		zap.Float64("mdAnnualCost", result.MDAnnualCost),
		zap.Float64("planCost", result.PlanCost),
		zap.Float64("totalMargin", result.TotalMargin),
		zap.Float64("roiPct", result.ROIPct),
	)

	return result, nil
}
