package roi

import (
	"github.com/iwvelando/supervision-roi/pkg/constants"
	"github.com/iwvelando/supervision-roi/pkg/mathutil"
)

// ScanRateIncrease returns the fractional scan volume uplift recovered by
// remote coverage: a flat uplift for after-hours scanning plus the downtime
// percentage capped at ten percent.
func ScanRateIncrease(afterHours bool, downtimePct float64) float64 {
	increase := 0.0
	if afterHours {
		increase += constants.AfterHoursScanIncrease
	}
	if downtimePct > 0 {
		increase += mathutil.Min(constants.MaxDowntimeScanIncrease, mathutil.FromPercentage(downtimePct))
	}
	return increase
}

// ComputeOutcome combines the modeled costs with the revenue recovered from
// added scan capacity into the final savings and ROI figures.
func ComputeOutcome(costs Costs, annualScans int, afterHours bool, downtimePct, avgReimbursement float64) Result {
	result := Result{
		MDAnnualCost:    costs.MDAnnualCost,
		LocumAnnualCost: costs.LocumAnnualCost,
		PlanCost:        costs.PlanCost,
		SingleFTECost:   costs.SingleFTECost,
	}

	result.CostSavings = (costs.MDAnnualCost + costs.LocumAnnualCost) - costs.PlanCost
	result.FTESaved = mathutil.SafeDivide(costs.MDAnnualCost-costs.PlanCost, costs.SingleFTECost)

	result.ScanRateIncrease = ScanRateIncrease(afterHours, downtimePct)
	if avgReimbursement > 0 && (afterHours || downtimePct > 0) {
		result.AddedRevenue = float64(annualScans) * result.ScanRateIncrease * avgReimbursement
	}

	result.TotalMargin = result.CostSavings + result.AddedRevenue
	if costs.PlanCost > 0 {
		result.ROIPct = mathutil.CalculatePercentage(result.TotalMargin, costs.PlanCost)
	}

	return result
}
