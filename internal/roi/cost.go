package roi

import (
	"fmt"

	"github.com/iwvelando/supervision-roi/pkg/constants"
)

// Costs holds the annualized staffing and plan costs.
type Costs struct {
	MDAnnualCost    float64
	LocumAnnualCost float64
	PlanCost        float64
	SingleFTECost   float64
}

// ModelCosts compares the annual cost of in-house supervision, including
// weekend locum backfill, with the annual cost of the chosen coverage plan.
// Prices missing from prices fall back to the default table and unknown
// plans cost nothing.
func ModelCosts(comp Compensation, weeklyHours float64, numCenters int, perDiemRate float64, weekendCoverage bool, plan Plan, prices PriceTable) (Costs, error) {
	centers := float64(normalizeCenters(numCenters))

	var costs Costs
	switch c := comp.(type) {
	case HourlyRate:
		costs.MDAnnualCost = c.Rate * weeklyHours * constants.WeeksPerYear * centers
		costs.SingleFTECost = c.Rate * constants.FTEHoursPerYear
	case AnnualSalary:
		costs.MDAnnualCost = c.Salary * centers
		costs.SingleFTECost = c.Salary
	default:
		return Costs{}, fmt.Errorf("%w: compensation must be an hourly rate or an annual salary", ErrInvalidInput)
	}

	if weekendCoverage {
		shifts := constants.LocumShiftsPerWeekend * constants.WeekendsPerMonth * centers
		costs.LocumAnnualCost = perDiemRate * shifts * constants.MonthsPerYear
	}

	costs.PlanCost = planCost(plan, prices, weeklyHours, centers)
	return costs, nil
}

func planCost(plan Plan, prices PriceTable, weeklyHours, centers float64) float64 {
	price, ok := prices.UnitPrice(plan)
	if !ok {
		return 0
	}

	switch plan {
	case PlanHourly:
		return price * weeklyHours * constants.WeeksPerYear * centers
	case PlanDaily:
		return price * constants.WeekdaysPerWeek * constants.WeeksPerYear * centers
	case PlanMonthly:
		return price * constants.MonthsPerYear * centers
	case PlanAnnual:
		return price * centers
	}
	return 0
}
