package roi

import (
	"strings"

	"github.com/iwvelando/supervision-roi/pkg/constants"
)

// Plan is the pricing tier of the remote supervision service.
type Plan string

// Known coverage plans.
const (
	PlanHourly  Plan = "Hourly"
	PlanDaily   Plan = "Daily"
	PlanMonthly Plan = "Monthly"
	PlanAnnual  Plan = "Annual"
)

// Plans lists the known coverage plans in display order.
var Plans = []Plan{PlanHourly, PlanDaily, PlanMonthly, PlanAnnual}

var planLabels = map[Plan]string{
	PlanHourly:  "hourly remote MD supervision plan",
	PlanDaily:   "daily rate remote MD coverage",
	PlanMonthly: "monthly supervision contract",
	PlanAnnual:  "annual enterprise remote coverage",
}

// ParsePlan maps a plan name onto a known Plan regardless of case and
// surrounding whitespace. Unrecognized names are returned unchanged so that
// they price at zero instead of failing.
func ParsePlan(name string) Plan {
	trimmed := strings.TrimSpace(name)
	for _, plan := range Plans {
		if strings.EqualFold(trimmed, string(plan)) {
			return plan
		}
	}
	return Plan(trimmed)
}

// Known reports whether p is one of the four priced plans.
func (p Plan) Known() bool {
	_, ok := planLabels[p]
	return ok
}

// Label returns the human readable description of the plan used in result
// summaries.
func (p Plan) Label() string {
	if label, ok := planLabels[p]; ok {
		return label
	}
	return strings.ToLower(string(p))
}

// PriceTable maps a plan to its unit price per plan period.
type PriceTable map[Plan]float64

// DefaultPriceTable returns a fresh copy of the published plan prices.
func DefaultPriceTable() PriceTable {
	return PriceTable{
		PlanHourly:  constants.DefaultHourlyPrice,
		PlanDaily:   constants.DefaultDailyPrice,
		PlanMonthly: constants.DefaultMonthlyPrice,
		PlanAnnual:  constants.DefaultAnnualPrice,
	}
}

// UnitPrice returns the price configured for plan, falling back to the
// default table for plans the receiver does not override. The boolean is
// false when the plan is not priced anywhere.
func (t PriceTable) UnitPrice(plan Plan) (float64, bool) {
	if price, ok := t[plan]; ok {
		return price, true
	}
	price, ok := DefaultPriceTable()[plan]
	return price, ok
}

// Merge returns a new table holding the defaults overlaid with the receiver.
func (t PriceTable) Merge() PriceTable {
	merged := DefaultPriceTable()
	for plan, price := range t {
		merged[plan] = price
	}
	return merged
}
