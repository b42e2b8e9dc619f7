package roi

import (
	"github.com/iwvelando/supervision-roi/pkg/constants"
	"github.com/iwvelando/supervision-roi/pkg/datetime"
	"github.com/iwvelando/supervision-roi/pkg/mathutil"
)

// ResolveWeeklyHours derives the weekly supervised hours from the weekday
// coverage window and, when weekend coverage is on and both bounds are
// given, the weekend window. Malformed times count as midnight.
//
// Only the combined total is floored at zero, so an inverted weekday window
// can be offset by a positive weekend window.
func ResolveWeeklyHours(weekdayStart, weekdayEnd string, weekendCoverage bool, weekendStart, weekendEnd string) float64 {
	weekdayHours := (datetime.ParseTimeOfDay(weekdayEnd) - datetime.ParseTimeOfDay(weekdayStart)) * constants.WeekdaysPerWeek

	weekendHours := 0.0
	if weekendCoverage && weekendStart != "" && weekendEnd != "" {
		weekendHours = (datetime.ParseTimeOfDay(weekendEnd) - datetime.ParseTimeOfDay(weekendStart)) * constants.WeekendDaysPerWeek
	}

	return mathutil.Max(0, weekdayHours+weekendHours)
}
