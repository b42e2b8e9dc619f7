// Package datetime provides time-of-day parsing for coverage windows.
package datetime

import (
	"regexp"
	"strconv"
	"strings"
)

// clockPattern matches a 12-hour clock such as "8 AM", "8:30pm" or "12:00 PM".
var clockPattern = regexp.MustCompile(`^(\d{1,2})(?::(\d{2}))?\s*([AaPp][Mm])$`)

// ParseTimeOfDay converts a 12-hour clock string into fractional hours since
// midnight, e.g. "5:30 PM" is 17.5. Strings that are not a valid clock time
// resolve to 0.
func ParseTimeOfDay(value string) float64 {
	hours, ok := parseClock(value)
	if !ok {
		return 0
	}
	return hours
}

// IsTimeOfDay reports whether value is a well-formed 12-hour clock string.
func IsTimeOfDay(value string) bool {
	_, ok := parseClock(value)
	return ok
}

func parseClock(value string) (float64, bool) {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(value))
	if match == nil {
		return 0, false
	}

	hour, err := strconv.Atoi(match[1])
	if err != nil || hour < 1 || hour > 12 {
		return 0, false
	}

	minutes := 0
	if match[2] != "" {
		minutes, err = strconv.Atoi(match[2])
		if err != nil || minutes > 59 {
			return 0, false
		}
	}

	// 12 AM is midnight, 12 PM stays noon.
	switch strings.ToUpper(match[3]) {
	case "AM":
		if hour == 12 {
			hour = 0
		}
	case "PM":
		if hour != 12 {
			hour += 12
		}
	}

	return float64(hour) + float64(minutes)/60, true
}
