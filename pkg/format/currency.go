// Package format renders engine figures for display.
package format

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a whole-dollar currency string with thousands separators
// (e.g., "-$1,235"). Halves round away from zero.
func Currency(amount float64) string {
	rounded := decimal.NewFromFloat(amount).Round(0)
	formatted := printer.Sprintf("%.0f", rounded.Abs().InexactFloat64())
	if rounded.IsNegative() {
		return "-$" + formatted
	}
	return "$" + formatted
}

// Number returns value rounded to the given number of decimal places with
// thousands separators (e.g., "1,234.57").
func Number(value float64, places int32) string {
	if places < 0 {
		places = 0
	}
	rounded := decimal.NewFromFloat(value).Round(places)
	return printer.Sprintf(fmt.Sprintf("%%.%df", places), rounded.InexactFloat64())
}

// Percent returns value as a percentage with one decimal place (e.g., "42.9%").
func Percent(value float64) string {
	return Number(value, 1) + "%"
}
