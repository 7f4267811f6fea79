package money

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Format renders a monetary value with thousands separators and exactly
// two decimal places, e.g. 1234567.5 -> "1,234,567.50". Receipts store
// prices, amounts and totals in this display form.
func Format(v float64) string {
	return printer.Sprintf("%.2f", v)
}
