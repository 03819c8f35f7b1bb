package output

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// FormatCurrency renders a decimal as a dollar amount with two places.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

// FormatPercentage renders a decimal fraction as a percentage with one
// place (0.042 -> "4.2%").
func FormatPercentage(d decimal.Decimal) string {
	return d.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

// FormatMonths renders a fractional month count as "Xy Zm", or an em-free
// marker for infinite counts.
func FormatMonths(months float64) string {
	if math.IsInf(months, 1) {
		return "never"
	}
	whole := int(math.Ceil(months))
	years := whole / 12
	rem := whole % 12
	switch {
	case years == 0:
		return fmt.Sprintf("%dmo", rem)
	case rem == 0:
		return fmt.Sprintf("%dy", years)
	default:
		return fmt.Sprintf("%dy %dmo", years, rem)
	}
}

// FormatDepletion renders a depletion period, "never" when the portfolio
// survived the horizon.
func FormatDepletion(period *int) string {
	if period == nil {
		return "never"
	}
	return fmt.Sprintf("year %d", *period)
}
