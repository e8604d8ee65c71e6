// Package money formats decimal dollar amounts and rates for display. All
// formatters, reports, and debug tooling render money through this package so
// figures look the same everywhere.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Format renders an amount as dollars with comma thousands grouping and two
// decimal places, e.g. $1,234,567.89. Negative amounts render as -$1,234.56.
func Format(amount decimal.Decimal) string {
	return format(amount, 2)
}

// FormatWhole renders an amount rounded to whole dollars, e.g. $1,234,568.
func FormatWhole(amount decimal.Decimal) string {
	return format(amount, 0)
}

// FormatPercent renders a fractional rate as a percentage with one decimal
// place, e.g. 0.05 becomes 5.0%.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(1) + "%"
}

func format(amount decimal.Decimal, places int32) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	return sign + "$" + groupThousands(amount.StringFixed(places))
}

// groupThousands inserts commas into the integer part of a plain fixed-point
// decimal string.
func groupThousands(s string) string {
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(fracPart)
	return b.String()
}
