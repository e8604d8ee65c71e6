package output

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/rothcalc/rothcalc/pkg/money"
)

// FormatCurrency formats a decimal as USD currency with comma grouping.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.Format(amount) }

// FormatPercentage formats an already-scaled percentage value with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }
