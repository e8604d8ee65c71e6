package calculation

import (
	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalTwelve  = decimal.NewFromInt(12)
	decimalHundred = decimal.NewFromInt(100)
)

// MonthlyRate converts an annual return rate to the monthly rate used by the
// simulator. The conversion divides by 12 rather than deriving the
// compounded-equivalent rate; existing scenarios depend on this exact behavior.
func MonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return annualRate.Div(decimalTwelve)
}

// SimulateBuckets advances a pre-tax and an after-tax bucket month by month.
// Each month the contribution lands first and the whole bucket then grows by
// the monthly rate, so a contribution earns growth in the month it is made.
// YearlyTotals carries the combined balance at every 12th month, with the
// starting sum at index 0. Principal totals are analytic (start plus
// monthly times months), never accumulated step by step. Negative
// contributions model withdrawals and are not floored.
func SimulateBuckets(preStart, afterStart, preMonthly, afterMonthly, annualRate decimal.Decimal, months int) domain.SimulationResult {
	growthFactor := decimalOne.Add(MonthlyRate(annualRate))

	preBalance := preStart
	afterBalance := afterStart

	yearlyTotals := make([]decimal.Decimal, 0, months/12+1)
	yearlyTotals = append(yearlyTotals, preBalance.Add(afterBalance))

	for month := 1; month <= months; month++ {
		preBalance = preBalance.Add(preMonthly).Mul(growthFactor)
		afterBalance = afterBalance.Add(afterMonthly).Mul(growthFactor)

		if month%12 == 0 {
			yearlyTotals = append(yearlyTotals, preBalance.Add(afterBalance))
		}
	}

	monthCount := decimal.NewFromInt(int64(months))
	return domain.SimulationResult{
		YearlyTotals:      yearlyTotals,
		FinalPreTax:       preBalance,
		FinalAfterTax:     afterBalance,
		PreTaxPrincipal:   preStart.Add(preMonthly.Mul(monthCount)),
		AfterTaxPrincipal: afterStart.Add(afterMonthly.Mul(monthCount)),
	}
}
