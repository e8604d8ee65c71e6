package calculation

import (
	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// denominatorFloor guards the gross-up division when the current tax rate
// approaches 1.
var denominatorFloor = decimal.New(1, -9)

// DeriveMonthlyContributions resolves the user's single monthly amount into
// the paired Roth (after-tax) and Traditional (pre-tax) contribution streams
// that cost the same out of pocket. An after-tax amount is used directly for
// Roth and grossed up for Traditional; a pre-tax amount is used directly for
// Traditional and reduced by the current tax rate for Roth.
func DeriveMonthlyContributions(amount decimal.Decimal, amountIsAfterTax bool, currentTaxRate decimal.Decimal) (rothMonthly, tradMonthly decimal.Decimal) {
	keep := decimalOne.Sub(currentTaxRate)
	if amountIsAfterTax {
		rothMonthly = amount
		tradMonthly = amount.Div(decimal.Max(denominatorFloor, keep))
		return rothMonthly, tradMonthly
	}
	tradMonthly = amount
	rothMonthly = amount.Mul(keep)
	return rothMonthly, tradMonthly
}

// SplitCurrentSavings divides existing savings into pre-tax and after-tax
// starting balances by the configured percentage (0-100).
func SplitCurrentSavings(savings, percentPreTax decimal.Decimal) (preTaxStart, afterTaxStart decimal.Decimal) {
	preTaxStart = savings.Mul(percentPreTax.Div(decimalHundred))
	afterTaxStart = savings.Sub(preTaxStart)
	return preTaxStart, afterTaxStart
}

// EvaluateScenario runs the Roth and Traditional projections for one set of
// assumptions and applies the scenario's tax model. The function is total: a
// retirement age before the current age degrades to a zero-month projection
// and an unknown tax model falls back to the default formula.
func (ce *CalculationEngine) EvaluateScenario(a *domain.ScenarioAssumptions) *domain.ScenarioResult {
	months := a.MonthsToRetirement()
	rothMonthly, tradMonthly := DeriveMonthlyContributions(a.MonthlyContribution, a.ContributionIsAfterTax, a.CurrentTaxRate)
	preTaxStart, afterTaxStart := SplitCurrentSavings(a.CurrentSavings, a.PercentCurrentPreTax)

	// The pre-tax share of current savings stays outside the Roth run; it is
	// treated as living on in a separate account this comparison does not model.
	rothSim := SimulateBuckets(decimal.Zero, afterTaxStart, decimal.Zero, rothMonthly, a.AnnualReturnRate, months)
	tradSim := SimulateBuckets(preTaxStart, decimal.Zero, tradMonthly, decimal.Zero, a.AnnualReturnRate, months)

	// Roth withdrawals are never taxed here, so after-tax equals gross.
	rothAfterTax := rothSim.FinalTotal()
	tradAfterTax := TraditionalAfterTax(&tradSim, a.TaxModel, a.RetirementTaxRate)

	years := make([]int, len(rothSim.YearlyTotals))
	for i := range years {
		years[i] = i
	}

	if ce.Debug {
		ce.Logger.Debugf("scenario %q: months=%d roth_monthly=$%s trad_monthly=$%s",
			a.Name, months, rothMonthly.StringFixed(2), tradMonthly.StringFixed(2))
		ce.Logger.Debugf("scenario %q: roth_final=$%s trad_final=$%s trad_after_tax=$%s",
			a.Name, rothSim.FinalTotal().StringFixed(2), tradSim.FinalTotal().StringFixed(2), tradAfterTax.StringFixed(2))
	}

	return &domain.ScenarioResult{
		Name:               a.Name,
		Years:              years,
		RothYearly:         rothSim.YearlyTotals,
		TradYearly:         tradSim.YearlyTotals,
		TradAfterTaxYearly: tradAfterTaxByYear(a, preTaxStart, tradMonthly),
		Metrics: domain.ScenarioMetrics{
			FinalRothGross:    rothSim.FinalTotal(),
			FinalRothAfterTax: rothAfterTax,
			FinalTradGross:    tradSim.FinalTotal(),
			FinalTradAfterTax: tradAfterTax,
			NetMonthlyRoth:    rothMonthly,
			NetMonthlyTrad:    tradMonthly.Mul(decimalOne.Sub(a.CurrentTaxRate)),
			YearsToRetirement: a.YearsToRetirement(),
		},
		Assumptions: domain.ResolvedAssumptions{
			ContributionIsAfterTax: a.ContributionIsAfterTax,
			CurrentTaxRate:         a.CurrentTaxRate,
			RetirementTaxRate:      a.RetirementTaxRate,
			PercentCurrentPreTax:   a.PercentCurrentPreTax,
			TaxModel:               a.TaxModel.Normalize(),
			AnnualReturnRate:       a.AnnualReturnRate,
			RothMonthly:            rothMonthly,
			TradMonthly:            tradMonthly,
			PreTaxStart:            preTaxStart,
			AfterTaxStart:          afterTaxStart,
		},
	}
}

// tradAfterTaxByYear values the Traditional run at each yearly horizon by
// re-running the simulation for that many months and applying the tax model
// to the truncated result. Entry i therefore matches exactly what a full run
// of i years would be worth after taxes.
func tradAfterTaxByYear(a *domain.ScenarioAssumptions, preTaxStart, tradMonthly decimal.Decimal) []decimal.Decimal {
	years := a.YearsToRetirement()
	series := make([]decimal.Decimal, 0, years+1)
	for year := 0; year <= years; year++ {
		sim := SimulateBuckets(preTaxStart, decimal.Zero, tradMonthly, decimal.Zero, a.AnnualReturnRate, year*12)
		series = append(series, TraditionalAfterTax(&sim, a.TaxModel, a.RetirementTaxRate))
	}
	return series
}
