package calculation

import (
	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultEquivalenceTolerance is the dollar gap at which the Roth and
// Traditional after-tax finals count as matched.
var DefaultEquivalenceTolerance = decimal.NewFromInt(1)

// maxEquivalenceIterations caps the binary search; with a generously seeded
// bracket this is far more resolution than a dollar tolerance needs.
const maxEquivalenceIterations = 60

// FindEquivalentRothMonthly finds the after-tax monthly Roth contribution
// whose final after-tax value matches the Traditional outcome of contributing
// inputMonthly under the caller's basis flag. The search assumes the final
// value grows monotonically with the contribution, which holds for every
// supported tax model. When the tolerance is never met within the iteration
// cap, the final bracket midpoint is returned as a best-effort answer; the
// function never fails.
func (ce *CalculationEngine) FindEquivalentRothMonthly(a *domain.ScenarioAssumptions, inputMonthly, tolerance decimal.Decimal) decimal.Decimal {
	// The Traditional target uses the caller's own interpretation of the amount.
	targetAssumptions := *a
	targetAssumptions.MonthlyContribution = inputMonthly
	target := ce.EvaluateScenario(&targetAssumptions).Metrics.FinalTradAfterTax

	// Seed the upper bound well above any plausible answer: four times the
	// input, or the target spread evenly across the contribution months,
	// whichever is larger, then doubled.
	totalMonths := decimal.NewFromInt(int64((a.RetirementAge - a.CurrentAge) * 12))
	estimatedMonthly := target.Div(decimal.Max(decimalOne, totalMonths))
	low := decimal.Zero
	high := decimal.Max(decimalOne, inputMonthly.Mul(decimal.NewFromInt(4)), estimatedMonthly).Mul(decimal.NewFromInt(2))

	candidate := *a
	candidate.ContributionIsAfterTax = true

	for i := 0; i < maxEquivalenceIterations; i++ {
		mid := low.Add(high).Div(decimal.NewFromInt(2))
		candidate.MonthlyContribution = mid
		rothFinal := ce.EvaluateScenario(&candidate).Metrics.FinalRothAfterTax

		if rothFinal.Sub(target).Abs().LessThanOrEqual(tolerance) {
			ce.Logger.Debugf("equivalence converged after %d iterations: $%s/mo", i+1, mid.StringFixed(2))
			return mid
		}

		// Adjust search range
		if rothFinal.LessThan(target) {
			low = mid
		} else {
			high = mid
		}
	}

	// Return the bracket midpoint as the best estimate found.
	best := low.Add(high).Div(decimal.NewFromInt(2))
	ce.Logger.Warnf("equivalence search hit the iteration cap; returning best estimate $%s/mo", best.StringFixed(2))
	return best
}

// SolveEquivalence runs the equivalence search for a scenario's own monthly
// contribution and packages the result on both contribution bases. A zero or
// negative tolerance selects the default.
func (ce *CalculationEngine) SolveEquivalence(a *domain.ScenarioAssumptions, tolerance decimal.Decimal) *domain.EquivalenceResult {
	if tolerance.LessThanOrEqual(decimal.Zero) {
		tolerance = DefaultEquivalenceTolerance
	}

	target := ce.EvaluateScenario(a).Metrics.FinalTradAfterTax
	equivalent := ce.FindEquivalentRothMonthly(a, a.MonthlyContribution, tolerance)

	check := *a
	check.ContributionIsAfterTax = true
	check.MonthlyContribution = equivalent
	achieved := ce.EvaluateScenario(&check).Metrics.FinalRothAfterTax

	// The pre-tax form answers "what pre-tax contribution costs the same out
	// of pocket as this after-tax amount".
	preTax := equivalent.Div(decimal.Max(denominatorFloor, decimalOne.Sub(a.CurrentTaxRate)))

	return &domain.EquivalenceResult{
		ScenarioName:         a.Name,
		InputMonthly:         a.MonthlyContribution,
		EquivalentAfterTax:   equivalent,
		EquivalentPreTax:     preTax,
		TargetTradAfterTax:   target,
		AchievedRothAfterTax: achieved,
		Tolerance:            tolerance,
		Converged:            achieved.Sub(target).Abs().LessThanOrEqual(tolerance),
	}
}
