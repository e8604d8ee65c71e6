package output

import (
	"sort"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection of the best scenario and the
// account type that wins it.
type Recommendation struct {
	ScenarioName     string
	Account          string
	AfterTaxValue    decimal.Decimal
	Advantage        decimal.Decimal
	PercentAdvantage decimal.Decimal
}

// AnalyzeScenarios determines the scenario with the highest after-tax final
// balance and which account type gets it there. The advantage is measured
// against the losing account of the same scenario. Extracted from embedded
// console logic for testability.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	type ranked struct {
		name      string
		account   string
		best      decimal.Decimal
		advantage decimal.Decimal
	}
	var ranks []ranked
	for _, sc := range results.Scenarios {
		best := sc.Metrics.FinalRothAfterTax
		worst := sc.Metrics.FinalTradAfterTax
		if sc.BetterAccount() == "Traditional" {
			best, worst = worst, best
		}
		ranks = append(ranks, ranked{sc.Name, sc.BetterAccount(), best, best.Sub(worst)})
	}
	if len(ranks) == 0 {
		return Recommendation{}
	}
	sort.Slice(ranks, func(i, j int) bool { return ranks[i].best.GreaterThan(ranks[j].best) })
	top := ranks[0]
	pct := decimal.Zero
	if base := top.best.Sub(top.advantage); !base.IsZero() {
		pct = top.advantage.Div(base).Mul(decimal.NewFromInt(100))
	}
	return Recommendation{
		ScenarioName:     top.name,
		Account:          top.account,
		AfterTaxValue:    top.best,
		Advantage:        top.advantage,
		PercentAdvantage: pct,
	}
}
