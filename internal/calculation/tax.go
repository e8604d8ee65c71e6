package calculation

import (
	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// TraditionalAfterTax values a Traditional simulation at withdrawal under the
// selected tax model. Unknown selectors fall back to the all-withdrawals
// formula rather than failing.
func TraditionalAfterTax(sim *domain.SimulationResult, model domain.TaxModel, retirementTaxRate decimal.Decimal) decimal.Decimal {
	switch model.Normalize() {
	case domain.TaxModelGainsOnly:
		// Principal is never taxed under this model; only gains above the
		// combined contributed principal are.
		gross := sim.FinalTotal()
		gains := gross.Sub(sim.TotalPrincipal())
		if gains.IsNegative() {
			gains = decimal.Zero
		}
		return gross.Sub(gains.Mul(retirementTaxRate))
	default:
		// all_withdrawals_taxed: the pre-tax bucket (principal and growth) is
		// taxed at the retirement rate, the after-tax bucket passes through.
		return sim.FinalAfterTax.Add(sim.FinalPreTax.Mul(decimalOne.Sub(retirementTaxRate)))
	}
}
