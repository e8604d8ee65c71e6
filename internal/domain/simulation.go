package domain

import "github.com/shopspring/decimal"

// SimulationResult captures the outcome of a monthly two-bucket simulation.
// YearlyTotals[0] is the combined starting balance; entry i is the combined
// balance immediately after month i*12's contribution-and-growth step, so the
// sequence always has months/12 + 1 entries.
type SimulationResult struct {
	YearlyTotals      []decimal.Decimal `json:"yearly_totals"`
	FinalPreTax       decimal.Decimal   `json:"final_pre_tax"`
	FinalAfterTax     decimal.Decimal   `json:"final_after_tax"`
	PreTaxPrincipal   decimal.Decimal   `json:"pre_tax_principal"`
	AfterTaxPrincipal decimal.Decimal   `json:"after_tax_principal"`
}

// FinalTotal returns the combined ending balance of both buckets.
func (sr *SimulationResult) FinalTotal() decimal.Decimal {
	return sr.FinalPreTax.Add(sr.FinalAfterTax)
}

// TotalPrincipal returns the combined contributed principal, excluding growth.
func (sr *SimulationResult) TotalPrincipal() decimal.Decimal {
	return sr.PreTaxPrincipal.Add(sr.AfterTaxPrincipal)
}
