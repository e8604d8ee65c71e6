package domain

import "github.com/shopspring/decimal"

// ScenarioMetrics summarizes the headline numbers of one evaluated scenario.
type ScenarioMetrics struct {
	FinalRothGross    decimal.Decimal `json:"final_roth_gross"`
	FinalRothAfterTax decimal.Decimal `json:"final_roth_after_tax"`
	FinalTradGross    decimal.Decimal `json:"final_trad_gross"`
	FinalTradAfterTax decimal.Decimal `json:"final_trad_after_tax"`
	NetMonthlyRoth    decimal.Decimal `json:"net_monthly_roth"`
	NetMonthlyTrad    decimal.Decimal `json:"net_monthly_trad"`
	YearsToRetirement int             `json:"years_to_retirement"`
}

// ResolvedAssumptions echoes the effective inputs of a run, including the two
// derived monthly contribution streams and the starting balance split.
type ResolvedAssumptions struct {
	ContributionIsAfterTax bool            `json:"contribution_is_after_tax"`
	CurrentTaxRate         decimal.Decimal `json:"current_tax_rate"`
	RetirementTaxRate      decimal.Decimal `json:"retirement_tax_rate"`
	PercentCurrentPreTax   decimal.Decimal `json:"percent_current_pre_tax"`
	TaxModel               TaxModel        `json:"tax_model"`
	AnnualReturnRate       decimal.Decimal `json:"annual_return_rate"`
	RothMonthly            decimal.Decimal `json:"roth_monthly"`
	TradMonthly            decimal.Decimal `json:"trad_monthly"`
	PreTaxStart            decimal.Decimal `json:"pre_tax_start"`
	AfterTaxStart          decimal.Decimal `json:"after_tax_start"`
}

// ScenarioResult is the immutable outcome of evaluating one scenario. The
// yearly sequences all share the same length and indexing as Years.
type ScenarioResult struct {
	Name               string              `json:"name"`
	Years              []int               `json:"years"`
	RothYearly         []decimal.Decimal   `json:"roth_yearly"`
	TradYearly         []decimal.Decimal   `json:"trad_yearly"`
	TradAfterTaxYearly []decimal.Decimal   `json:"trad_after_tax_yearly"`
	Metrics            ScenarioMetrics     `json:"metrics"`
	Assumptions        ResolvedAssumptions `json:"assumptions"`
}

// RothAdvantage returns the final Roth after-tax value minus the final
// Traditional after-tax value. Negative means Traditional comes out ahead.
func (r *ScenarioResult) RothAdvantage() decimal.Decimal {
	return r.Metrics.FinalRothAfterTax.Sub(r.Metrics.FinalTradAfterTax)
}

// BetterAccount names the account type with the higher after-tax final value.
// Ties go to Roth.
func (r *ScenarioResult) BetterAccount() string {
	if r.RothAdvantage().IsNegative() {
		return "Traditional"
	}
	return "Roth"
}

// ScenarioComparison bundles every evaluated scenario with the human-readable
// assumption lines rendered by the formatters.
type ScenarioComparison struct {
	Scenarios   []ScenarioResult `json:"scenarios"`
	Assumptions []string         `json:"assumptions"`
}

// EquivalenceResult reports the Roth monthly contribution whose after-tax
// outcome matches a Traditional scenario, expressed on both contribution bases.
type EquivalenceResult struct {
	ScenarioName         string          `json:"scenario_name"`
	InputMonthly         decimal.Decimal `json:"input_monthly"`
	EquivalentAfterTax   decimal.Decimal `json:"equivalent_after_tax_monthly"`
	EquivalentPreTax     decimal.Decimal `json:"equivalent_pre_tax_monthly"`
	TargetTradAfterTax   decimal.Decimal `json:"target_trad_after_tax"`
	AchievedRothAfterTax decimal.Decimal `json:"achieved_roth_after_tax"`
	Tolerance            decimal.Decimal `json:"tolerance"`
	Converged            bool            `json:"converged"`
}
