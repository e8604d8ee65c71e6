package domain

import (
	"fmt"
	"strings"

	"github.com/rothcalc/rothcalc/pkg/money"
	"github.com/shopspring/decimal"
)

// TaxModel selects how the Traditional pre-tax balance is valued at withdrawal.
type TaxModel string

const (
	// TaxModelAllWithdrawalsTaxed applies the retirement tax rate to the entire
	// pre-tax bucket, principal and growth alike.
	TaxModelAllWithdrawalsTaxed TaxModel = "all_withdrawals_taxed"
	// TaxModelGainsOnly applies the retirement tax rate only to gains above
	// contributed principal.
	TaxModelGainsOnly TaxModel = "tax_gains_only"
)

// Normalize lowercases and trims the selector so config and API input compare
// cleanly against the known constants.
func (tm TaxModel) Normalize() TaxModel {
	return TaxModel(strings.ToLower(strings.TrimSpace(string(tm))))
}

// Known reports whether the selector is one of the supported tax models.
func (tm TaxModel) Known() bool {
	switch tm.Normalize() {
	case TaxModelAllWithdrawalsTaxed, TaxModelGainsOnly:
		return true
	}
	return false
}

// Describe renders the selector for human-readable output, marking unknown
// selectors with the formula they fall back to.
func (tm TaxModel) Describe() string {
	switch tm.Normalize() {
	case TaxModelAllWithdrawalsTaxed:
		return "all withdrawals taxed"
	case TaxModelGainsOnly:
		return "only gains taxed"
	default:
		return "all withdrawals taxed (default)"
	}
}

// ScenarioAssumptions represents one complete set of inputs for a Roth vs.
// Traditional comparison run.
type ScenarioAssumptions struct {
	Name                   string          `yaml:"name" json:"name"`
	CurrentAge             int             `yaml:"current_age" json:"current_age"`
	RetirementAge          int             `yaml:"retirement_age" json:"retirement_age"`
	CurrentSavings         decimal.Decimal `yaml:"current_savings" json:"current_savings"`
	MonthlyContribution    decimal.Decimal `yaml:"monthly_contribution" json:"monthly_contribution"`
	AnnualReturnRate       decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	ContributionIsAfterTax bool            `yaml:"contribution_is_after_tax" json:"contribution_is_after_tax"`
	CurrentTaxRate         decimal.Decimal `yaml:"current_tax_rate" json:"current_tax_rate"`
	RetirementTaxRate      decimal.Decimal `yaml:"retirement_tax_rate" json:"retirement_tax_rate"`
	PercentCurrentPreTax   decimal.Decimal `yaml:"percent_current_pre_tax" json:"percent_current_pre_tax"`
	TaxModel               TaxModel        `yaml:"tax_model" json:"tax_model"`
}

// YearsToRetirement returns retirement age minus current age, floored at zero.
// A retirement age earlier than the current age degrades to a zero-length
// projection rather than an error.
func (a *ScenarioAssumptions) YearsToRetirement() int {
	years := a.RetirementAge - a.CurrentAge
	if years < 0 {
		return 0
	}
	return years
}

// MonthsToRetirement returns the simulated horizon in months.
func (a *ScenarioAssumptions) MonthsToRetirement() int {
	return a.YearsToRetirement() * 12
}

// ContributionBasis names the basis of the entered monthly amount for display.
func (a *ScenarioAssumptions) ContributionBasis() string {
	if a.ContributionIsAfterTax {
		return "after-tax"
	}
	return "pre-tax"
}

// GenerateAssumptions renders the scenario's effective inputs as display
// lines for reports.
func (a *ScenarioAssumptions) GenerateAssumptions() []string {
	return []string{
		fmt.Sprintf("Horizon: age %d to %d (%d years)", a.CurrentAge, a.RetirementAge, a.YearsToRetirement()),
		fmt.Sprintf("Current savings: %s (%s%% classified pre-tax)", money.Format(a.CurrentSavings), a.PercentCurrentPreTax.StringFixed(0)),
		fmt.Sprintf("Monthly contribution: %s entered as %s dollars", money.Format(a.MonthlyContribution), a.ContributionBasis()),
		fmt.Sprintf("Annual return: %s, applied monthly as rate/12", money.FormatPercent(a.AnnualReturnRate)),
		fmt.Sprintf("Tax rates: %s now, %s in retirement", money.FormatPercent(a.CurrentTaxRate), money.FormatPercent(a.RetirementTaxRate)),
		fmt.Sprintf("Traditional withdrawal model: %s", a.TaxModel.Describe()),
		"Roth runs exclude the pre-tax share of current savings",
	}
}

// SolverSettings tunes the equivalence solver.
type SolverSettings struct {
	// Tolerance is the acceptable dollar gap between the Roth and Traditional
	// after-tax finals. Zero means use the built-in default.
	Tolerance decimal.Decimal `yaml:"tolerance,omitempty" json:"tolerance,omitempty"`
}

// Configuration holds everything parsed from a scenario input file.
type Configuration struct {
	Scenarios []ScenarioAssumptions `yaml:"scenarios" json:"scenarios"`
	Solver    SolverSettings        `yaml:"solver,omitempty" json:"solver,omitempty"`
}
