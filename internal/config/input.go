package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// InputParser handles parsing of scenario configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.parse(data)
}

// LoadFromReader loads configuration from an open stream, e.g. an upload.
func (ip *InputParser) LoadFromReader(r io.Reader) (*domain.Configuration, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return ip.parse(data)
}

func (ip *InputParser) parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	ip.applyDefaults(&config)

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// applyDefaults fills fields whose zero value is unambiguous. Rates and
// percentages keep their zero values; zero is meaningful for them.
func (ip *InputParser) applyDefaults(config *domain.Configuration) {
	for i := range config.Scenarios {
		if config.Scenarios[i].TaxModel == "" {
			config.Scenarios[i].TaxModel = domain.TaxModelAllWithdrawalsTaxed
		}
	}
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario); err != nil {
			name := scenario.Name
			if name == "" {
				name = fmt.Sprintf("#%d", i+1)
			}
			return fmt.Errorf("scenario %s validation failed: %w", name, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("duplicate scenario name %q", scenario.Name)
		}
		seen[scenario.Name] = true
	}

	if config.Solver.Tolerance.IsNegative() {
		return fmt.Errorf("solver tolerance cannot be negative")
	}

	return nil
}

// validateScenario checks one scenario's fields. The calculation engine
// tolerates odd inputs by design; validation exists to catch config typos
// before they silently skew a projection. A retirement age before the current
// age is allowed and produces a zero-length projection, and a negative
// monthly contribution is allowed and models a recurring withdrawal.
func (ip *InputParser) validateScenario(scenario *domain.ScenarioAssumptions) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.CurrentAge < 0 {
		return fmt.Errorf("current_age cannot be negative")
	}
	if scenario.RetirementAge < 0 {
		return fmt.Errorf("retirement_age cannot be negative")
	}
	if scenario.CurrentSavings.IsNegative() {
		return fmt.Errorf("current_savings cannot be negative")
	}
	if scenario.AnnualReturnRate.LessThan(decimal.NewFromFloat(-1.0)) {
		return fmt.Errorf("annual_return_rate cannot be less than -100%%")
	}
	if scenario.CurrentTaxRate.IsNegative() || scenario.CurrentTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("current_tax_rate must be between 0 and 1")
	}
	if scenario.RetirementTaxRate.IsNegative() || scenario.RetirementTaxRate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("retirement_tax_rate must be between 0 and 1")
	}
	if scenario.PercentCurrentPreTax.IsNegative() || scenario.PercentCurrentPreTax.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("percent_current_pre_tax must be between 0 and 100")
	}
	if !scenario.TaxModel.Known() {
		return fmt.Errorf("unknown tax_model %q (use %q or %q)",
			scenario.TaxModel, domain.TaxModelAllWithdrawalsTaxed, domain.TaxModelGainsOnly)
	}
	return nil
}

// CreateExampleConfiguration builds a starter configuration with two
// contrasting scenarios, one per contribution basis and tax model.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Scenarios: []domain.ScenarioAssumptions{
			{
				Name:                   "baseline",
				CurrentAge:             30,
				RetirementAge:          65,
				CurrentSavings:         decimal.NewFromInt(50000),
				MonthlyContribution:    decimal.NewFromInt(1000),
				AnnualReturnRate:       decimal.NewFromFloat(0.05),
				ContributionIsAfterTax: true,
				CurrentTaxRate:         decimal.NewFromFloat(0.22),
				RetirementTaxRate:      decimal.NewFromFloat(0.22),
				PercentCurrentPreTax:   decimal.NewFromInt(100),
				TaxModel:               domain.TaxModelAllWithdrawalsTaxed,
			},
			{
				Name:                   "lower-bracket-later",
				CurrentAge:             30,
				RetirementAge:          65,
				CurrentSavings:         decimal.NewFromInt(50000),
				MonthlyContribution:    decimal.NewFromInt(1000),
				AnnualReturnRate:       decimal.NewFromFloat(0.06),
				ContributionIsAfterTax: false,
				CurrentTaxRate:         decimal.NewFromFloat(0.24),
				RetirementTaxRate:      decimal.NewFromFloat(0.12),
				PercentCurrentPreTax:   decimal.NewFromInt(60),
				TaxModel:               domain.TaxModelGainsOnly,
			},
		},
		Solver: domain.SolverSettings{
			Tolerance: decimal.NewFromInt(1),
		},
	}
}
