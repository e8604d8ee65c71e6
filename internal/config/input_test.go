package config

import (
	"os"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rothcalc/rothcalc/internal/domain"
)

const validConfigYAML = "scenarios:\n" +
	"  - name: \"baseline\"\n" +
	"    current_age: 30\n" +
	"    retirement_age: 65\n" +
	"    current_savings: 50000\n" +
	"    monthly_contribution: 1000\n" +
	"    annual_return_rate: 0.05\n" +
	"    contribution_is_after_tax: true\n" +
	"    current_tax_rate: 0.22\n" +
	"    retirement_tax_rate: 0.22\n" +
	"    percent_current_pre_tax: 100\n" +
	"    tax_model: \"all_withdrawals_taxed\"\n" +
	"solver:\n" +
	"  tolerance: 0.5\n"

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_config_*.yaml")
	require.NoError(t, err)

	_, err = tmpfile.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, tmpfile.Close())

	return tmpfile.Name()
}

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	path := writeConfig(t, validConfigYAML)

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	require.NoError(t, err)
	require.NotNil(t, config)
	require.Len(t, config.Scenarios, 1)

	scenario := config.Scenarios[0]
	assert.Equal(t, "baseline", scenario.Name)
	assert.Equal(t, 30, scenario.CurrentAge)
	assert.Equal(t, 65, scenario.RetirementAge)
	assert.True(t, scenario.CurrentSavings.Equal(decimal.NewFromInt(50000)))
	assert.True(t, scenario.MonthlyContribution.Equal(decimal.NewFromInt(1000)))
	assert.True(t, scenario.AnnualReturnRate.Equal(decimal.NewFromFloat(0.05)))
	assert.True(t, scenario.ContributionIsAfterTax)
	assert.True(t, scenario.CurrentTaxRate.Equal(decimal.NewFromFloat(0.22)))
	assert.True(t, scenario.RetirementTaxRate.Equal(decimal.NewFromFloat(0.22)))
	assert.True(t, scenario.PercentCurrentPreTax.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, domain.TaxModelAllWithdrawalsTaxed, scenario.TaxModel)
	assert.True(t, config.Solver.Tolerance.Equal(decimal.NewFromFloat(0.5)))
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "scenarios: [unterminated\n")

	parser := NewInputParser()
	config, err := parser.LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, config)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadFromReader(t *testing.T) {
	parser := NewInputParser()
	config, err := parser.LoadFromReader(strings.NewReader(validConfigYAML))

	require.NoError(t, err)
	require.NotNil(t, config)
	assert.Len(t, config.Scenarios, 1)
}

func TestLoadAppliesTaxModelDefault(t *testing.T) {
	configYAML := "scenarios:\n" +
		"  - name: \"no-model\"\n" +
		"    current_age: 40\n" +
		"    retirement_age: 60\n" +
		"    monthly_contribution: 500\n" +
		"    annual_return_rate: 0.04\n" +
		"    current_tax_rate: 0.24\n" +
		"    retirement_tax_rate: 0.12\n"

	parser := NewInputParser()
	config, err := parser.LoadFromReader(strings.NewReader(configYAML))

	require.NoError(t, err)
	require.Len(t, config.Scenarios, 1)
	assert.Equal(t, domain.TaxModelAllWithdrawalsTaxed, config.Scenarios[0].TaxModel)
}

func TestValidateConfiguration(t *testing.T) {
	baseConfig := func() *domain.Configuration {
		return &domain.Configuration{
			Scenarios: []domain.ScenarioAssumptions{
				{
					Name:                 "baseline",
					CurrentAge:           30,
					RetirementAge:        65,
					CurrentSavings:       decimal.NewFromInt(50000),
					MonthlyContribution:  decimal.NewFromInt(1000),
					AnnualReturnRate:     decimal.NewFromFloat(0.05),
					CurrentTaxRate:       decimal.NewFromFloat(0.22),
					RetirementTaxRate:    decimal.NewFromFloat(0.22),
					PercentCurrentPreTax: decimal.NewFromInt(100),
					TaxModel:             domain.TaxModelAllWithdrawalsTaxed,
				},
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*domain.Configuration)
		wantErr string
	}{
		{
			name:   "valid configuration",
			mutate: func(c *domain.Configuration) {},
		},
		{
			name: "no scenarios",
			mutate: func(c *domain.Configuration) {
				c.Scenarios = nil
			},
			wantErr: "at least one scenario is required",
		},
		{
			name: "missing scenario name",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].Name = ""
			},
			wantErr: "name is required",
		},
		{
			name: "duplicate scenario names",
			mutate: func(c *domain.Configuration) {
				c.Scenarios = append(c.Scenarios, c.Scenarios[0])
			},
			wantErr: "duplicate scenario name",
		},
		{
			name: "negative current age",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].CurrentAge = -1
			},
			wantErr: "current_age cannot be negative",
		},
		{
			name: "negative retirement age",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].RetirementAge = -5
			},
			wantErr: "retirement_age cannot be negative",
		},
		{
			name: "negative current savings",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].CurrentSavings = decimal.NewFromInt(-100)
			},
			wantErr: "current_savings cannot be negative",
		},
		{
			name: "return rate below total loss",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].AnnualReturnRate = decimal.NewFromFloat(-1.5)
			},
			wantErr: "annual_return_rate cannot be below -1",
		},
		{
			name: "current tax rate above one",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].CurrentTaxRate = decimal.NewFromFloat(1.2)
			},
			wantErr: "current_tax_rate must be between 0 and 1",
		},
		{
			name: "negative retirement tax rate",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].RetirementTaxRate = decimal.NewFromFloat(-0.1)
			},
			wantErr: "retirement_tax_rate must be between 0 and 1",
		},
		{
			name: "pre-tax split above 100",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].PercentCurrentPreTax = decimal.NewFromInt(150)
			},
			wantErr: "percent_current_pre_tax must be between 0 and 100",
		},
		{
			name: "unknown tax model",
			mutate: func(c *domain.Configuration) {
				c.Scenarios[0].TaxModel = "flat_tax"
			},
			wantErr: "unknown tax_model",
		},
		{
			name: "negative solver tolerance",
			mutate: func(c *domain.Configuration) {
				c.Solver.Tolerance = decimal.NewFromInt(-1)
			},
			wantErr: "solver tolerance cannot be negative",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := baseConfig()
			tt.mutate(config)

			err := parser.ValidateConfiguration(config)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidateConfigurationAllowsEarlyRetirementAge(t *testing.T) {
	config := &domain.Configuration{
		Scenarios: []domain.ScenarioAssumptions{
			{
				Name:                "already-retired",
				CurrentAge:          70,
				RetirementAge:       65,
				MonthlyContribution: decimal.NewFromInt(-200),
				AnnualReturnRate:    decimal.NewFromFloat(0.03),
				CurrentTaxRate:      decimal.NewFromFloat(0.12),
				RetirementTaxRate:   decimal.NewFromFloat(0.12),
				TaxModel:            domain.TaxModelGainsOnly,
			},
		},
	}

	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(config))
}

func TestCreateExampleConfigurationIsValid(t *testing.T) {
	config := NewInputParser().CreateExampleConfiguration()
	require.NotNil(t, config)
	require.Len(t, config.Scenarios, 2)

	parser := NewInputParser()
	assert.NoError(t, parser.ValidateConfiguration(config))
	assert.False(t, config.Scenarios[0].Name == config.Scenarios[1].Name)
}
