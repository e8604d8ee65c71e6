package calculation

import (
	"context"
	"fmt"

	"github.com/rothcalc/rothcalc/internal/domain"
)

// CalculationEngine orchestrates scenario evaluation and equivalence solving.
// The engine holds no mutable calculation state; every run works purely on its
// inputs, so a single engine is safe for concurrent use.
type CalculationEngine struct {
	Debug  bool // Enable debug output for detailed calculations
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// RunScenarios evaluates every configured scenario and bundles the results
// with rendered assumption lines. Cancellation is honored between scenarios.
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration) (*domain.ScenarioComparison, error) {
	scenarios := make([]domain.ScenarioResult, 0, len(config.Scenarios))
	assumptions := make([]string, 0, len(config.Scenarios)*8)

	for i := range config.Scenarios {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("scenario run canceled: %w", err)
		}

		a := &config.Scenarios[i]
		ce.Logger.Infof("evaluating scenario %q", a.Name)
		scenarios = append(scenarios, *ce.EvaluateScenario(a))

		assumptions = append(assumptions, a.Name+":")
		for _, line := range a.GenerateAssumptions() {
			assumptions = append(assumptions, "  "+line)
		}
	}

	return &domain.ScenarioComparison{
		Scenarios:   scenarios,
		Assumptions: assumptions,
	}, nil
}
