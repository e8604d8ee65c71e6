package main

import (
	"context"
	"fmt"
	"os"

	calc "github.com/rothcalc/rothcalc/internal/calculation"
	"github.com/rothcalc/rothcalc/internal/config"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_equivalence <config-file>")
		return
	}
	f := os.Args[1]
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}
	engine := calc.NewCalculationEngine()
	res, err := engine.RunScenarios(context.Background(), cfg)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Yearly series per scenario
	for _, s := range res.Scenarios {
		fmt.Printf("# %s\n", s.Name)
		fmt.Println("Year,Roth,Trad,TradAfterTax")
		for i, year := range s.Years {
			fmt.Printf("%d,%s,%s,%s\n", year,
				s.RothYearly[i].StringFixed(0),
				s.TradYearly[i].StringFixed(0),
				s.TradAfterTaxYearly[i].StringFixed(0))
		}
		fmt.Printf("RothAdvantage=%s Better=%s\n\n", s.RothAdvantage().StringFixed(2), s.BetterAccount())
	}

	// Solver trace per scenario
	for i := range cfg.Scenarios {
		a := &cfg.Scenarios[i]
		eq := engine.SolveEquivalence(a, cfg.Solver.Tolerance)
		fmt.Printf("Equivalence %s: input=%s equivAfterTax=%s equivPreTax=%s target=%s achieved=%s gap=%s converged=%v\n",
			eq.ScenarioName,
			eq.InputMonthly.StringFixed(2),
			eq.EquivalentAfterTax.StringFixed(2),
			eq.EquivalentPreTax.StringFixed(2),
			eq.TargetTradAfterTax.StringFixed(2),
			eq.AchievedRothAfterTax.StringFixed(2),
			eq.AchievedRothAfterTax.Sub(eq.TargetTradAfterTax).Abs().StringFixed(4),
			eq.Converged)
	}
}
