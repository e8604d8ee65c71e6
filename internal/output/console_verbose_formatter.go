package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/rothcalc/rothcalc/pkg/money"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Extension() string { return "txt" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "ROTH VS TRADITIONAL RETIREMENT COMPARISON")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		fmt.Fprintf(&buf, "SCENARIO %d: %s\n", i+1, scenario.Name)
		fmt.Fprintln(&buf, strings.Repeat("=", 50))

		ra := scenario.Assumptions
		fmt.Fprintln(&buf, "DERIVED CONTRIBUTIONS:")
		fmt.Fprintf(&buf, "  Roth (after-tax) monthly:        %s\n", FormatCurrency(ra.RothMonthly))
		fmt.Fprintf(&buf, "  Traditional (pre-tax) monthly:   %s\n", FormatCurrency(ra.TradMonthly))
		fmt.Fprintf(&buf, "  Pre-tax starting balance:        %s\n", FormatCurrency(ra.PreTaxStart))
		fmt.Fprintf(&buf, "  After-tax starting balance:      %s\n", FormatCurrency(ra.AfterTaxStart))
		fmt.Fprintf(&buf, "  Withdrawal model:                %s\n", ra.TaxModel.Describe())
		fmt.Fprintln(&buf)

		m := scenario.Metrics
		fmt.Fprintln(&buf, "PROJECTED BALANCES AT RETIREMENT:")
		fmt.Fprintln(&buf, "---------------------------------")
		fmt.Fprintf(&buf, "  %-28s %15s %15s\n", "", "ROTH", "TRADITIONAL")
		fmt.Fprintf(&buf, "  %-28s %15s %15s\n", "Gross balance", FormatCurrency(m.FinalRothGross), FormatCurrency(m.FinalTradGross))
		fmt.Fprintf(&buf, "  %-28s %15s %15s\n", "After-tax balance", FormatCurrency(m.FinalRothAfterTax), FormatCurrency(m.FinalTradAfterTax))
		fmt.Fprintf(&buf, "  %-28s %15s %15s\n", "Monthly out-of-pocket", FormatCurrency(m.NetMonthlyRoth), FormatCurrency(m.NetMonthlyTrad))
		fmt.Fprintln(&buf)

		advantage := scenario.RothAdvantage()
		if advantage.IsNegative() {
			fmt.Fprintf(&buf, "  Traditional comes out ahead by %s after tax\n", FormatCurrency(advantage.Abs()))
		} else {
			fmt.Fprintf(&buf, "  Roth comes out ahead by %s after tax\n", FormatCurrency(advantage))
		}
		fmt.Fprintln(&buf)

		writeYearlyTable(&buf, &scenario)
		fmt.Fprintln(&buf)
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s (%s)\n", rec.ScenarioName, rec.Account)
		fmt.Fprintf(&buf, "After-tax balance: %s\n", FormatCurrency(rec.AfterTaxValue))
		fmt.Fprintf(&buf, "Advantage over the other account: %s (%s)\n", FormatCurrency(rec.Advantage), FormatPercentage(rec.PercentAdvantage))
	}

	return buf.Bytes(), nil
}

// writeYearlyTable renders the per-year balance projection. Long horizons are
// sampled every five years; the final year is always shown.
func writeYearlyTable(buf *bytes.Buffer, scenario *domain.ScenarioResult) {
	fmt.Fprintln(buf, "YEAR-BY-YEAR PROJECTION:")
	fmt.Fprintln(buf, "------------------------")
	fmt.Fprintf(buf, "  %-6s %15s %15s %18s\n", "YEAR", "ROTH", "TRADITIONAL", "TRAD AFTER-TAX")

	step := 1
	if len(scenario.Years) > 16 {
		step = 5
	}
	last := len(scenario.Years) - 1
	for i := range scenario.Years {
		if i%step != 0 && i != last {
			continue
		}
		fmt.Fprintf(buf, "  %-6d %15s %15s %18s\n",
			scenario.Years[i],
			money.FormatWhole(scenario.RothYearly[i]),
			money.FormatWhole(scenario.TradYearly[i]),
			money.FormatWhole(scenario.TradAfterTaxYearly[i]),
		)
	}
}
