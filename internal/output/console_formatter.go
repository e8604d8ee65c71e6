package output

import (
	"bytes"
	"fmt"

	"github.com/rothcalc/rothcalc/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Extension() string { return "txt" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "ROTH VS TRADITIONAL SUMMARY")
	fmt.Fprintln(&buf, "================================")
	for _, sc := range sortedScenarios(results) {
		m := sc.Metrics
		fmt.Fprintf(&buf, "%s: Roth=%s Trad=%s (after tax, %d years)\n",
			sc.Name,
			FormatCurrency(m.FinalRothAfterTax),
			FormatCurrency(m.FinalTradAfterTax),
			m.YearsToRetirement,
		)
		fmt.Fprintf(&buf, "  Monthly out-of-pocket: Roth=%s Trad=%s  Advantage: %s (%s)\n",
			FormatCurrency(m.NetMonthlyRoth),
			FormatCurrency(m.NetMonthlyTrad),
			FormatCurrency(sc.RothAdvantage().Abs()),
			sc.BetterAccount(),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s via %s (Δ %s / %s)\n",
			rec.ScenarioName, rec.Account, FormatCurrency(rec.Advantage), FormatPercentage(rec.PercentAdvantage))
	}
	return buf.Bytes(), nil
}
