package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rothcalc/rothcalc/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Extension() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "YearsToRetirement", "RothMonthly", "TradMonthly", "FinalRothGross", "FinalRothAfterTax", "FinalTradGross", "FinalTradAfterTax", "NetMonthlyRoth", "NetMonthlyTrad", "RothAdvantage", "BetterAccount"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		m := sc.Metrics
		row := []string{
			sc.Name,
			intToString(m.YearsToRetirement),
			sc.Assumptions.RothMonthly.StringFixed(2),
			sc.Assumptions.TradMonthly.StringFixed(2),
			m.FinalRothGross.StringFixed(2),
			m.FinalRothAfterTax.StringFixed(2),
			m.FinalTradGross.StringFixed(2),
			m.FinalTradAfterTax.StringFixed(2),
			m.NetMonthlyRoth.StringFixed(2),
			m.NetMonthlyTrad.StringFixed(2),
			sc.RothAdvantage().StringFixed(2),
			sc.BetterAccount(),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
