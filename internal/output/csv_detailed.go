package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rothcalc/rothcalc/internal/domain"
)

// CSVDetailedExporter provides the raw yearly projection per scenario, one row
// per scenario-year, for spreadsheet charting.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Extension() string { return "csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Year", "RothBalance", "TradBalance", "TradAfterTax"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range sortedScenarios(results) {
		for i, year := range sc.Years {
			row := []string{
				sc.Name,
				intToString(year),
				sc.RothYearly[i].StringFixed(2),
				sc.TradYearly[i].StringFixed(2),
				sc.TradAfterTaxYearly[i].StringFixed(2),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), nil
}
