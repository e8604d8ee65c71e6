package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/rothcalc/rothcalc/pkg/money"
)

const (
	pdfPageWidth    = 210.0
	pdfMarginLeft   = 15.0
	pdfMarginRight  = 15.0
	pdfMarginTop    = 15.0
	pdfContentWidth = pdfPageWidth - pdfMarginLeft - pdfMarginRight
)

// PDFFormatter renders a printable comparison report, one section per scenario.
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Extension() string { return "pdf" }

func (p PDFFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	r := &pdfReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(pdfMarginLeft, pdfMarginTop, pdfMarginRight)
	r.pdf.SetAutoPageBreak(true, 20)

	r.addTitlePage(results)
	for _, sc := range sortedScenarios(results) {
		r.addScenarioSection(&sc)
	}

	var buf bytes.Buffer
	if err := r.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type pdfReport struct {
	pdf *fpdf.Fpdf
}

func (r *pdfReport) addTitlePage(results *domain.ScenarioComparison) {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 24)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.Ln(40)
	r.pdf.CellFormat(pdfContentWidth, 14, "Roth vs Traditional Comparison", "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 11)
	r.pdf.SetTextColor(80, 80, 80)
	r.pdf.Ln(8)
	r.pdf.CellFormat(pdfContentWidth, 8, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")

	assumptions := results.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	r.pdf.Ln(15)
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 8, "Key Assumptions", "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	for _, a := range assumptions {
		r.pdf.CellFormat(pdfContentWidth, 6, a, "LR", 1, "L", true, 0, "")
	}
	r.pdf.CellFormat(pdfContentWidth, 1, "", "LRB", 1, "C", true, 0, "")

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		r.pdf.Ln(12)
		r.pdf.SetFont("Arial", "B", 12)
		r.pdf.SetTextColor(0, 102, 51)
		r.pdf.CellFormat(pdfContentWidth, 8,
			fmt.Sprintf("Recommended: %s (%s, %s after tax)", rec.ScenarioName, rec.Account, money.Format(rec.AfterTaxValue)),
			"", 1, "C", false, 0, "")
	}

	r.pdf.Ln(15)
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.SetTextColor(120, 120, 120)
	r.pdf.MultiCell(pdfContentWidth, 4.5,
		"This document is for informational purposes only and does not constitute financial advice. "+
			"Tax treatment is a simplified approximation of marginal rates, not the tax code.", "", "C", false)
}

func (r *pdfReport) addScenarioSection(sc *domain.ScenarioResult) {
	r.pdf.AddPage()
	r.drawSectionHeader(sc.Name)

	m := sc.Metrics
	a := sc.Assumptions

	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Summary", "", 1, "L", false, 0, "")

	r.drawTableHeader([]string{"Metric", "Roth", "Traditional"}, []float64{80, 50, 50})
	r.drawTableRow([]string{"Monthly contribution", money.Format(a.RothMonthly), money.Format(a.TradMonthly)}, []float64{80, 50, 50}, false)
	r.drawTableRow([]string{"Monthly out-of-pocket", money.Format(m.NetMonthlyRoth), money.Format(m.NetMonthlyTrad)}, []float64{80, 50, 50}, false)
	r.drawTableRow([]string{"Gross balance at retirement", money.Format(m.FinalRothGross), money.Format(m.FinalTradGross)}, []float64{80, 50, 50}, false)
	r.drawTableRow([]string{"After-tax balance", money.Format(m.FinalRothAfterTax), money.Format(m.FinalTradAfterTax)}, []float64{80, 50, 50}, true)

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "", 10)
	r.pdf.SetTextColor(50, 50, 50)
	r.pdf.CellFormat(pdfContentWidth, 6,
		fmt.Sprintf("Horizon: %d years  |  Withdrawal model: %s  |  Better account: %s by %s",
			m.YearsToRetirement, a.TaxModel.Describe(), sc.BetterAccount(), money.Format(sc.RothAdvantage().Abs())),
		"", 1, "L", false, 0, "")

	r.pdf.Ln(6)
	r.pdf.SetFont("Arial", "B", 11)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 7, "Year-by-Year Projection", "", 1, "L", false, 0, "")

	widths := []float64{30, 50, 50, 50}
	r.drawTableHeader([]string{"Year", "Roth", "Traditional", "Trad After-Tax"}, widths)

	step := 1
	if len(sc.Years) > 25 {
		step = 5
	}
	last := len(sc.Years) - 1
	for i := range sc.Years {
		if i%step != 0 && i != last {
			continue
		}
		if r.pdf.GetY() > 265 {
			r.pdf.AddPage()
			r.drawTableHeader([]string{"Year", "Roth", "Traditional", "Trad After-Tax"}, widths)
		}
		r.drawTableRow([]string{
			fmt.Sprintf("%d", sc.Years[i]),
			money.FormatWhole(sc.RothYearly[i]),
			money.FormatWhole(sc.TradYearly[i]),
			money.FormatWhole(sc.TradAfterTaxYearly[i]),
		}, widths, i == last)
	}
}

func (r *pdfReport) drawSectionHeader(title string) {
	r.pdf.SetFont("Arial", "B", 16)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(pdfContentWidth, 10, title, "", 1, "L", false, 0, "")
	r.pdf.SetDrawColor(0, 51, 102)
	r.pdf.Line(pdfMarginLeft, r.pdf.GetY(), pdfMarginLeft+pdfContentWidth, r.pdf.GetY())
	r.pdf.Ln(5)
}

func (r *pdfReport) drawTableHeader(headers []string, widths []float64) {
	r.pdf.SetFillColor(0, 51, 102)
	r.pdf.SetTextColor(255, 255, 255)
	r.pdf.SetFont("Arial", "B", 9)

	for i, header := range headers {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 6, header, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}

func (r *pdfReport) drawTableRow(cells []string, widths []float64, isBold bool) {
	r.pdf.SetFillColor(250, 250, 250)
	r.pdf.SetTextColor(50, 50, 50)

	if isBold {
		r.pdf.SetFont("Arial", "B", 9)
		r.pdf.SetFillColor(240, 240, 240)
	} else {
		r.pdf.SetFont("Arial", "", 9)
	}

	for i, cell := range cells {
		align := "L"
		if i > 0 {
			align = "R"
		}
		r.pdf.CellFormat(widths[i], 5, cell, "1", 0, align, true, 0, "")
	}
	r.pdf.Ln(-1)
}
