package output

import (
	"bytes"
	"fmt"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/rothcalc/rothcalc/internal/domain"
	"github.com/shopspring/decimal"
)

// ChartFormatter renders the first scenario (by name) as a PNG line chart.
// Three series: Roth after-tax growth (blue solid), Traditional gross (gray
// dashed), and Traditional after-tax (red solid).
type ChartFormatter struct{}

func (c ChartFormatter) Name() string { return "chart" }

func (c ChartFormatter) Extension() string { return "png" }

func (c ChartFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	scenarios := sortedScenarios(results)
	if len(scenarios) == 0 {
		return nil, fmt.Errorf("no scenarios to chart")
	}
	sc := scenarios[0]
	if len(sc.Years) < 2 {
		return nil, fmt.Errorf("need at least 2 data points, got %d", len(sc.Years))
	}

	xValues := make([]float64, len(sc.Years))
	rothY := make([]float64, len(sc.Years))
	tradY := make([]float64, len(sc.Years))
	tradAfterTaxY := make([]float64, len(sc.Years))

	for i, year := range sc.Years {
		xValues[i] = float64(year)
		rothY[i] = toFloat(sc.RothYearly[i])
		tradY[i] = toFloat(sc.TradYearly[i])
		tradAfterTaxY[i] = toFloat(sc.TradAfterTaxYearly[i])
	}

	rothSeries := chart.ContinuousSeries{
		Name: "Roth (after tax)",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
			StrokeWidth: 2.5,
		},
		XValues: xValues,
		YValues: rothY,
	}

	tradSeries := chart.ContinuousSeries{
		Name: "Traditional (gross)",
		Style: chart.Style{
			StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
			StrokeWidth:     1.5,
			StrokeDashArray: []float64{5.0, 3.0},
		},
		XValues: xValues,
		YValues: tradY,
	}

	tradAfterTaxSeries := chart.ContinuousSeries{
		Name: "Traditional (after tax)",
		Style: chart.Style{
			StrokeColor: drawing.ColorFromHex("dc2626"), // red-600
			StrokeWidth: 2.0,
		},
		XValues: xValues,
		YValues: tradAfterTaxY,
	}

	graph := chart.Chart{
		Title:  sc.Name,
		Width:  900,
		Height: 400,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			TickPosition: chart.TickPositionBetweenTicks,
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("Yr %.0f", f)
				}
				return ""
			},
		},
		YAxis: chart.YAxis{
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return fmt.Sprintf("$%.0fk", f/1000)
				}
				return ""
			},
		},
		Series: []chart.Series{
			rothSeries,
			tradSeries,
			tradAfterTaxSeries,
		},
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}

// toFloat converts at the rendering boundary only; the core never leaves decimal.
func toFloat(d decimal.Decimal) float64 { return d.InexactFloat64() }
