package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthlyRate(t *testing.T) {
	tests := []struct {
		name       string
		annualRate decimal.Decimal
		expected   decimal.Decimal
	}{
		{"twelve percent", decimal.NewFromFloat(0.12), decimal.NewFromFloat(0.01)},
		{"zero", decimal.Zero, decimal.Zero},
		{"negative six percent", decimal.NewFromFloat(-0.06), decimal.NewFromFloat(-0.005)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MonthlyRate(tt.annualRate)
			assert.True(t, got.Equal(tt.expected), "expected %s, got %s", tt.expected, got)
		})
	}
}

func TestSimulateBucketsYearlySequenceShape(t *testing.T) {
	preStart := decimal.NewFromInt(10000)
	afterStart := decimal.NewFromInt(5000)

	tests := []struct {
		name           string
		months         int
		expectedLength int
	}{
		{"zero months", 0, 1},
		{"one month", 1, 1},
		{"eleven months", 11, 1},
		{"exactly one year", 12, 2},
		{"thirteen months", 13, 2},
		{"ten years", 120, 11},
		{"thirty-five years", 420, 36},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SimulateBuckets(preStart, afterStart, decimal.NewFromInt(100), decimal.NewFromInt(50), decimal.NewFromFloat(0.05), tt.months)

			require.Len(t, result.YearlyTotals, tt.expectedLength)
			assert.True(t, result.YearlyTotals[0].Equal(decimal.NewFromInt(15000)),
				"year 0 must be the combined starting balance, got %s", result.YearlyTotals[0])
		})
	}
}

func TestSimulateBucketsZeroMonths(t *testing.T) {
	result := SimulateBuckets(decimal.NewFromInt(1200), decimal.NewFromInt(800), decimal.NewFromInt(100), decimal.NewFromInt(100), decimal.NewFromFloat(0.07), 0)

	require.Len(t, result.YearlyTotals, 1)
	assert.True(t, result.FinalPreTax.Equal(decimal.NewFromInt(1200)))
	assert.True(t, result.FinalAfterTax.Equal(decimal.NewFromInt(800)))
	assert.True(t, result.PreTaxPrincipal.Equal(decimal.NewFromInt(1200)))
	assert.True(t, result.AfterTaxPrincipal.Equal(decimal.NewFromInt(800)))
}

func TestSimulateBucketsZeroRateZeroContribution(t *testing.T) {
	result := SimulateBuckets(decimal.NewFromInt(100), decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero, 120)

	require.Len(t, result.YearlyTotals, 11)
	for i, total := range result.YearlyTotals {
		assert.True(t, total.Equal(decimal.NewFromInt(100)), "year %d should hold steady at 100, got %s", i, total)
	}
	assert.True(t, result.PreTaxPrincipal.Equal(decimal.NewFromInt(100)))
	assert.True(t, result.AfterTaxPrincipal.Equal(decimal.Zero))
}

func TestSimulateBucketsContributionEarnsGrowthSameMonth(t *testing.T) {
	// One month at 12% annual (1% monthly): a 100 contribution into an empty
	// bucket must end the month at 101, not 100.
	result := SimulateBuckets(decimal.Zero, decimal.Zero, decimal.Zero, decimal.NewFromInt(100), decimal.NewFromFloat(0.12), 1)

	assert.True(t, result.FinalAfterTax.Equal(decimal.NewFromInt(101)),
		"expected 101, got %s", result.FinalAfterTax)
	assert.True(t, result.AfterTaxPrincipal.Equal(decimal.NewFromInt(100)))
}

func TestSimulateBucketsRateMonotonicity(t *testing.T) {
	rates := []decimal.Decimal{
		decimal.Zero,
		decimal.NewFromFloat(0.02),
		decimal.NewFromFloat(0.05),
		decimal.NewFromFloat(0.08),
	}

	previous := decimal.NewFromInt(-1)
	for _, rate := range rates {
		result := SimulateBuckets(decimal.NewFromInt(20000), decimal.NewFromInt(5000), decimal.NewFromInt(300), decimal.NewFromInt(200), rate, 240)
		total := result.FinalTotal()

		assert.True(t, total.GreaterThan(previous),
			"final balance at rate %s (%s) should exceed the one at the lower rate (%s)", rate, total, previous)
		previous = total
	}
}

func TestSimulateBucketsNegativeContributionsModelWithdrawals(t *testing.T) {
	// Zero growth, 50/month drained from the pre-tax bucket for a year.
	result := SimulateBuckets(decimal.NewFromInt(1000), decimal.Zero, decimal.NewFromInt(-50), decimal.Zero, decimal.Zero, 12)

	assert.True(t, result.FinalPreTax.Equal(decimal.NewFromInt(400)),
		"expected 400 after 12 withdrawals of 50, got %s", result.FinalPreTax)
	assert.True(t, result.PreTaxPrincipal.Equal(decimal.NewFromInt(400)),
		"principal is analytic and follows the same arithmetic, got %s", result.PreTaxPrincipal)
	require.Len(t, result.YearlyTotals, 2)
	assert.True(t, result.YearlyTotals[1].Equal(decimal.NewFromInt(400)))
}

// TestSimulateBucketsMatchesClosedFormAnnuity checks the 35-year reference
// scenario against the annuity-due closed form: with monthly growth factor g,
// final = start*g^n + c*g*(g^n - 1)/r.
func TestSimulateBucketsMatchesClosedFormAnnuity(t *testing.T) {
	start := decimal.NewFromInt(50000)
	contribution := decimal.NewFromInt(1000)
	annualRate := decimal.NewFromFloat(0.05)
	months := 420

	result := SimulateBuckets(decimal.Zero, start, decimal.Zero, contribution, annualRate, months)

	r := MonthlyRate(annualRate)
	g := decimalOne.Add(r)
	gPowN := g.Pow(decimal.NewFromInt(int64(months)))
	closedForm := start.Mul(gPowN).Add(contribution.Mul(g).Mul(gPowN.Sub(decimalOne)).Div(r))

	diff := result.FinalAfterTax.Sub(closedForm).Abs()
	assert.True(t, diff.LessThan(decimal.NewFromFloat(0.01)),
		"simulated %s vs closed form %s (diff %s)", result.FinalAfterTax.StringFixed(2), closedForm.StringFixed(2), diff)

	// The last yearly snapshot is the final combined balance.
	last := result.YearlyTotals[len(result.YearlyTotals)-1]
	assert.True(t, last.Equal(result.FinalTotal()))
}
