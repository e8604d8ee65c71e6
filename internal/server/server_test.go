package server

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	"github.com/rothcalc/rothcalc/internal/calculation"
	"github.com/rothcalc/rothcalc/internal/domain"
)

func newTestServer() *Server {
	return New(calculation.NewCalculationEngine(), nil, decimal.NewFromInt(1))
}

func doRequest(t *testing.T, s *Server, method, path string, body []byte) *fasthttp.RequestCtx {
	t.Helper()
	ctx := &fasthttp.RequestCtx{}
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(path)
	if body != nil {
		ctx.Request.SetBody(body)
	}
	s.Handler()(ctx)
	return ctx
}

func scenarioBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(domain.ScenarioAssumptions{
		Name:                   "api",
		CurrentAge:             30,
		RetirementAge:          65,
		CurrentSavings:         decimal.NewFromInt(50000),
		MonthlyContribution:    decimal.NewFromInt(1000),
		AnnualReturnRate:       decimal.NewFromFloat(0.05),
		ContributionIsAfterTax: true,
		CurrentTaxRate:         decimal.NewFromFloat(0.22),
		RetirementTaxRate:      decimal.NewFromFloat(0.22),
		PercentCurrentPreTax:   decimal.NewFromInt(100),
		TaxModel:               domain.TaxModelAllWithdrawalsTaxed,
	})
	require.NoError(t, err)
	return body
}

func TestHealthz(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/healthz", nil)

	assert.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())
	assert.JSONEq(t, `{"status":"ok"}`, string(ctx.Response.Body()))
}

func TestScenarioEndpoint(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/api/v1/scenario", scenarioBody(t))

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.ScenarioResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.Equal(t, "api", result.Name)
	assert.Equal(t, 35, result.Metrics.YearsToRetirement)
	assert.Len(t, result.Years, 36)
	assert.True(t, result.Metrics.FinalRothAfterTax.GreaterThan(decimal.Zero))
}

func TestEquivalenceEndpoint(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/api/v1/equivalence", scenarioBody(t))

	require.Equal(t, fasthttp.StatusOK, ctx.Response.StatusCode())

	var result domain.EquivalenceResult
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &result))
	assert.True(t, result.Converged)
	assert.True(t, result.EquivalentAfterTax.GreaterThan(decimal.Zero))
	assert.True(t, result.AchievedRothAfterTax.Sub(result.TargetTradAfterTax).Abs().LessThanOrEqual(result.Tolerance))
}

func TestMalformedBodyRejected(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodPost, "/api/v1/scenario", []byte("{not json"))

	assert.Equal(t, fasthttp.StatusBadRequest, ctx.Response.StatusCode())
	assert.Contains(t, string(ctx.Response.Body()), "invalid request body")
}

func TestUnknownRoute(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/api/v1/unknown", nil)
	assert.Equal(t, fasthttp.StatusNotFound, ctx.Response.StatusCode())
}

func TestWrongMethod(t *testing.T) {
	ctx := doRequest(t, newTestServer(), fasthttp.MethodGet, "/api/v1/scenario", nil)
	assert.Equal(t, fasthttp.StatusMethodNotAllowed, ctx.Response.StatusCode())
}
