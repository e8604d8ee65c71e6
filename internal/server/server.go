// Package server exposes the scenario evaluator and equivalence solver over a
// small JSON API. The engine is pure, so every request is handled statelessly.
package server

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/rothcalc/rothcalc/internal/calculation"
	"github.com/rothcalc/rothcalc/internal/domain"
)

// Server routes API requests to the calculation engine.
type Server struct {
	engine    *calculation.CalculationEngine
	logger    *zap.Logger
	tolerance decimal.Decimal
}

// New builds a server around engine. A nil logger is replaced by a no-op one;
// a non-positive defaultTolerance falls back to the solver's default.
func New(engine *calculation.CalculationEngine, logger *zap.Logger, defaultTolerance decimal.Decimal) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{engine: engine, logger: logger, tolerance: defaultTolerance}
}

// Handler returns the fasthttp request handler for all routes.
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		path := string(ctx.Path())
		method := string(ctx.Method())
		s.logger.Debug("request", zap.String("method", method), zap.String("path", path))

		switch path {
		case "/healthz":
			if method != fasthttp.MethodGet {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		case "/api/v1/scenario":
			if method != fasthttp.MethodPost {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleScenario(ctx)
		case "/api/v1/equivalence":
			if method != fasthttp.MethodPost {
				s.writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed")
				return
			}
			s.handleEquivalence(ctx)
		default:
			s.writeError(ctx, fasthttp.StatusNotFound, "not found")
		}
	}
}

// ListenAndServe blocks serving the API on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.logger.Info("listening", zap.String("addr", addr))
	if err := fasthttp.ListenAndServe(addr, s.Handler()); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}

func (s *Server) handleScenario(ctx *fasthttp.RequestCtx) {
	var assumptions domain.ScenarioAssumptions
	if err := json.Unmarshal(ctx.PostBody(), &assumptions); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	result := s.engine.EvaluateScenario(&assumptions)
	s.writeJSON(ctx, fasthttp.StatusOK, result)
}

// equivalenceRequest carries scenario assumptions plus an optional tolerance
// override in dollars.
type equivalenceRequest struct {
	domain.ScenarioAssumptions
	Tolerance decimal.Decimal `json:"tolerance"`
}

func (s *Server) handleEquivalence(ctx *fasthttp.RequestCtx) {
	var req equivalenceRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		s.writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	tolerance := req.Tolerance
	if tolerance.LessThanOrEqual(decimal.Zero) {
		tolerance = s.tolerance
	}

	result := s.engine.SolveEquivalence(&req.ScenarioAssumptions, tolerance)
	s.writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) writeJSON(ctx *fasthttp.RequestCtx, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		s.logger.Error("response encoding failed", zap.Error(err))
		s.writeError(ctx, fasthttp.StatusInternalServerError, "encoding response failed")
		return
	}
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	ctx.SetBody(data)
}

func (s *Server) writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, _ := json.Marshal(map[string]string{"error": message})
	ctx.SetBody(data)
}
