package api

import (
	"YieldPulse/internal/domain/models"
	"YieldPulse/internal/usecase"
	xhttp "YieldPulse/pkg/http"
	xlogger "YieldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// InsightsEchoHandler serves narrative explanations of pipeline results.
type InsightsEchoHandler struct {
	logger   *xlogger.Logger
	agg      *usecase.YieldAggregator
	analyzer *usecase.MarketAnalyzer
	narrator *usecase.Narrator
}

func NewInsightsEchoHandler(logger *xlogger.Logger, agg *usecase.YieldAggregator, analyzer *usecase.MarketAnalyzer, narrator *usecase.Narrator) *InsightsEchoHandler {
	return &InsightsEchoHandler{logger: logger, agg: agg, analyzer: analyzer, narrator: narrator}
}

func (h *InsightsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/insights")
	g.GET("/yield", h.Yield)
	g.GET("/trading", h.Trading)
	g.GET("/comparison", h.Comparison)
	g.GET("/market", h.Market)
	g.GET("/entry", h.Entry)
}

type insightResponse struct {
	Insight string `json:"insight"`
}

// Yield explains the best opportunity matching the filter.
func (h *InsightsEchoHandler) Yield(c echo.Context) error {
	req := &models.YieldInsightRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	opps := h.agg.TopYields(c.Request().Context(), req.Limit, req.MinTVL, req.Chain)
	if len(opps) == 0 {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("yields"))
	}

	text := h.narrator.AnalyzeYield(c.Request().Context(), opps[0])
	return xhttp.SuccessResponse(c, insightResponse{Insight: text})
}

// Trading narrates a token's outlook, with market context on request.
func (h *InsightsEchoHandler) Trading(c echo.Context) error {
	req := &models.TradingInsightRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ts := h.analyzer.TokenSentiment(c.Request().Context(), req.Token)
	if ts == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}

	var market *models.MarketSentiment
	if req.MarketContext {
		market = h.analyzer.MarketSentiment(c.Request().Context())
	}

	text := h.narrator.TradingInsight(c.Request().Context(), ts, market)
	return xhttp.SuccessResponse(c, insightResponse{Insight: text})
}

// Comparison explains the best pool of each protocol side by side.
func (h *InsightsEchoHandler) Comparison(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ctx := c.Request().Context()
	var options []models.YieldOpportunity
	if a := h.agg.ByProtocol(ctx, req.ProtocolA, 1); len(a) > 0 {
		options = append(options, a[0])
	}
	if b := h.agg.ByProtocol(ctx, req.ProtocolB, 1); len(b) > 0 {
		options = append(options, b[0])
	}
	if len(options) == 0 {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("protocols"))
	}

	text := h.narrator.ExplainComparison(ctx, options)
	return xhttp.SuccessResponse(c, insightResponse{Insight: text})
}

// Market summarizes the market-wide sentiment snapshot.
func (h *InsightsEchoHandler) Market(c echo.Context) error {
	ms := h.analyzer.MarketSentiment(c.Request().Context())
	if ms == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("market"))
	}

	text := h.narrator.SummarizeMarket(c.Request().Context(), ms)
	return xhttp.SuccessResponse(c, insightResponse{Insight: text})
}

// Entry explains the entry recommendation for a token.
func (h *InsightsEchoHandler) Entry(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	rec := h.analyzer.EntryRecommendation(c.Request().Context(), req.Token)
	if rec == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}

	text := h.narrator.ExplainEntry(c.Request().Context(), rec)
	return xhttp.SuccessResponse(c, insightResponse{Insight: text})
}
