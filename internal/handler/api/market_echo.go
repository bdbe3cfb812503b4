package api

import (
	"YieldPulse/internal/domain/models"
	"YieldPulse/internal/usecase"
	xhttp "YieldPulse/pkg/http"
	xlogger "YieldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// MarketEchoHandler serves the market analysis endpoints.
type MarketEchoHandler struct {
	logger   *xlogger.Logger
	analyzer *usecase.MarketAnalyzer
}

func NewMarketEchoHandler(logger *xlogger.Logger, analyzer *usecase.MarketAnalyzer) *MarketEchoHandler {
	return &MarketEchoHandler{logger: logger, analyzer: analyzer}
}

func (h *MarketEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/market")
	g.GET("/price", h.Price)
	g.GET("/sentiment", h.Sentiment)
	g.GET("/token-sentiment", h.TokenSentiment)
	g.GET("/signals", h.Signals)
	g.GET("/entry", h.Entry)
}

func (h *MarketEchoHandler) Price(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.TokenPrice(c.Request().Context(), req.Token)
	if res == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Sentiment(c echo.Context) error {
	res := h.analyzer.MarketSentiment(c.Request().Context())
	if res == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("market"))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) TokenSentiment(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.TokenSentiment(c.Request().Context(), req.Token)
	if res == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Signals(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.TradingSignals(c.Request().Context(), req.Token)
	if res == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}
	return xhttp.SuccessResponse(c, res)
}

func (h *MarketEchoHandler) Entry(c echo.Context) error {
	req := &models.TokenRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.analyzer.EntryRecommendation(c.Request().Context(), req.Token)
	if res == nil {
		return xhttp.NotFoundResponse(c, xhttp.NotFoundError("token"))
	}
	return xhttp.SuccessResponse(c, res)
}
