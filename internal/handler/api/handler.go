package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Handler bundles the route groups into a single registration point.
type Handler struct {
	yields   *YieldsEchoHandler
	market   *MarketEchoHandler
	insights *InsightsEchoHandler
}

func NewHandler(yields *YieldsEchoHandler, market *MarketEchoHandler, insights *InsightsEchoHandler) *Handler {
	return &Handler{yields: yields, market: market, insights: insights}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	h.yields.RegisterRoutes(e)
	h.market.RegisterRoutes(e)
	h.insights.RegisterRoutes(e)
}
