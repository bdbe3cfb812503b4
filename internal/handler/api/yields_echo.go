package api

import (
	"YieldPulse/internal/domain/models"
	"YieldPulse/internal/usecase"
	xhttp "YieldPulse/pkg/http"
	xlogger "YieldPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// YieldsEchoHandler serves the yield aggregation endpoints.
type YieldsEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.YieldAggregator
}

func NewYieldsEchoHandler(logger *xlogger.Logger, agg *usecase.YieldAggregator) *YieldsEchoHandler {
	return &YieldsEchoHandler{logger: logger, agg: agg}
}

func (h *YieldsEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/yields")
	g.GET("/top", h.Top)
	g.GET("/protocol", h.ByProtocol)
	g.GET("/chain", h.ByChain)
	g.GET("/compare", h.Compare)
	g.GET("/recommendations", h.Recommendations)
}

func (h *YieldsEchoHandler) Top(c echo.Context) error {
	req := &models.TopYieldsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.TopYields(c.Request().Context(), req.Limit, req.MinTVL, req.Chain)
	return xhttp.ListResponse(c, emptyAsSlice(res), int64(len(res)))
}

func (h *YieldsEchoHandler) ByProtocol(c echo.Context) error {
	req := &models.ProtocolYieldsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.ByProtocol(c.Request().Context(), req.Name, req.Limit)
	return xhttp.ListResponse(c, emptyAsSlice(res), int64(len(res)))
}

func (h *YieldsEchoHandler) ByChain(c echo.Context) error {
	req := &models.ChainYieldsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.ByChain(c.Request().Context(), req.Name, req.Limit)
	return xhttp.ListResponse(c, emptyAsSlice(res), int64(len(res)))
}

func (h *YieldsEchoHandler) Compare(c echo.Context) error {
	req := &models.CompareRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.Compare(c.Request().Context(), req.ProtocolA, req.ProtocolB)
	return xhttp.SuccessResponse(c, res)
}

func (h *YieldsEchoHandler) Recommendations(c echo.Context) error {
	req := &models.RecommendationsRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	res := h.agg.Recommendations(c.Request().Context(), req.Risk, req.Limit)
	return xhttp.ListResponse(c, emptyAsSlice(res), int64(len(res)))
}

// emptyAsSlice keeps empty results serialized as [] instead of null.
func emptyAsSlice(res []models.YieldOpportunity) []models.YieldOpportunity {
	if res == nil {
		return []models.YieldOpportunity{}
	}
	return res
}
