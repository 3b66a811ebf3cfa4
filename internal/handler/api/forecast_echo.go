package api

import (
	"errors"
	"net/http"
	"time"

	models "SpreadCast/internal/domain/models"
	"SpreadCast/internal/usecase"
	xhttp "SpreadCast/pkg/http"
	xlogger "SpreadCast/pkg/logger"
	"SpreadCast/pkg/util"

	"github.com/labstack/echo/v4"
)

// ForecastEchoHandler exposes the two derived tables to the visualization
// consumer. The anchor defaults to today and is the only place the wall
// clock is read.
type ForecastEchoHandler struct {
	logger *xlogger.Logger
	agg    *usecase.ForecastAggregator
}

func NewForecastEchoHandler(logger *xlogger.Logger, agg *usecase.ForecastAggregator) *ForecastEchoHandler {
	return &ForecastEchoHandler{logger: logger, agg: agg}
}

func (h *ForecastEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/distribution", h.Distribution)
	g.GET("/ranking", h.Ranking)
	g.GET("/summary", h.Summary)
	e.GET("/healthz", h.Health)
}

func (h *ForecastEchoHandler) Distribution(c echo.Context) error {
	req := &models.DistributionRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	anchor := util.ParseTimeDefault(req.Anchor, time.Now())

	rows, err := h.agg.Distribution(c.Request().Context(), anchor)
	if err != nil {
		if errors.Is(err, models.ErrEmptyWindow) {
			return xhttp.SuccessResponse(c, &models.DistributionResponse{Rows: []models.DistributionPoint{}, NoData: true})
		}
		h.logger.Error("distribution usecase error", xlogger.Error(err))
		return h.sourceError(c, err)
	}
	return xhttp.SuccessResponse(c, &models.DistributionResponse{Rows: rows})
}

func (h *ForecastEchoHandler) Ranking(c echo.Context) error {
	req := &models.RankingRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	anchor := util.ParseTimeDefault(req.Anchor, time.Now())

	rows, err := h.agg.Ranking(c.Request().Context(), anchor)
	if err != nil {
		if errors.Is(err, models.ErrEmptyWindow) || errors.Is(err, models.ErrInsufficientRankingData) {
			return xhttp.SuccessResponse(c, &models.RankingResponse{Rows: []models.RankingRow{}, NoData: true})
		}
		h.logger.Error("ranking usecase error", xlogger.Error(err))
		return h.sourceError(c, err)
	}
	return xhttp.SuccessResponse(c, &models.RankingResponse{Rows: rows})
}

func (h *ForecastEchoHandler) Summary(c echo.Context) error {
	req := &models.SummaryRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	anchor := util.ParseTimeDefault(req.Anchor, time.Now())

	rows, err := h.agg.DailySummaries(c.Request().Context(), anchor)
	if err != nil {
		if errors.Is(err, models.ErrEmptyWindow) {
			return xhttp.SuccessResponse(c, &models.SummaryResponse{Rows: []models.DailyEnsembleSummary{}, NoData: true})
		}
		h.logger.Error("summary usecase error", xlogger.Error(err))
		return h.sourceError(c, err)
	}
	return xhttp.SuccessResponse(c, &models.SummaryResponse{Rows: rows})
}

func (h *ForecastEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (h *ForecastEchoHandler) sourceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, models.ErrSourceUnavailable):
		return xhttp.AppErrorResponse(c, xhttp.UpstreamError("forecast source unavailable").WithError(err))
	case errors.Is(err, models.ErrSourceMalformed):
		return xhttp.AppErrorResponse(c, xhttp.UnprocessableError("forecast source malformed").WithError(err))
	default:
		return xhttp.AppErrorResponse(c, err)
	}
}
