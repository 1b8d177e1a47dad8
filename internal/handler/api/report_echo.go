package api

import (
	models "CoinPulse/internal/domain/models"
	"CoinPulse/internal/usecase"
	xhttp "CoinPulse/pkg/http"
	xlogger "CoinPulse/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ReportEchoHandler exposes the aggregate report over HTTP.
type ReportEchoHandler struct {
	logger  *xlogger.Logger
	builder *usecase.ReportBuilder
}

func NewReportEchoHandler(logger *xlogger.Logger, builder *usecase.ReportBuilder) *ReportEchoHandler {
	return &ReportEchoHandler{logger: logger, builder: builder}
}

func (h *ReportEchoHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/report", h.Report)
}

func (h *ReportEchoHandler) Report(c echo.Context) error {
	req := &models.ReportRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	report, err := h.builder.GetReport(c.Request().Context(), req.Refresh)
	if err != nil {
		h.logger.Error("report cycle failed", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.InternalErrorf("report unavailable: %v", err))
	}
	return xhttp.SuccessResponse(c, report)
}
