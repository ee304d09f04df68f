package handler

import (
	"context"
	"net/http"

	"conesites/cmd/internal/contract"
	"conesites/cmd/internal/infrastructure/report"
	"conesites/cmd/internal/utils/apierror"

	"github.com/labstack/echo/v4"
)

type ReportService interface {
	RenderReport(kind, format string) ([]byte, report.Format, apierror.ErrorResponse)
	ExportReport(ctx context.Context, kind, format string) (*contract.ReportExportResponse, apierror.ErrorResponse)
}

type DefaultReportRoute struct {
	ReportService ReportService
}

func NewReportDefault(reportService ReportService) *DefaultReportRoute {
	return &DefaultReportRoute{ReportService: reportService}
}

// GetReport renders a listing in the format given by ?format= (json by default).
func (h *DefaultReportRoute) GetReport(c echo.Context) error {
	body, format, apierr := h.ReportService.RenderReport(c.Param("kind"), c.QueryParam("format"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.Blob(http.StatusOK, format.ContentType(), body)
}

func (h *DefaultReportRoute) ExportReport(c echo.Context) error {
	ctx := c.Request().Context()

	resp, apierr := h.ReportService.ExportReport(ctx, c.Param("kind"), c.QueryParam("format"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, resp)
}
