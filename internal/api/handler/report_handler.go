package handler

import (
	"mime"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/api/metrics"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const mimeTextCSVCharsetUTF8 = "text/csv; charset=utf-8"

// ReportHandler serves attendance reports ("laporan").
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Report handles GET /api/laporan/:id.
//
// @Summary      Attendance report of a kajian
// @Tags         laporan
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Kajian id"
// @Success      200  {object}  reportResponse
// @Failure      404  {object}  errorResponse
// @Router       /laporan/{id} [get]
func (h *ReportHandler) Report(c echo.Context) error {
	report, err := h.service.Report(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("json").Inc()
	return c.JSON(http.StatusOK, toReportResponse(report))
}

// Export handles GET /api/laporan/:id/export.
//
// @Summary      Attendance report as CSV
// @Tags         laporan
// @Produce      text/csv
// @Security     BearerAuth
// @Param        id   path  string  true  "Kajian id"
// @Success      200  {file}  binary
// @Failure      404  {object}  errorResponse
// @Router       /laporan/{id}/export [get]
func (h *ReportHandler) Export(c echo.Context) error {
	export, err := h.service.ExportCSV(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	metrics.ExportsTotal.WithLabelValues("csv").Inc()

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": export.Filename})
	c.Response().Header().Set(echo.HeaderContentDisposition, disposition)
	return c.Blob(http.StatusOK, mimeTextCSVCharsetUTF8, export.Content)
}
