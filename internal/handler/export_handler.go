package handler

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/service"
	"github.com/labstack/echo/v4"
)

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler handles filtered-data downloads
type ExportHandler struct {
	exportService *service.ExportService
}

// NewExportHandler creates a new ExportHandler
func NewExportHandler(exportService *service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportCSV godoc
// @Summary Download the filtered data as CSV
// @Description Rows matching the dashboard filters, sorted by date, with the renamed column header
// @Tags export
// @Produce text/csv
// @Param dateColumn query string false "Column holding dates"
// @Param categoryColumn query string false "Column holding categories"
// @Param amountColumn query string false "Column holding amounts"
// @Param start query string false "Start date (YYYY-MM-DD), inclusive"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param categories query []string false "Selected categories; an empty value selects none" collectionFormat(multi)
// @Success 200 {file} file
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /export/csv [get]
func (h *ExportHandler) ExportCSV(c echo.Context) error {
	opts, errs := parseDashboardOptions(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid export parameters", errs)
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportCSV(middleware.GetSessionID(c), opts, &buf); err != nil {
		return handleDatasetError(c, err, "Failed to export CSV")
	}

	setAttachment(c, service.ExportCSVFilename)
	return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportXLSX godoc
// @Summary Download the filtered data as an Excel workbook
// @Description Workbook with a Transactions sheet and a Categories sheet of totals
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param dateColumn query string false "Column holding dates"
// @Param categoryColumn query string false "Column holding categories"
// @Param amountColumn query string false "Column holding amounts"
// @Param start query string false "Start date (YYYY-MM-DD), inclusive"
// @Param end query string false "End date (YYYY-MM-DD), inclusive"
// @Param categories query []string false "Selected categories; an empty value selects none" collectionFormat(multi)
// @Success 200 {file} file
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Router /export/xlsx [get]
func (h *ExportHandler) ExportXLSX(c echo.Context) error {
	opts, errs := parseDashboardOptions(c)
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid export parameters", errs)
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportXLSX(middleware.GetSessionID(c), opts, &buf); err != nil {
		return handleDatasetError(c, err, "Failed to export workbook")
	}

	setAttachment(c, service.ExportXLSXFilename)
	return c.Blob(http.StatusOK, mimeXLSX, buf.Bytes())
}

func setAttachment(c echo.Context, filename string) {
	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
}
