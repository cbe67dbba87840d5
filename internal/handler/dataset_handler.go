package handler

import (
	"net/http"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/middleware"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// DatasetHandler handles dataset loading HTTP requests
type DatasetHandler struct {
	datasetService *service.DatasetService
}

// NewDatasetHandler creates a new DatasetHandler
func NewDatasetHandler(datasetService *service.DatasetService) *DatasetHandler {
	return &DatasetHandler{datasetService: datasetService}
}

// ImportDatasetRequest represents the request body for importing from object storage
type ImportDatasetRequest struct {
	Key string `json:"key"`
}

// DatasetResponse describes the loaded dataset in API responses
type DatasetResponse struct {
	Source           string                  `json:"source"`
	Filename         string                  `json:"filename"`
	LoadedAt         string                  `json:"loadedAt"`
	RowCount         int                     `json:"rowCount"`
	Columns          []string                `json:"columns"`
	Candidates       domain.ColumnCandidates `json:"candidates"`
	DefaultMapping   domain.ColumnMapping    `json:"defaultMapping"`
	StorageEnabled   bool                    `json:"storageEnabled"`
	MaxUploadBytes   int64                   `json:"maxUploadBytes"`
	SupportedFormats []string                `json:"supportedFormats"`
}

func (h *DatasetHandler) toDatasetResponse(info *service.DatasetInfo) DatasetResponse {
	return DatasetResponse{
		Source:           string(info.Source),
		Filename:         info.Filename,
		LoadedAt:         info.LoadedAt.Format(time.RFC3339),
		RowCount:         info.RowCount,
		Columns:          info.Columns,
		Candidates:       info.Candidates,
		DefaultMapping:   info.DefaultMapping,
		StorageEnabled:   h.datasetService.IsStorageEnabled(),
		MaxUploadBytes:   h.datasetService.MaxBytes(),
		SupportedFormats: []string{"csv"},
	}
}

// Upload godoc
// @Summary Upload a CSV dataset
// @Description Replace the session's dataset with an uploaded CSV file
// @Tags datasets
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Success 201 {object} DatasetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 413 {object} ProblemDetails
// @Failure 429 {object} ProblemDetails
// @Router /datasets/upload [post]
func (h *DatasetHandler) Upload(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	file, err := c.FormFile("file")
	if err != nil {
		return NewValidationError(c, "No file provided", []ValidationError{
			{Field: "file", Message: "File is required"},
		})
	}
	if file.Size > h.datasetService.MaxBytes() {
		return NewPayloadTooLargeError(c, "The file exceeds the upload size limit")
	}

	src, err := file.Open()
	if err != nil {
		log.Error().Err(err).Str("session_id", sessionID.String()).Msg("Failed to open uploaded file")
		return NewInternalError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	info, err := h.datasetService.LoadUpload(sessionID, file.Filename, src)
	if err != nil {
		return handleDatasetError(c, err, "Failed to load dataset")
	}

	return c.JSON(http.StatusCreated, h.toDatasetResponse(info))
}

// LoadSample godoc
// @Summary Load the sample dataset
// @Description Replace the session's dataset with the bundled ten-row example
// @Tags datasets
// @Produce json
// @Success 201 {object} DatasetResponse
// @Router /datasets/sample [post]
func (h *DatasetHandler) LoadSample(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	info, err := h.datasetService.LoadSample(sessionID)
	if err != nil {
		return handleDatasetError(c, err, "Failed to load sample dataset")
	}

	return c.JSON(http.StatusCreated, h.toDatasetResponse(info))
}

// Import godoc
// @Summary Import a CSV dataset from object storage
// @Description Replace the session's dataset with a CSV object from the configured bucket
// @Tags datasets
// @Accept json
// @Produce json
// @Param request body ImportDatasetRequest true "Object key below the configured prefix"
// @Success 201 {object} DatasetResponse
// @Failure 400 {object} ProblemDetails
// @Failure 404 {object} ProblemDetails
// @Failure 413 {object} ProblemDetails
// @Failure 503 {object} ProblemDetails
// @Router /datasets/import [post]
func (h *DatasetHandler) Import(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	if !h.datasetService.IsStorageEnabled() {
		return NewServiceUnavailableError(c, "Dataset imports are disabled (storage not configured)")
	}

	var req ImportDatasetRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if req.Key == "" {
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "key", Message: "Key is required"},
		})
	}

	info, err := h.datasetService.ImportObject(c.Request().Context(), sessionID, req.Key)
	if err != nil {
		return handleDatasetError(c, err, "Failed to import dataset")
	}

	return c.JSON(http.StatusCreated, h.toDatasetResponse(info))
}

// GetCurrent godoc
// @Summary Get the current dataset
// @Description Describe the session's dataset with its column candidates and default mapping
// @Tags datasets
// @Produce json
// @Success 200 {object} DatasetResponse
// @Failure 404 {object} ProblemDetails
// @Router /datasets/current [get]
func (h *DatasetHandler) GetCurrent(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	info, err := h.datasetService.CurrentInfo(sessionID)
	if err != nil {
		return handleDatasetError(c, err, "Failed to get dataset")
	}

	return c.JSON(http.StatusOK, h.toDatasetResponse(info))
}

// Clear godoc
// @Summary Clear the current dataset
// @Tags datasets
// @Success 204
// @Router /datasets/current [delete]
func (h *DatasetHandler) Clear(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)

	if err := h.datasetService.Clear(sessionID); err != nil {
		return handleDatasetError(c, err, "Failed to clear dataset")
	}

	return c.NoContent(http.StatusNoContent)
}
