package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation         = "https://fortuna.app/errors/validation"
	ErrorTypeNotFound           = "https://fortuna.app/errors/not-found"
	ErrorTypeNoDataset          = "https://fortuna.app/errors/no-dataset"
	ErrorTypePayloadTooLarge    = "https://fortuna.app/errors/payload-too-large"
	ErrorTypeServiceUnavailable = "https://fortuna.app/errors/service-unavailable"
	ErrorTypeInternal           = "https://fortuna.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewNoDatasetError tells the client to upload a file or load the sample first
func NewNoDatasetError(c echo.Context) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNoDataset,
		Title:    "No Dataset",
		Status:   http.StatusNotFound,
		Detail:   "Upload a CSV file or load the sample dataset first",
		Instance: c.Request().URL.Path,
	})
}

// NewPayloadTooLargeError creates a payload too large error response
func NewPayloadTooLargeError(c echo.Context, detail string) error {
	return c.JSON(http.StatusRequestEntityTooLarge, ProblemDetails{
		Type:     ErrorTypePayloadTooLarge,
		Title:    "Payload Too Large",
		Status:   http.StatusRequestEntityTooLarge,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewServiceUnavailableError creates a service unavailable error response
func NewServiceUnavailableError(c echo.Context, detail string) error {
	return c.JSON(http.StatusServiceUnavailable, ProblemDetails{
		Type:     ErrorTypeServiceUnavailable,
		Title:    "Service Unavailable",
		Status:   http.StatusServiceUnavailable,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// handleDatasetError maps dataset and dashboard errors to problem responses.
// Unknown errors are logged and reported as internal errors with fallback as detail.
func handleDatasetError(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrNoDataset):
		return NewNoDatasetError(c)
	case errors.Is(err, domain.ErrEmptyDataset):
		return NewValidationError(c, "The file has no data rows", []ValidationError{
			{Field: "file", Message: "CSV must contain a header and at least one row"},
		})
	case errors.Is(err, domain.ErrInvalidCSV):
		return NewValidationError(c, "The file is not valid CSV", []ValidationError{
			{Field: "file", Message: err.Error()},
		})
	case errors.Is(err, domain.ErrDatasetTooLarge):
		return NewPayloadTooLargeError(c, "The file exceeds the upload size limit")
	case errors.Is(err, domain.ErrColumnNotFound):
		return NewValidationError(c, "Unknown column", []ValidationError{
			{Field: "column", Message: err.Error()},
		})
	case errors.Is(err, domain.ErrInvalidDateRange):
		return NewValidationError(c, "Invalid date range", []ValidationError{
			{Field: "start", Message: "Start date must not be after end date"},
		})
	case errors.Is(err, domain.ErrInvalidWindow):
		return NewValidationError(c, "Invalid rolling window", []ValidationError{
			{Field: "window", Message: "Must be between 1 and 30"},
		})
	case errors.Is(err, domain.ErrInvalidGranularity):
		return NewValidationError(c, "Invalid granularity", []ValidationError{
			{Field: "granularity", Message: "Must be one of: daily, monthly"},
		})
	case errors.Is(err, domain.ErrInvalidObjectKey):
		return NewValidationError(c, "Invalid object key", []ValidationError{
			{Field: "key", Message: "Must be a relative path without '..'"},
		})
	case errors.Is(err, domain.ErrObjectNotFound):
		return NewNotFoundError(c, "Object not found")
	case errors.Is(err, domain.ErrStorageDisabled):
		return NewServiceUnavailableError(c, "Dataset imports are disabled (storage not configured)")
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg(fallback)
	return NewInternalError(c, fallback)
}
