package domain

import "errors"

// Domain errors
var (
	ErrNotFound           = errors.New("resource not found")
	ErrNoDataset          = errors.New("no dataset loaded")
	ErrEmptyDataset       = errors.New("dataset has no rows")
	ErrInvalidCSV         = errors.New("invalid CSV data")
	ErrDatasetTooLarge    = errors.New("dataset exceeds maximum upload size")
	ErrColumnNotFound     = errors.New("column not found")
	ErrInvalidDateRange   = errors.New("start date is after end date")
	ErrInvalidWindow      = errors.New("rolling window out of range")
	ErrInvalidGranularity = errors.New("invalid granularity")
	ErrStorageDisabled    = errors.New("object storage is not configured")
	ErrObjectNotFound     = errors.New("object not found")
	ErrInvalidObjectKey   = errors.New("invalid object key")
)

// Validation constants
const (
	MinRollingWindow     = 1
	MaxRollingWindow     = 30
	DefaultRollingWindow = 7
	MaxObjectKeyLength   = 1024
)
