package domain

import (
	"time"

	"github.com/google/uuid"
)

// DatasetSource describes where a raw table came from
type DatasetSource string

const (
	DatasetSourceUpload DatasetSource = "upload"
	DatasetSourceSample DatasetSource = "sample"
	DatasetSourceObject DatasetSource = "object"
)

// RawTable is a header plus string cells, exactly as read from the input file.
// Every row has len(Columns) cells.
type RawTable struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex returns the position of the named column, or -1
func (t *RawTable) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Dataset is the last raw table loaded by a session
type Dataset struct {
	SessionID uuid.UUID
	Source    DatasetSource
	Filename  string
	Table     *RawTable
	LoadedAt  time.Time
}

// ColumnMapping selects which raw columns play the Date, Category and Amount roles
type ColumnMapping struct {
	Date     string `json:"date"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
}

// ColumnCandidates lists the columns offered for each role
type ColumnCandidates struct {
	Date     []string `json:"date"`
	Category []string `json:"category"`
	Amount   []string `json:"amount"`
}

// DatasetRepository keeps the last loaded dataset of every session
type DatasetRepository interface {
	Save(dataset *Dataset) error
	Get(sessionID uuid.UUID) (*Dataset, error)
	Delete(sessionID uuid.UUID) error
}
