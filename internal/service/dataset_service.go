package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/repository/storage"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/tabular"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/websocket"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// DefaultMaxUploadBytes caps the size of an uploaded or imported CSV
const DefaultMaxUploadBytes int64 = 10 << 20

// DatasetInfo describes a loaded dataset and the mapping choices it offers
type DatasetInfo struct {
	Source         domain.DatasetSource    `json:"source"`
	Filename       string                  `json:"filename"`
	LoadedAt       time.Time               `json:"loadedAt"`
	RowCount       int                     `json:"rowCount"`
	Columns        []string                `json:"columns"`
	Candidates     domain.ColumnCandidates `json:"candidates"`
	DefaultMapping domain.ColumnMapping    `json:"defaultMapping"`
}

// DatasetService loads raw tables into the session store
type DatasetService struct {
	datasetRepo    domain.DatasetRepository
	objects        storage.DatasetObjectRepository
	eventPublisher websocket.EventPublisher
	maxBytes       int64
}

// NewDatasetService creates a new DatasetService. objects may be nil when
// object storage is not configured.
func NewDatasetService(datasetRepo domain.DatasetRepository, objects storage.DatasetObjectRepository, maxBytes int64) *DatasetService {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxUploadBytes
	}
	return &DatasetService{
		datasetRepo: datasetRepo,
		objects:     objects,
		maxBytes:    maxBytes,
	}
}

// SetEventPublisher sets the event publisher for real-time updates
func (s *DatasetService) SetEventPublisher(publisher websocket.EventPublisher) {
	s.eventPublisher = publisher
}

// IsStorageEnabled reports whether object imports are available
func (s *DatasetService) IsStorageEnabled() bool {
	return s != nil && s.objects != nil
}

// MaxBytes returns the upload size limit
func (s *DatasetService) MaxBytes() int64 {
	return s.maxBytes
}

// LoadUpload parses an uploaded CSV and makes it the session's dataset
func (s *DatasetService) LoadUpload(sessionID uuid.UUID, filename string, r io.Reader) (*DatasetInfo, error) {
	table, err := s.readTable(r)
	if err != nil {
		return nil, err
	}
	return s.store(sessionID, domain.DatasetSourceUpload, cleanFilename(filename), table)
}

// LoadSample makes the bundled sample the session's dataset
func (s *DatasetService) LoadSample(sessionID uuid.UUID) (*DatasetInfo, error) {
	return s.store(sessionID, domain.DatasetSourceSample, SampleFilename, SampleTable())
}

// ImportObject downloads a CSV from object storage and makes it the session's dataset
func (s *DatasetService) ImportObject(ctx context.Context, sessionID uuid.UUID, key string) (*DatasetInfo, error) {
	if !s.IsStorageEnabled() {
		return nil, domain.ErrStorageDisabled
	}

	body, size, err := s.objects.Open(ctx, key)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	if size > s.maxBytes {
		return nil, domain.ErrDatasetTooLarge
	}

	table, err := s.readTable(body)
	if err != nil {
		return nil, err
	}
	return s.store(sessionID, domain.DatasetSourceObject, path.Base(strings.TrimSpace(key)), table)
}

// Current returns the session's dataset
func (s *DatasetService) Current(sessionID uuid.UUID) (*domain.Dataset, error) {
	dataset, err := s.datasetRepo.Get(sessionID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNoDataset
		}
		return nil, err
	}
	return dataset, nil
}

// CurrentInfo returns the description of the session's dataset
func (s *DatasetService) CurrentInfo(sessionID uuid.UUID) (*DatasetInfo, error) {
	dataset, err := s.Current(sessionID)
	if err != nil {
		return nil, err
	}
	return describe(dataset), nil
}

// Clear forgets the session's dataset
func (s *DatasetService) Clear(sessionID uuid.UUID) error {
	if err := s.datasetRepo.Delete(sessionID); err != nil {
		return fmt.Errorf("clear dataset: %w", err)
	}

	log.Info().Str("session_id", sessionID.String()).Msg("Dataset cleared")

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, websocket.DatasetCleared(map[string]interface{}{
			"sessionId": sessionID.String(),
		}))
	}
	return nil
}

func (s *DatasetService) readTable(r io.Reader) (*domain.RawTable, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return nil, domain.ErrDatasetTooLarge
	}

	table, err := tabular.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if len(table.Rows) == 0 {
		return nil, domain.ErrEmptyDataset
	}
	return table, nil
}

func (s *DatasetService) store(sessionID uuid.UUID, source domain.DatasetSource, filename string, table *domain.RawTable) (*DatasetInfo, error) {
	dataset := &domain.Dataset{
		SessionID: sessionID,
		Source:    source,
		Filename:  filename,
		Table:     table,
		LoadedAt:  time.Now().UTC(),
	}
	if err := s.datasetRepo.Save(dataset); err != nil {
		return nil, fmt.Errorf("save dataset: %w", err)
	}

	info := describe(dataset)

	log.Info().
		Str("session_id", sessionID.String()).
		Str("source", string(source)).
		Str("filename", filename).
		Int("rows", info.RowCount).
		Int("columns", len(info.Columns)).
		Msg("Dataset loaded")

	if s.eventPublisher != nil {
		s.eventPublisher.Publish(sessionID, websocket.DatasetLoaded(info))
	}
	return info, nil
}

func describe(dataset *domain.Dataset) *DatasetInfo {
	candidates := SuggestColumns(dataset.Table.Columns)
	return &DatasetInfo{
		Source:         dataset.Source,
		Filename:       dataset.Filename,
		LoadedAt:       dataset.LoadedAt,
		RowCount:       len(dataset.Table.Rows),
		Columns:        dataset.Table.Columns,
		Candidates:     candidates,
		DefaultMapping: DefaultMapping(candidates),
	}
}

func cleanFilename(filename string) string {
	name := path.Base(strings.ReplaceAll(strings.TrimSpace(filename), "\\", "/"))
	if name == "." || name == "/" {
		return "upload.csv"
	}
	return name
}
