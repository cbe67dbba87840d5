package testutil

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/dafibh/fortuna/fortuna-dashboard/internal/websocket"
	"github.com/google/uuid"
)

// MockDatasetRepository is a mock implementation of domain.DatasetRepository
type MockDatasetRepository struct {
	Datasets map[uuid.UUID]*domain.Dataset
	SaveErr  error
	GetErr   error
}

// NewMockDatasetRepository creates a new MockDatasetRepository
func NewMockDatasetRepository() *MockDatasetRepository {
	return &MockDatasetRepository{
		Datasets: make(map[uuid.UUID]*domain.Dataset),
	}
}

// Save stores a dataset
func (m *MockDatasetRepository) Save(dataset *domain.Dataset) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Datasets[dataset.SessionID] = dataset
	return nil
}

// Get retrieves the dataset of a session
func (m *MockDatasetRepository) Get(sessionID uuid.UUID) (*domain.Dataset, error) {
	if m.GetErr != nil {
		return nil, m.GetErr
	}
	if dataset, ok := m.Datasets[sessionID]; ok {
		return dataset, nil
	}
	return nil, domain.ErrNotFound
}

// Delete removes the dataset of a session
func (m *MockDatasetRepository) Delete(sessionID uuid.UUID) error {
	delete(m.Datasets, sessionID)
	return nil
}

// AddDataset adds a dataset to the mock repository (test helper)
func (m *MockDatasetRepository) AddDataset(dataset *domain.Dataset) {
	m.Datasets[dataset.SessionID] = dataset
}

// MockObjectRepository is a mock implementation of storage.DatasetObjectRepository
type MockObjectRepository struct {
	Objects map[string]string
	OpenErr error
	Opened  []string
}

// NewMockObjectRepository creates a new MockObjectRepository
func NewMockObjectRepository() *MockObjectRepository {
	return &MockObjectRepository{
		Objects: make(map[string]string),
	}
}

// Open returns the stored object body
func (m *MockObjectRepository) Open(ctx context.Context, key string) (io.ReadCloser, int64, error) {
	m.Opened = append(m.Opened, key)
	if m.OpenErr != nil {
		return nil, 0, m.OpenErr
	}
	body, ok := m.Objects[key]
	if !ok {
		return nil, 0, domain.ErrObjectNotFound
	}
	return io.NopCloser(strings.NewReader(body)), int64(len(body)), nil
}

// PublishedEvent is an event captured by MockPublisher
type PublishedEvent struct {
	SessionID uuid.UUID
	Event     websocket.Event
}

// MockPublisher records published websocket events
type MockPublisher struct {
	mu     sync.Mutex
	events []PublishedEvent
}

// Publish records the event
func (m *MockPublisher) Publish(sessionID uuid.UUID, event websocket.Event) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, PublishedEvent{SessionID: sessionID, Event: event})
}

// Events returns a copy of the recorded events
func (m *MockPublisher) Events() []PublishedEvent {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]PublishedEvent, len(m.events))
	copy(out, m.events)
	return out
}
