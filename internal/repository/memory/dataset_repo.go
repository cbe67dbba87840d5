package memory

import (
	"sync"
	"time"

	"github.com/dafibh/fortuna/fortuna-dashboard/internal/domain"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	// DefaultSessionTTL is how long an idle session keeps its dataset
	DefaultSessionTTL = 2 * time.Hour
	// CleanupInterval is the interval for evicting idle sessions
	CleanupInterval = 5 * time.Minute
)

// DatasetRepository implements domain.DatasetRepository in memory.
// Datasets of sessions idle for longer than the TTL are evicted and the
// eviction callback, if any, is told which sessions ended.
type DatasetRepository struct {
	entries map[uuid.UUID]*datasetEntry
	mu      sync.RWMutex
	ttl     time.Duration
	now     func() time.Time
	onEvict func(sessionID uuid.UUID)
	stopCh  chan struct{}
	stopped sync.Once
}

type datasetEntry struct {
	dataset  *domain.Dataset
	lastSeen time.Time
}

// NewDatasetRepository creates a repository and starts its cleanup goroutine
func NewDatasetRepository(ttl time.Duration) *DatasetRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	r := &DatasetRepository{
		entries: make(map[uuid.UUID]*datasetEntry),
		ttl:     ttl,
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go r.cleanup()

	return r
}

// OnEvict registers fn to run for every session that expires.
// fn runs without the repository lock held.
func (r *DatasetRepository) OnEvict(fn func(sessionID uuid.UUID)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onEvict = fn
}

// Save stores the dataset, replacing the session's previous one
func (r *DatasetRepository) Save(dataset *domain.Dataset) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries[dataset.SessionID] = &datasetEntry{
		dataset:  dataset,
		lastSeen: r.now(),
	}
	return nil
}

// Get returns the session's dataset and refreshes its idle timer
func (r *DatasetRepository) Get(sessionID uuid.UUID) (*domain.Dataset, error) {
	r.mu.Lock()
	entry, ok := r.entries[sessionID]
	if !ok {
		r.mu.Unlock()
		return nil, domain.ErrNotFound
	}
	now := r.now()
	if now.Sub(entry.lastSeen) > r.ttl {
		delete(r.entries, sessionID)
		onEvict := r.onEvict
		r.mu.Unlock()

		if onEvict != nil {
			onEvict(sessionID)
		}
		return nil, domain.ErrNotFound
	}
	entry.lastSeen = now
	r.mu.Unlock()
	return entry.dataset, nil
}

// Delete forgets the session's dataset. Deleting a missing session is not an error.
func (r *DatasetRepository) Delete(sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, sessionID)
	return nil
}

// Len returns the number of stored sessions
func (r *DatasetRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// EvictExpired removes idle sessions and returns how many were removed
func (r *DatasetRepository) EvictExpired() int {
	r.mu.Lock()
	now := r.now()
	var expired []uuid.UUID
	for id, entry := range r.entries {
		if now.Sub(entry.lastSeen) > r.ttl {
			delete(r.entries, id)
			expired = append(expired, id)
		}
	}
	onEvict := r.onEvict
	r.mu.Unlock()

	if onEvict != nil {
		for _, id := range expired {
			onEvict(id)
		}
	}
	return len(expired)
}

func (r *DatasetRepository) cleanup() {
	ticker := time.NewTicker(CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if removed := r.EvictExpired(); removed > 0 {
				log.Debug().Int("sessions_removed", removed).Msg("Evicted idle datasets")
			}
		case <-r.stopCh:
			return
		}
	}
}

// Stop stops the cleanup goroutine
func (r *DatasetRepository) Stop() {
	r.stopped.Do(func() {
		close(r.stopCh)
	})
}
