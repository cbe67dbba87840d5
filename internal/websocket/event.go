package websocket

import (
	"encoding/json"
	"fmt"
	"time"
)

// EventType represents what happened to an entity
type EventType string

const (
	EventTypeLoaded  EventType = "loaded"
	EventTypeCleared EventType = "cleared"
)

// EntityType represents the type of entity the event is about
type EntityType string

const (
	EntityTypeDataset EntityType = "dataset"
)

// Event represents a WebSocket event message sent to clients
// Format: { type, entity, payload, timestamp }
type Event struct {
	Type      string      `json:"type"`    // e.g. "dataset.loaded"
	Entity    EntityType  `json:"entity"`  // e.g. "dataset"
	Payload   interface{} `json:"payload"` // event data
	Timestamp time.Time   `json:"timestamp"`
}

// NewEvent creates a new event with the given type, entity, and payload
func NewEvent(eventType EventType, entityType EntityType, payload interface{}) Event {
	return Event{
		Type:      fmt.Sprintf("%s.%s", entityType, eventType),
		Entity:    entityType,
		Payload:   payload,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON serializes the event to JSON bytes
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DatasetLoaded creates a dataset.loaded event
func DatasetLoaded(payload interface{}) Event {
	return NewEvent(EventTypeLoaded, EntityTypeDataset, payload)
}

// DatasetCleared creates a dataset.cleared event
func DatasetCleared(payload interface{}) Event {
	return NewEvent(EventTypeCleared, EntityTypeDataset, payload)
}
