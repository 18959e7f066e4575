package core

import "context"

// EventType represents the type of change observed in the storage.
type EventType string

const (
	EventCreate EventType = "CREATE"
	EventModify EventType = "MODIFY"
	EventDelete EventType = "DELETE"
)

// Event represents an externally observed change to a storage key.
type Event struct {
	Type      EventType
	Key       string
	Timestamp int64 // Unix timestamp
}

// Watchable is implemented by storages that can observe external changes
// (e.g. another process rewriting the notes file).
type Watchable interface {
	// Watch emits events for keys matching the glob pattern until ctx is done.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
