package core

import "context"

// Storage defines the contract for persisting the full note collection.
// Adhering to this interface keeps the Store independent of the underlying
// key-value mechanism (file, memory, anything blob-shaped).
//
// The Store treats both operations as fail-soft: a Load error degrades to an
// empty collection and a Save error leaves the in-memory state authoritative.
type Storage interface {
	// Load reads the persisted collection. A missing blob is not an error;
	// it yields an empty slice.
	Load(ctx context.Context) ([]Note, error)

	// Save persists the full collection, replacing the previous blob.
	Save(ctx context.Context, notes []Note) error
}
