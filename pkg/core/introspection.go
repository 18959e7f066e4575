package core

import (
	"github.com/aretw0/introspection"
)

// StoreState exposes internal state for observability.
type StoreState struct {
	NoteCount   int    `json:"note_count"`
	Selection   string `json:"selection"`
	Query       string `json:"query"`
	StorageType string `json:"storage_type"`
}

// State implements introspection.Introspectable.
func (s *Store) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	storageType := "none"
	if s.storage != nil {
		storageType = "storage"
		if comp, ok := s.storage.(introspection.Component); ok {
			storageType = comp.ComponentType()
		}
	}

	return StoreState{
		NoteCount:   len(s.notes),
		Selection:   s.selection,
		Query:       s.query,
		StorageType: storageType,
	}
}

// ComponentType implements introspection.Component.
func (s *Store) ComponentType() string {
	return "store"
}

var _ introspection.Introspectable = (*Store)(nil)
var _ introspection.Component = (*Store)(nil)
