package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/aretw0/introspection"

	"github.com/jotpad/jotpad/pkg/core"
)

// CollectionKey is the fixed key the full note collection is stored under.
const CollectionKey = "jotpad.notes"

// Storage implements core.Storage over a KV: the whole collection is one
// JSON-encoded array of notes under a single key. No deltas, no versioning.
type Storage struct {
	kv  KV
	key string
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKey overrides the storage key (defaults to CollectionKey).
func WithKey(key string) StorageOption {
	return func(s *Storage) {
		if key != "" {
			s.key = key
		}
	}
}

// NewStorage creates a collection storage over the given KV.
func NewStorage(kv KV, opts ...StorageOption) *Storage {
	s := &Storage{
		kv:  kv,
		key: CollectionKey,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key in use.
func (s *Storage) Key() string {
	return s.key
}

// Load implements core.Storage. A missing key yields an empty collection;
// malformed data is an error the Store degrades from (fail soft).
func (s *Storage) Load(ctx context.Context) ([]core.Note, error) {
	data, err := s.kv.Get(s.key)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var notes []core.Note
	if err := json.Unmarshal(data, &notes); err != nil {
		return nil, fmt.Errorf("malformed collection blob: %w", err)
	}
	return notes, nil
}

// Save implements core.Storage.
func (s *Storage) Save(ctx context.Context, notes []core.Note) error {
	if notes == nil {
		notes = []core.Note{} // persist an empty array, not null
	}
	data, err := json.Marshal(notes)
	if err != nil {
		return fmt.Errorf("failed to serialize collection: %w", err)
	}
	return s.kv.Set(s.key, data)
}

// Watch implements core.Watchable when the underlying KV supports it.
func (s *Storage) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	w, ok := s.kv.(core.Watchable)
	if !ok {
		return nil, core.ErrNotWatchable
	}
	return w.Watch(ctx, pattern)
}

// State implements introspection.Introspectable.
func (s *Storage) State() any {
	kvType := "kv"
	if comp, ok := s.kv.(introspection.Component); ok {
		kvType = comp.ComponentType()
	}
	return map[string]string{
		"key": s.key,
		"kv":  kvType,
	}
}

// ComponentType implements introspection.Component.
func (s *Storage) ComponentType() string {
	return "kv-storage"
}

var _ core.Storage = (*Storage)(nil)
var _ introspection.Introspectable = (*Storage)(nil)
var _ introspection.Component = (*Storage)(nil)
