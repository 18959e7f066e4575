// Package kv provides the key-value persistence adapter: a synchronous
// local blob store holding the full note collection under a fixed key.
package kv

import (
	"errors"
	"sync"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// KV is the synchronous local key-value contract the storage adapter builds
// on. Implementations are expected to be fast local stores, not remote ones.
type KV interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)

	// Set writes the blob under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes the key. Absent keys are a no-op.
	Delete(key string) error
}

// Memory is a map-backed KV for tests and ephemeral sessions.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites makes every Set return an error (tests the fail-soft path).
	FailWrites bool
}

// NewMemory creates an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get implements KV.
func (m *Memory) Get(key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Set implements KV.
func (m *Memory) Set(key string, value []byte) error {
	if m.FailWrites {
		return errors.New("memory kv: writes disabled")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Delete implements KV.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
