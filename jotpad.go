package jotpad

import (
	"context"
	"log/slog"
	"time"

	"github.com/jotpad/jotpad/internal/platform"
	"github.com/jotpad/jotpad/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note entity.
type Note = core.Note

// Patch is a public alias for partial note updates.
type Patch = core.Patch

// Store is a public alias for the notes store.
type Store = core.Store

// Session is a public alias for the debounced editor session.
type Session = core.Session

// Event is a public alias for storage change events.
type Event = core.Event

// --- Configuration ---

// Option defines a functional option for configuring jotpad.
type Option = platform.Option

// WithLogger sets the logger for the store and adapters.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStorage allows injecting a custom persistence adapter.
func WithStorage(storage core.Storage) Option {
	return platform.WithStorage(storage)
}

// WithStorageKey overrides the key the collection blob is stored under.
func WithStorageKey(key string) Option {
	return platform.WithStorageKey(key)
}

// WithDebounceInterval overrides the editor session quiet period.
func WithDebounceInterval(d time.Duration) Option {
	return platform.WithDebounceInterval(d)
}

// --- Factories ---

// New opens (or creates) the note store in the given data directory.
func New(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	return platform.New(ctx, dir, opts...)
}

// NewSession creates an editing session for the store. The dir argument lets
// the session pick up a debounce override from the directory config; pass ""
// to use defaults and options only.
func NewSession(store *core.Store, dir string, opts ...Option) *core.Session {
	return platform.NewSession(store, dir, opts...)
}

// --- Derived view model ---

// FilterNotes computes the filtered, sorted note list for a query string.
func FilterNotes(notes []Note, query string) []Note {
	return core.FilterNotes(notes, query)
}

// SelectedNote resolves a selection id against a collection snapshot.
func SelectedNote(notes []Note, id string) (Note, bool) {
	return core.SelectedNote(notes, id)
}
