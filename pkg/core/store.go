package core

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Store owns the canonical in-memory note collection plus the selection and
// query state. It is the single writer: nothing mutates the collection except
// its own operations, and every mutation is followed by exactly one full
// persistence write.
//
// All operations are synchronous. The mutex exists because editor session
// timers flush on their own goroutine.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	logger  *slog.Logger

	now   func() time.Time
	newID func() string

	notes     []Note // head = most recently created
	selection string
	query     string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for persistence failures.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides the id source (tests).
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *Store) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// NewStore creates a Store backed by the given storage and loads the
// persisted collection. Load failures degrade to an empty collection.
func NewStore(ctx context.Context, storage Storage, opts ...StoreOption) *Store {
	s := &Store{
		storage: storage,
		logger:  slog.Default(),
		now:     time.Now,
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.notes = s.loadSoft(ctx)
	return s
}

// loadSoft reads the collection, substituting empty on any failure.
func (s *Store) loadSoft(ctx context.Context) []Note {
	if s.storage == nil {
		return nil
	}
	notes, err := s.storage.Load(ctx)
	if err != nil {
		s.logger.Warn("failed to load notes, starting empty", "error", err)
		return nil
	}
	return notes
}

// persist writes the full collection. Write failures are logged, never
// surfaced: the in-memory state stays authoritative for the session.
func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	if err := s.storage.Save(ctx, s.notes); err != nil {
		s.logger.Error("failed to persist notes", "error", err)
	}
}

// Create inserts a new note with default title and empty content at the head
// of the collection, selects it, persists, and returns its id.
func (s *Store) Create(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := Note{
		ID:        s.newID(),
		Title:     DefaultTitle,
		UpdatedAt: s.now().UnixMilli(),
	}
	s.notes = append([]Note{n}, s.notes...)
	s.selection = n.ID

	s.persist(ctx)
	return n.ID
}

// Update merges the patch into the note with the given id and bumps its
// timestamp. Absent ids are a no-op. UpdatedAt never decreases for a note,
// even if the wall clock does.
func (s *Store) Update(ctx context.Context, id string, patch Patch) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if patch.Title != nil {
			s.notes[i].Title = *patch.Title
		}
		if patch.Content != nil {
			s.notes[i].Content = *patch.Content
		}
		if ts := s.now().UnixMilli(); ts > s.notes[i].UpdatedAt {
			s.notes[i].UpdatedAt = ts
		}
		s.persist(ctx)
		return
	}
}

// Delete removes the note with the given id if present (idempotent) and
// clears the selection when it pointed at the deleted note.
func (s *Store) Delete(ctx context.Context, id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		s.notes = append(s.notes[:i], s.notes[i+1:]...)
		if s.selection == id {
			s.selection = ""
		}
		s.persist(ctx)
		return
	}
}

// Select sets the selection to the given id without existence validation.
// An empty id clears the selection.
func (s *Store) Select(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = id
}

// Selection returns the current selection id ("" when cleared).
func (s *Store) Selection() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SetQuery updates the search query. Query state is never persisted.
func (s *Store) SetQuery(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = q
}

// Query returns the current search query.
func (s *Store) Query() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.query
}

// Notes returns the filtered, sorted view of the collection for the current
// query. Recomputed fresh on every call.
func (s *Store) Notes() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return FilterNotes(s.notes, s.query)
}

// All returns a snapshot of the raw collection in creation order.
func (s *Store) All() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Note, len(s.notes))
	copy(out, s.notes)
	return out
}

// Get returns the note with the given id.
func (s *Store) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SelectedNote(s.notes, id)
}

// Selected resolves the current selection against the collection.
func (s *Store) Selected() (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return SelectedNote(s.notes, s.selection)
}

// Len returns the total number of notes, ignoring the query.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}

// Reload re-reads the collection from storage, discarding in-memory notes.
// A selection pointing at a note that disappeared is cleared.
func (s *Store) Reload(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notes = s.loadSoft(ctx)
	if _, ok := SelectedNote(s.notes, s.selection); !ok {
		s.selection = ""
	}
}

// Watch observes external changes to the storage if supported.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan Event, error) {
	w, ok := s.storage.(Watchable)
	if !ok {
		return nil, ErrNotWatchable
	}
	return w.Watch(ctx, pattern)
}
