package core

import (
	"context"
	"sync"
	"time"
)

// DefaultDebounceInterval is the quiet period after the last edit before a
// session commits its buffer to the store.
const DefaultDebounceInterval = 200 * time.Millisecond

// Session is the transient editing buffer for exactly one note at a time.
//
// It is a small debounced-commit state machine: every edit updates the
// buffer immediately and (re)arms a single-shot timer; when the timer fires
// with no intervening edit, the buffer is flushed to the store via Update.
// Rebinding or unbinding discards any pending commit for the previous note
// so a stale timer never leaks across notes.
type Session struct {
	mu       sync.Mutex
	store    *Store
	interval time.Duration

	noteID  string
	title   string
	content string

	gen   uint64 // bumped on every bind/unbind; stale timers compare against it
	timer *time.Timer
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithDebounceInterval overrides the quiet period before a commit.
func WithDebounceInterval(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.interval = d
		}
	}
}

// NewSession creates an unbound editing session for the given store.
func NewSession(store *Store, opts ...SessionOption) *Session {
	s := &Session{
		store:    store,
		interval: DefaultDebounceInterval,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Bind (re)initializes the buffer from the note with the given id and drops
// any commit pending for a previously bound note. It reports whether the
// note exists; on a miss the session ends up unbound.
func (s *Session) Bind(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invalidateLocked()

	n, ok := s.store.Get(id)
	if !ok {
		s.noteID = ""
		return false
	}

	s.noteID = n.ID
	s.title = n.Title
	s.content = n.Content
	return true
}

// Unbind discards the buffer and any pending commit without flushing.
// Keystrokes since the last flush are lost, matching the store semantics of
// the last committed state.
func (s *Session) Unbind() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invalidateLocked()
	s.noteID = ""
}

// invalidateLocked cancels the pending timer and bumps the generation so an
// already-fired timer that lost the race becomes a no-op.
func (s *Session) invalidateLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

// SetTitle records a title edit and reschedules the commit timer.
// A no-op while unbound.
func (s *Session) SetTitle(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noteID == "" {
		return
	}
	s.title = v
	s.scheduleLocked()
}

// SetContent records a content edit and reschedules the commit timer.
// A no-op while unbound.
func (s *Session) SetContent(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.noteID == "" {
		return
	}
	s.content = v
	s.scheduleLocked()
}

// scheduleLocked arms the single-shot commit timer, cancelling any previous
// one. Never more than one timer is outstanding per session.
func (s *Session) scheduleLocked() {
	if s.timer != nil {
		s.timer.Stop()
	}
	gen := s.gen
	s.timer = time.AfterFunc(s.interval, func() {
		s.commit(gen)
	})
}

// commit flushes the buffer to the store unless the session was rebound or
// unbound since the timer was armed.
func (s *Session) commit(gen uint64) {
	s.mu.Lock()
	if gen != s.gen || s.noteID == "" {
		s.mu.Unlock()
		return
	}
	id := s.noteID
	title, content := s.title, s.content
	s.timer = nil
	s.mu.Unlock()

	// Update is idempotent for absent ids, so a note deleted under a live
	// timer degrades to a no-op.
	s.store.Update(context.Background(), id, Patch{Title: &title, Content: &content})
}

// Flush commits the buffer immediately, cancelling the pending timer.
// This is the opt-in durability hook for callers that cannot tolerate the
// drop-on-unbind semantics (e.g. one-shot CLI edits).
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	if s.noteID == "" {
		s.mu.Unlock()
		return ErrNotBound
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.gen++
	id := s.noteID
	title, content := s.title, s.content
	s.mu.Unlock()

	s.store.Update(ctx, id, Patch{Title: &title, Content: &content})
	return nil
}

// NoteID returns the id of the bound note ("" when unbound).
func (s *Session) NoteID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.noteID
}

// Title returns the buffered title.
func (s *Session) Title() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.title
}

// Content returns the buffered content.
func (s *Session) Content() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.content
}

// Pending reports whether a commit timer is currently armed.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer != nil
}
