package platform

import (
	"log/slog"
	"time"

	"github.com/jotpad/jotpad/pkg/core"
)

// options holds the internal configuration for the jotpad composition root.
type options struct {
	storage  core.Storage
	logger   *slog.Logger
	key      string
	debounce time.Duration
	clock    func() time.Time
	newID    func() string
}

// Option defines a functional option for configuring jotpad.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		debounce: core.DefaultDebounceInterval,
	}
}

// WithLogger sets the logger for the store and adapters.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStorage injects a custom storage, skipping the default file-backed KV.
func WithStorage(storage core.Storage) Option {
	return func(o *options) {
		o.storage = storage
	}
}

// WithStorageKey overrides the key the collection blob is stored under.
func WithStorageKey(key string) Option {
	return func(o *options) {
		o.key = key
	}
}

// WithDebounceInterval overrides the editor session quiet period.
func WithDebounceInterval(d time.Duration) Option {
	return func(o *options) {
		if d > 0 {
			o.debounce = d
		}
	}
}

// WithClock overrides the time source (tests).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator overrides the note id source (tests).
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.newID = newID
	}
}
