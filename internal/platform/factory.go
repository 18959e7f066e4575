package platform

import (
	"context"
	"time"

	"github.com/jotpad/jotpad/pkg/adapters/kv"
	"github.com/jotpad/jotpad/pkg/core"
)

// New builds a Store rooted at the given data directory.
//
// Wiring: file-backed KV in dir -> collection storage at a fixed key ->
// Store loaded fail-soft. An optional jotpad.yaml in dir overlays the
// defaults; explicit options win over the config file.
func New(ctx context.Context, dir string, opts ...Option) (*core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	storage := o.storage
	if storage == nil {
		cfg, err := LoadConfig(dir)
		if err != nil {
			return nil, err
		}

		key := o.key
		if key == "" {
			key = cfg.StorageKey
		}

		var fileOpts []kv.FileOption
		if o.logger != nil {
			fileOpts = append(fileOpts, kv.WithFileLogger(o.logger))
		}
		file, err := kv.NewFile(dir, fileOpts...)
		if err != nil {
			return nil, err
		}

		var storageOpts []kv.StorageOption
		if key != "" {
			storageOpts = append(storageOpts, kv.WithKey(key))
		}
		storage = kv.NewStorage(file, storageOpts...)
	}

	var storeOpts []core.StoreOption
	if o.logger != nil {
		storeOpts = append(storeOpts, core.WithLogger(o.logger))
	}
	if o.clock != nil {
		storeOpts = append(storeOpts, core.WithClock(o.clock))
	}
	if o.newID != nil {
		storeOpts = append(storeOpts, core.WithIDGenerator(o.newID))
	}

	return core.NewStore(ctx, storage, storeOpts...), nil
}

// NewSession builds an editing session for the store, honoring the debounce
// interval from options and, when left default, the directory config.
func NewSession(store *core.Store, dir string, opts ...Option) *core.Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	interval := o.debounce
	if interval == core.DefaultDebounceInterval && dir != "" {
		if cfg, err := LoadConfig(dir); err == nil && cfg.DebounceMs > 0 {
			interval = time.Duration(cfg.DebounceMs) * time.Millisecond
		}
	}

	return core.NewSession(store, core.WithDebounceInterval(interval))
}
