package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/jotpad/jotpad/pkg/core"
)

// watchDebounceInterval coalesces the burst of filesystem events a single
// atomic write produces (create temp, write, rename).
const watchDebounceInterval = 50 * time.Millisecond

// watchBufferSize is the event channel capacity.
const watchBufferSize = 16

// Watch implements core.Watchable: it observes the store directory and emits
// a debounced event per key whose name matches the glob pattern. The channel
// is closed when ctx is done or the watcher fails.
func (f *File) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := watcher.Add(f.Path); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", f.Path, err)
	}

	events := make(chan core.Event, watchBufferSize)
	w := &fileWatcher{
		file:      f,
		pattern:   pattern,
		watcher:   watcher,
		events:    events,
		debouncer: newDebouncer(watchDebounceInterval),
	}

	lifecycle.Go(ctx, w.run, lifecycle.WithErrorHandler(func(err error) {
		f.logger.Error("watcher terminated", "error", err)
	}))

	return events, nil
}

type fileWatcher struct {
	file      *File
	pattern   string
	watcher   *fsnotify.Watcher
	events    chan core.Event
	debouncer *debouncer
}

// run is the main event loop for the watcher.
func (w *fileWatcher) run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	err := w.loop(ctx)

	// Stop accepting new events and wait for in-flight timers so nothing
	// races the channel close above.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *fileWatcher) loop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.process(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.file.logger.Error("fsnotify error", "error", wErr)
		}
	}
}

// process filters, maps, and debounces a single filesystem event.
func (w *fileWatcher) process(ctx context.Context, event fsnotify.Event) {
	w.file.logger.Debug("event received", "name", event.Name, "op", event.Op.String())

	key := w.file.keyFromFilename(event.Name)
	if key == "" {
		return // temp file or unrelated entry
	}

	if w.pattern != "" && w.pattern != "*" {
		if ok, err := doublestar.Match(w.pattern, key); err != nil || !ok {
			return
		}
	}

	eType := mapEventType(event)
	if eType == "" {
		return
	}

	w.send(ctx, core.Event{
		Type:      eType,
		Key:       key,
		Timestamp: time.Now().Unix(),
	})
}

// send enqueues an event via the debouncer, protecting against channel
// closure during shutdown.
func (w *fileWatcher) send(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (watcher stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Create):
		return core.EventCreate
	case event.Has(fsnotify.Write):
		return core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		return core.EventDelete
	default:
		return ""
	}
}

// ComponentType implements introspection.Component.
func (f *File) ComponentType() string {
	return "file-kv"
}

// State implements introspection.Introspectable.
func (f *File) State() any {
	return map[string]string{"path": f.Path}
}

var _ core.Watchable = (*File)(nil)
