package kv

import (
	"sync"
	"time"

	"github.com/jotpad/jotpad/pkg/core"
)

// debouncer coalesces bursts of events per key: each new event within the
// interval resets that key's timer, and only the latest event is emitted
// once the key goes quiet.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	timers   map[string]*time.Timer
	wg       sync.WaitGroup
	stopped  bool
}

func newDebouncer(interval time.Duration) *debouncer {
	return &debouncer{
		interval: interval,
		timers:   make(map[string]*time.Timer),
	}
}

// add schedules emit for the event, replacing any pending emit for the same
// key. Events arriving after stopAndWait are dropped.
func (d *debouncer) add(e core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	if t, ok := d.timers[e.Key]; ok {
		if t.Stop() {
			d.wg.Done()
		}
	}

	d.wg.Add(1)
	d.timers[e.Key] = time.AfterFunc(d.interval, func() {
		defer d.wg.Done()

		d.mu.Lock()
		delete(d.timers, e.Key)
		stopped := d.stopped
		d.mu.Unlock()

		if !stopped {
			emit(e)
		}
	})
}

// stopAndWait stops accepting new events, cancels pending timers, and waits
// (bounded by timeout) for in-flight emits to finish.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	for key, t := range d.timers {
		if t.Stop() {
			d.wg.Done()
		}
		delete(d.timers, key)
	}
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(timeout):
	}
}
