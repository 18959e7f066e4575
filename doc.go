// Package jotpad is the Composition Root for the jotpad note core.
//
// It connects the domain layer (notes store, derived view model, debounced
// editor session) with the persistence adapter (a synchronous local
// key-value store holding the full collection as one JSON blob).
//
// Philosophy:
//
// jotpad is a single-user notes engine for frontends. The core is a plain
// state-management module: a flat note collection with derived
// filtering/sorting, persisted in full on every mutation. There is no
// server, no sync, no schema migration — only fail-soft local storage.
//
// Features:
//
//   - **Notes Store**: single-writer collection with selection and query state.
//   - **Derived View Model**: pure FilterNotes/SelectedNote over state snapshots.
//   - **Editor Session**: debounced-commit buffer with cancel-and-reschedule timer.
//   - **Default Adapter (file KV)**: atomic per-key JSON files, fail-soft load.
//   - **Watchable**: fsnotify-backed change events for externally edited state.
//
// Usage:
//
//	// Open the store in a data directory
//	store, err := jotpad.New(ctx, "~/.jotpad",
//		jotpad.WithLogger(logger),
//	)
//
//	// Create and edit a note
//	id := store.Create(ctx)
//	session := jotpad.NewSession(store, "")
//	session.Bind(id)
//	session.SetTitle("Shopping")
package jotpad
