package kv

import (
	"bytes"
	"context"
	"testing"

	"github.com/jotpad/jotpad/pkg/core"
)

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("Load Missing Blob Yields Empty Collection", func(t *testing.T) {
		s := NewStorage(NewMemory())
		notes, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(notes) != 0 {
			t.Errorf("expected empty collection, got %d", len(notes))
		}
	})

	t.Run("Load Malformed Blob Fails", func(t *testing.T) {
		m := NewMemory()
		_ = m.Set(CollectionKey, []byte("{not json"))
		s := NewStorage(m)
		if _, err := s.Load(ctx); err == nil {
			t.Fatal("expected error for malformed blob")
		}
	})

	t.Run("Save Then Load Round-Trips", func(t *testing.T) {
		s := NewStorage(NewMemory())
		in := []core.Note{
			{ID: "a", Title: "Shopping", Content: "milk", UpdatedAt: 100},
			{ID: "b", Title: "", Content: "", UpdatedAt: 200},
		}
		if err := s.Save(ctx, in); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		out, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(out) != 2 || out[0] != in[0] || out[1] != in[1] {
			t.Errorf("round-trip mismatch: %v", out)
		}
	})

	t.Run("Serialization Is Idempotent", func(t *testing.T) {
		// save(load(x)) must be byte-for-byte identical to x for any
		// previously saved collection.
		m := NewMemory()
		s := NewStorage(m)
		_ = s.Save(ctx, []core.Note{{ID: "a", Title: "Shopping", UpdatedAt: 100}})

		first, _ := m.Get(CollectionKey)
		loaded, err := s.Load(ctx)
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if err := s.Save(ctx, loaded); err != nil {
			t.Fatalf("re-Save failed: %v", err)
		}
		second, _ := m.Get(CollectionKey)

		if !bytes.Equal(first, second) {
			t.Errorf("reserialization drifted:\n%s\n%s", first, second)
		}
	})

	t.Run("Nil Collection Persists As Empty Array", func(t *testing.T) {
		m := NewMemory()
		s := NewStorage(m)
		if err := s.Save(ctx, nil); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		data, _ := m.Get(CollectionKey)
		if string(data) != "[]" {
			t.Errorf("expected [], got %s", data)
		}
	})

	t.Run("Custom Key", func(t *testing.T) {
		m := NewMemory()
		s := NewStorage(m, WithKey("custom.key"))
		_ = s.Save(ctx, nil)
		if _, err := m.Get("custom.key"); err != nil {
			t.Errorf("blob not stored under custom key: %v", err)
		}
		if s.Key() != "custom.key" {
			t.Errorf("Key() = %q", s.Key())
		}
	})

	t.Run("Watch Unsupported On Memory", func(t *testing.T) {
		s := NewStorage(NewMemory())
		if _, err := s.Watch(ctx, "*"); err != core.ErrNotWatchable {
			t.Fatalf("expected ErrNotWatchable, got %v", err)
		}
	})
}

func TestStorageWithStore(t *testing.T) {
	// End-to-end through the core store: mutations survive a reopen.
	ctx := context.Background()
	m := NewMemory()

	store := core.NewStore(ctx, NewStorage(m))
	id := store.Create(ctx)
	title := "persisted"
	store.Update(ctx, id, core.Patch{Title: &title})

	reopened := core.NewStore(ctx, NewStorage(m))
	n, ok := reopened.Get(id)
	if !ok {
		t.Fatal("note did not survive reopen")
	}
	if n.Title != "persisted" {
		t.Errorf("expected title persisted, got %q", n.Title)
	}
}
