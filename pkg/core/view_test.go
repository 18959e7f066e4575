package core_test

import (
	"testing"

	"github.com/jotpad/jotpad/pkg/core"
)

func TestFilterNotes(t *testing.T) {
	notes := []core.Note{
		{ID: "a", Title: "Shopping", Content: "milk and eggs", UpdatedAt: 100},
		{ID: "b", Title: "Work", Content: "quarterly review", UpdatedAt: 200},
		{ID: "c", Title: "", Content: "call the plumber", UpdatedAt: 150},
	}

	t.Run("Empty Query Returns All Sorted By UpdatedAt Descending", func(t *testing.T) {
		got := core.FilterNotes(notes, "")
		if len(got) != 3 {
			t.Fatalf("expected 3 notes, got %d", len(got))
		}
		for i, want := range []string{"b", "c", "a"} {
			if got[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
			}
		}
	})

	t.Run("Query Matches Title Case-Insensitively", func(t *testing.T) {
		got := core.FilterNotes(notes, "shop")
		if len(got) != 1 || got[0].ID != "a" {
			t.Fatalf("expected [a], got %v", got)
		}
	})

	t.Run("Query Matches Content", func(t *testing.T) {
		got := core.FilterNotes(notes, "PLUMBER")
		if len(got) != 1 || got[0].ID != "c" {
			t.Fatalf("expected [c], got %v", got)
		}
	})

	t.Run("Query Is Trimmed", func(t *testing.T) {
		got := core.FilterNotes(notes, "  work  ")
		if len(got) != 1 || got[0].ID != "b" {
			t.Fatalf("expected [b], got %v", got)
		}
	})

	t.Run("No Match Yields Empty", func(t *testing.T) {
		got := core.FilterNotes(notes, "nothing here")
		if len(got) != 0 {
			t.Fatalf("expected no notes, got %v", got)
		}
	})

	t.Run("Filtered Result Preserves Descending Order", func(t *testing.T) {
		got := core.FilterNotes(notes, "l") // milk, quarterly, call/plumber all contain 'l'
		for i := 1; i < len(got); i++ {
			if got[i-1].UpdatedAt < got[i].UpdatedAt {
				t.Errorf("order violated at %d: %d < %d", i, got[i-1].UpdatedAt, got[i].UpdatedAt)
			}
		}
	})

	t.Run("Ties Keep Original Relative Order", func(t *testing.T) {
		tied := []core.Note{
			{ID: "x", UpdatedAt: 100},
			{ID: "y", UpdatedAt: 100},
			{ID: "z", UpdatedAt: 100},
		}
		got := core.FilterNotes(tied, "")
		for i, want := range []string{"x", "y", "z"} {
			if got[i].ID != want {
				t.Errorf("position %d: expected %s, got %s", i, want, got[i].ID)
			}
		}
	})

	t.Run("Input Is Not Mutated", func(t *testing.T) {
		before := notes[0].ID
		_ = core.FilterNotes(notes, "")
		if notes[0].ID != before {
			t.Error("input slice was reordered")
		}
	})
}

func TestSelectedNote(t *testing.T) {
	notes := []core.Note{
		{ID: "a", Title: "Shopping"},
		{ID: "b", Title: "Work"},
	}

	t.Run("Resolves Existing Id", func(t *testing.T) {
		n, ok := core.SelectedNote(notes, "b")
		if !ok || n.Title != "Work" {
			t.Fatalf("expected Work, got %v (ok=%v)", n, ok)
		}
	})

	t.Run("Empty Id Yields None", func(t *testing.T) {
		if _, ok := core.SelectedNote(notes, ""); ok {
			t.Error("expected no selection")
		}
	})

	t.Run("Dangling Id Yields None", func(t *testing.T) {
		if _, ok := core.SelectedNote(notes, "gone"); ok {
			t.Error("expected no selection for dangling id")
		}
	})
}

func TestDisplayTitle(t *testing.T) {
	if got := (core.Note{Title: ""}).DisplayTitle(); got != "Untitled" {
		t.Errorf("expected Untitled, got %q", got)
	}
	if got := (core.Note{Title: "Groceries"}).DisplayTitle(); got != "Groceries" {
		t.Errorf("expected Groceries, got %q", got)
	}
}
