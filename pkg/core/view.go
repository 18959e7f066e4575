package core

import (
	"sort"
	"strings"
)

// FilterNotes computes the derived note list for a query string.
//
// The query is trimmed and case-folded; a non-empty query retains only notes
// whose title or content contains it as a case-insensitive substring. The
// result is always sorted by UpdatedAt descending, ties keeping their
// original relative order. The input slice is never mutated.
func FilterNotes(notes []Note, query string) []Note {
	q := strings.ToLower(strings.TrimSpace(query))

	out := make([]Note, 0, len(notes))
	for _, n := range notes {
		if q == "" ||
			strings.Contains(strings.ToLower(n.Title), q) ||
			strings.Contains(strings.ToLower(n.Content), q) {
			out = append(out, n)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].UpdatedAt > out[j].UpdatedAt
	})
	return out
}

// SelectedNote resolves a selection id against the collection.
// A dangling or empty id yields no note.
func SelectedNote(notes []Note, id string) (Note, bool) {
	if id == "" {
		return Note{}, false
	}
	for _, n := range notes {
		if n.ID == id {
			return n, true
		}
	}
	return Note{}, false
}
