package core

// DefaultTitle is assigned to freshly created notes.
const DefaultTitle = "Untitled note"

// Note is the central entity of the domain: a user-authored title/content
// pair with an update timestamp. The JSON shape is the persisted layout.
type Note struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	UpdatedAt int64  `json:"updatedAt"` // epoch milliseconds
}

// DisplayTitle returns the title to render, falling back to "Untitled"
// when the user left it empty.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return "Untitled"
	}
	return n.Title
}

// Patch describes a partial update to a note. Nil fields are left untouched.
type Patch struct {
	Title   *string
	Content *string
}

// IsZero reports whether the patch carries no changes.
func (p Patch) IsZero() bool {
	return p.Title == nil && p.Content == nil
}
