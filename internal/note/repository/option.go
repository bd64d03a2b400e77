package repository

// GetOneOptions holds filter parameters for fetching a single record.
type GetOneOptions struct {
	ID      string
	OwnerID string
}

// CreateNotebookOptions holds parameters for inserting a notebook.
type CreateNotebookOptions struct {
	OwnerID string
	Name    string
}

// UpdateNotebookOptions carries the new notebook name.
type UpdateNotebookOptions struct {
	ID      string
	OwnerID string
	Name    string
}

// CreateNoteOptions holds parameters for inserting a note.
type CreateNoteOptions struct {
	OwnerID    string
	NotebookID *string
	Title      string
	Content    string
}

// ListNotesOptions holds filter parameters for listing notes. When
// NotebookID is set only that notebook's notes are returned; pinned
// notes always sort first.
type ListNotesOptions struct {
	OwnerID    string
	NotebookID *string
}

// UpdateNoteOptions carries the full row state for an update; the
// usecase coalesces unchanged fields from the existing note.
type UpdateNoteOptions struct {
	ID         string
	OwnerID    string
	NotebookID *string
	Title      string
	Content    string
	Pinned     bool
}
