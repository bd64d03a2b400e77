package note

import "time"

// Notebook groups notes under a named collection.
type Notebook struct {
	ID        string
	OwnerID   string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Note is a free-form text note. NotebookID is nil for loose notes.
type Note struct {
	ID         string
	OwnerID    string
	NotebookID *string
	Title      string
	Content    string
	Pinned     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type CreateNotebookInput struct {
	OwnerID string
	Name    string
}

type RenameNotebookInput struct {
	OwnerID string
	ID      string
	Name    string
}

type NotebookOutput struct {
	Notebook Notebook
}

type ListNotebooksOutput struct {
	Notebooks []Notebook
}

type CreateNoteInput struct {
	OwnerID    string
	NotebookID *string
	Title      string
	Content    string
}

type ListNotesInput struct {
	OwnerID string
	// NotebookID narrows the list to one notebook when set.
	NotebookID *string
}

// UpdateNoteInput carries a partial update. Zero-value fields keep the
// existing values; DetachNotebook removes the notebook link regardless
// of NotebookID.
type UpdateNoteInput struct {
	OwnerID        string
	ID             string
	Title          string
	Content        string
	NotebookID     *string
	DetachNotebook bool
}

type NoteOutput struct {
	Note Note
}

type ListNotesOutput struct {
	Notes []Note
}
