package repository

import (
	"context"

	"dayplanner/internal/note"
)

// Repository is the composed interface for the note domain data store.
type Repository interface {
	NotebookRepository
	NoteRepository
}

// NotebookRepository defines data access for notebooks. Lookups that
// match nothing return a zero-value Notebook with no error.
type NotebookRepository interface {
	CreateNotebook(ctx context.Context, opt CreateNotebookOptions) (note.Notebook, error)
	GetOneNotebook(ctx context.Context, opt GetOneOptions) (note.Notebook, error)
	ListNotebooks(ctx context.Context, ownerID string) ([]note.Notebook, error)
	UpdateNotebook(ctx context.Context, opt UpdateNotebookOptions) (note.Notebook, error)
	DeleteNotebook(ctx context.Context, ownerID, id string) error
}

// NoteRepository defines data access for notes. DetachNotes clears the
// notebook link on every note in a notebook.
type NoteRepository interface {
	CreateNote(ctx context.Context, opt CreateNoteOptions) (note.Note, error)
	GetOneNote(ctx context.Context, opt GetOneOptions) (note.Note, error)
	ListNotes(ctx context.Context, opt ListNotesOptions) ([]note.Note, error)
	UpdateNote(ctx context.Context, opt UpdateNoteOptions) (note.Note, error)
	DetachNotes(ctx context.Context, ownerID, notebookID string) error
	DeleteNote(ctx context.Context, ownerID, id string) error
}
