package note

import "context"

// UseCase defines the note domain's business operations. Deleting a
// notebook detaches its notes rather than deleting them.
type UseCase interface {
	CreateNotebook(ctx context.Context, input CreateNotebookInput) (NotebookOutput, error)
	ListNotebooks(ctx context.Context, ownerID string) (ListNotebooksOutput, error)
	RenameNotebook(ctx context.Context, input RenameNotebookInput) (NotebookOutput, error)
	DeleteNotebook(ctx context.Context, ownerID, id string) error

	CreateNote(ctx context.Context, input CreateNoteInput) (NoteOutput, error)
	ListNotes(ctx context.Context, input ListNotesInput) (ListNotesOutput, error)
	UpdateNote(ctx context.Context, input UpdateNoteInput) (NoteOutput, error)
	TogglePin(ctx context.Context, ownerID, id string) (NoteOutput, error)
	DeleteNote(ctx context.Context, ownerID, id string) error
}
