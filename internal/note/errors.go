package note

import "errors"

var (
	ErrNotebookNotFound = errors.New("notebook not found")
	ErrNoteNotFound     = errors.New("note not found")
	ErrNameRequired     = errors.New("notebook name is required")
	ErrTitleRequired    = errors.New("note title is required")
)
