package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/note"
	"dayplanner/internal/note/repository"
)

// CreateNote creates a note, optionally filed under a notebook the
// owner must already have.
func (uc *implUseCase) CreateNote(ctx context.Context, input note.CreateNoteInput) (note.NoteOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return note.NoteOutput{}, note.ErrTitleRequired
	}

	if input.NotebookID != nil {
		nb, err := uc.repo.GetOneNotebook(ctx, repository.GetOneOptions{
			ID:      *input.NotebookID,
			OwnerID: input.OwnerID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "note.CreateNote uc.repo.GetOneNotebook: %v", err)
			return note.NoteOutput{}, err
		}
		if nb.ID == "" {
			return note.NoteOutput{}, note.ErrNotebookNotFound
		}
	}

	n, err := uc.repo.CreateNote(ctx, repository.CreateNoteOptions{
		OwnerID:    input.OwnerID,
		NotebookID: input.NotebookID,
		Title:      title,
		Content:    input.Content,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.CreateNote uc.repo.CreateNote: %v", err)
		return note.NoteOutput{}, err
	}

	return note.NoteOutput{Note: n}, nil
}

// ListNotes returns the owner's notes, optionally scoped to a notebook.
func (uc *implUseCase) ListNotes(ctx context.Context, input note.ListNotesInput) (note.ListNotesOutput, error) {
	notes, err := uc.repo.ListNotes(ctx, repository.ListNotesOptions{
		OwnerID:    input.OwnerID,
		NotebookID: input.NotebookID,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.ListNotes uc.repo.ListNotes: %v", err)
		return note.ListNotesOutput{}, err
	}
	return note.ListNotesOutput{Notes: notes}, nil
}

// UpdateNote applies a partial update to a note.
func (uc *implUseCase) UpdateNote(ctx context.Context, input note.UpdateNoteInput) (note.NoteOutput, error) {
	existing, err := uc.repo.GetOneNote(ctx, repository.GetOneOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "note.UpdateNote uc.repo.GetOneNote: %v", err)
		return note.NoteOutput{}, err
	}
	if existing.ID == "" {
		return note.NoteOutput{}, note.ErrNoteNotFound
	}

	title := existing.Title
	if strings.TrimSpace(input.Title) != "" {
		title = strings.TrimSpace(input.Title)
	}
	content := existing.Content
	if input.Content != "" {
		content = input.Content
	}

	notebookID := existing.NotebookID
	switch {
	case input.DetachNotebook:
		notebookID = nil
	case input.NotebookID != nil:
		nb, err := uc.repo.GetOneNotebook(ctx, repository.GetOneOptions{
			ID:      *input.NotebookID,
			OwnerID: input.OwnerID,
		})
		if err != nil {
			uc.l.Errorf(ctx, "note.UpdateNote uc.repo.GetOneNotebook: %v", err)
			return note.NoteOutput{}, err
		}
		if nb.ID == "" {
			return note.NoteOutput{}, note.ErrNotebookNotFound
		}
		notebookID = input.NotebookID
	}

	updated, err := uc.repo.UpdateNote(ctx, repository.UpdateNoteOptions{
		ID:         existing.ID,
		OwnerID:    input.OwnerID,
		NotebookID: notebookID,
		Title:      title,
		Content:    content,
		Pinned:     existing.Pinned,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.UpdateNote uc.repo.UpdateNote: %v", err)
		return note.NoteOutput{}, err
	}

	return note.NoteOutput{Note: updated}, nil
}

// TogglePin flips a note's pinned flag.
func (uc *implUseCase) TogglePin(ctx context.Context, ownerID, id string) (note.NoteOutput, error) {
	existing, err := uc.repo.GetOneNote(ctx, repository.GetOneOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "note.TogglePin uc.repo.GetOneNote: %v", err)
		return note.NoteOutput{}, err
	}
	if existing.ID == "" {
		return note.NoteOutput{}, note.ErrNoteNotFound
	}

	updated, err := uc.repo.UpdateNote(ctx, repository.UpdateNoteOptions{
		ID:         existing.ID,
		OwnerID:    ownerID,
		NotebookID: existing.NotebookID,
		Title:      existing.Title,
		Content:    existing.Content,
		Pinned:     !existing.Pinned,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.TogglePin uc.repo.UpdateNote: %v", err)
		return note.NoteOutput{}, err
	}

	return note.NoteOutput{Note: updated}, nil
}

// DeleteNote removes a note.
func (uc *implUseCase) DeleteNote(ctx context.Context, ownerID, id string) error {
	existing, err := uc.repo.GetOneNote(ctx, repository.GetOneOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "note.DeleteNote uc.repo.GetOneNote: %v", err)
		return err
	}
	if existing.ID == "" {
		return note.ErrNoteNotFound
	}

	if err := uc.repo.DeleteNote(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "note.DeleteNote uc.repo.DeleteNote: %v", err)
		return err
	}
	return nil
}
