package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/note"
	"dayplanner/internal/note/repository"
)

// CreateNotebook creates a named notebook for the owner.
func (uc *implUseCase) CreateNotebook(ctx context.Context, input note.CreateNotebookInput) (note.NotebookOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return note.NotebookOutput{}, note.ErrNameRequired
	}

	nb, err := uc.repo.CreateNotebook(ctx, repository.CreateNotebookOptions{
		OwnerID: input.OwnerID,
		Name:    name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.CreateNotebook uc.repo.CreateNotebook: %v", err)
		return note.NotebookOutput{}, err
	}

	return note.NotebookOutput{Notebook: nb}, nil
}

// ListNotebooks returns the owner's notebooks.
func (uc *implUseCase) ListNotebooks(ctx context.Context, ownerID string) (note.ListNotebooksOutput, error) {
	notebooks, err := uc.repo.ListNotebooks(ctx, ownerID)
	if err != nil {
		uc.l.Errorf(ctx, "note.ListNotebooks uc.repo.ListNotebooks: %v", err)
		return note.ListNotebooksOutput{}, err
	}
	return note.ListNotebooksOutput{Notebooks: notebooks}, nil
}

// RenameNotebook changes a notebook's name.
func (uc *implUseCase) RenameNotebook(ctx context.Context, input note.RenameNotebookInput) (note.NotebookOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return note.NotebookOutput{}, note.ErrNameRequired
	}

	nb, err := uc.repo.UpdateNotebook(ctx, repository.UpdateNotebookOptions{
		ID:      input.ID,
		OwnerID: input.OwnerID,
		Name:    name,
	})
	if err != nil {
		uc.l.Errorf(ctx, "note.RenameNotebook uc.repo.UpdateNotebook: %v", err)
		return note.NotebookOutput{}, err
	}
	if nb.ID == "" {
		return note.NotebookOutput{}, note.ErrNotebookNotFound
	}

	return note.NotebookOutput{Notebook: nb}, nil
}

// DeleteNotebook removes a notebook. Its notes survive as loose notes,
// so detachment runs before the row is deleted.
func (uc *implUseCase) DeleteNotebook(ctx context.Context, ownerID, id string) error {
	nb, err := uc.repo.GetOneNotebook(ctx, repository.GetOneOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "note.DeleteNotebook uc.repo.GetOneNotebook: %v", err)
		return err
	}
	if nb.ID == "" {
		return note.ErrNotebookNotFound
	}

	if err := uc.repo.DetachNotes(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "note.DeleteNotebook uc.repo.DetachNotes: %v", err)
		return err
	}

	if err := uc.repo.DeleteNotebook(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "note.DeleteNotebook uc.repo.DeleteNotebook: %v", err)
		return err
	}
	return nil
}
