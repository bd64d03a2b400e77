package usecase

import (
	"context"

	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
)

// Detail retrieves a single entry by ID, scoped to the owner. An unknown
// id and an id owned by someone else both return ErrEntryNotFound.
func (uc *implUseCase) Detail(ctx context.Context, ownerID, id string) (planning.DetailOutput, error) {
	entry, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneEntry: %v", err)
		return planning.DetailOutput{}, err
	}
	if entry.ID == "" {
		return planning.DetailOutput{}, planning.ErrEntryNotFound
	}
	return planning.DetailOutput{Entry: entry}, nil
}

// UpdateDetails edits title, description, and importance in place. Times
// and completion state are carried over from the existing row.
func (uc *implUseCase) UpdateDetails(ctx context.Context, input planning.UpdateDetailsInput) (planning.UpdateOutput, error) {
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDetails GetOneEntry: %v", err)
		return planning.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return planning.UpdateOutput{}, planning.ErrEntryNotFound
	}

	importance := input.Importance
	if !importance.Valid() {
		importance = existing.Importance
	}

	entry, err := uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
		ID:          existing.ID,
		OwnerID:     existing.OwnerID,
		Title:       uc.coalesce(input.Title, existing.Title),
		Description: input.Description,
		StartsAt:    existing.StartsAt,
		EndsAt:      existing.EndsAt,
		Importance:  importance,
		Completed:   existing.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.UpdateDetails UpdateEntry: %v", err)
		return planning.UpdateOutput{}, err
	}
	return planning.UpdateOutput{Entry: entry}, nil
}

// Delete removes an entry by ID. Returns ErrEntryNotFound when the entry
// does not exist for this owner.
func (uc *implUseCase) Delete(ctx context.Context, ownerID, id string) error {
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneEntry: %v", err)
		return err
	}
	if existing.ID == "" {
		return planning.ErrEntryNotFound
	}
	if err := uc.repo.DeleteEntry(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteEntry: %v", err)
		return err
	}
	return nil
}

// coalesce returns the first non-empty string, used for partial updates.
func (uc *implUseCase) coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
