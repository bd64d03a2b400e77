package usecase

import (
	"context"

	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
)

// Reschedule applies a drag-and-drop move. The entry's duration is
// preserved; only its start (and, for time-slot drops, the hour) changes.
// Moving a todo-derived mirror is allowed and lets it drift from the
// todo's due date; the next full sync restores the mirror invariant.
func (uc *implUseCase) Reschedule(ctx context.Context, input planning.RescheduleInput) (planning.UpdateOutput, error) {
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule GetOneEntry: %v", err)
		return planning.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return planning.UpdateOutput{}, planning.ErrEntryNotFound
	}

	moved, err := planning.ResolveDrop(input.WeekStart, input.Target, planning.Occurrence{
		StartsAt: existing.StartsAt,
		EndsAt:   existing.EndsAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Reschedule ResolveDrop: %v", err)
		return planning.UpdateOutput{}, err
	}

	return uc.persistTimes(ctx, existing, moved)
}

// SetTimes applies a direct time edit. An end at or before the start (or
// closer than the one-hour floor) is normalized to start + 1h.
func (uc *implUseCase) SetTimes(ctx context.Context, input planning.SetTimesInput) (planning.UpdateOutput, error) {
	existing, err := uc.repo.GetOneEntry(ctx, repo.GetOneEntryOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetTimes GetOneEntry: %v", err)
		return planning.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return planning.UpdateOutput{}, planning.ErrEntryNotFound
	}

	occ := planning.Occurrence{StartsAt: input.StartsAt, EndsAt: input.EndsAt}.Normalized()
	return uc.persistTimes(ctx, existing, occ)
}

// persistTimes writes new bounds on an entry, leaving every other field
// as it was.
func (uc *implUseCase) persistTimes(ctx context.Context, existing planning.Entry, occ planning.Occurrence) (planning.UpdateOutput, error) {
	entry, err := uc.repo.UpdateEntry(ctx, repo.UpdateEntryOptions{
		ID:          existing.ID,
		OwnerID:     existing.OwnerID,
		Title:       existing.Title,
		Description: existing.Description,
		StartsAt:    occ.StartsAt,
		EndsAt:      occ.EndsAt,
		Importance:  existing.Importance,
		Completed:   existing.Completed,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.persistTimes UpdateEntry: %v", err)
		return planning.UpdateOutput{}, err
	}
	return planning.UpdateOutput{Entry: entry}, nil
}
