package usecase

import (
	"context"

	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
)

// List returns the owner's entries whose start falls in [From, To),
// ordered by start time. Zero bounds are open.
func (uc *implUseCase) List(ctx context.Context, input planning.ListInput) (planning.ListOutput, error) {
	entries, err := uc.repo.ListEntries(ctx, repo.ListEntriesOptions{
		OwnerID: input.OwnerID,
		From:    input.From,
		To:      input.To,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListEntries: %v", err)
		return planning.ListOutput{}, err
	}

	return planning.ListOutput{Entries: entries}, nil
}
