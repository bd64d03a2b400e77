package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/model"
	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
	"dayplanner/pkg/gcalendar"
)

// Create expands the recurrence policy and persists the resulting
// occurrences as one atomic batch. User-authored entries never carry a
// source todo id.
func (uc *implUseCase) Create(ctx context.Context, input planning.CreateInput) (planning.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return planning.CreateOutput{}, planning.ErrTitleRequired
	}

	importance := input.Importance
	if !importance.Valid() {
		importance = model.ImportanceMedium
	}

	occurrences, err := input.Recurrence.Expand()
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create Expand: %v", err)
		return planning.CreateOutput{}, err
	}

	opts := make([]repo.CreateEntryOptions, 0, len(occurrences))
	for _, occ := range occurrences {
		opts = append(opts, repo.CreateEntryOptions{
			OwnerID:     input.OwnerID,
			Title:       title,
			Description: input.Description,
			StartsAt:    occ.StartsAt,
			EndsAt:      occ.EndsAt,
			Importance:  importance,
			Completed:   false,
		})
	}

	entries, err := uc.repo.CreateEntriesBatch(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateEntriesBatch: %v", err)
		return planning.CreateOutput{}, err
	}

	uc.exportEntries(ctx, entries)

	return planning.CreateOutput{Entries: entries}, nil
}

// exportEntries pushes created entries to Google Calendar when export is
// configured. Failures are logged and never fail the create.
func (uc *implUseCase) exportEntries(ctx context.Context, entries []planning.Entry) {
	if uc.cal == nil {
		return
	}
	for _, entry := range entries {
		_, err := uc.cal.CreateEvent(ctx, gcalendar.CreateEventRequest{
			CalendarID:  uc.calendarID,
			Summary:     entry.Title,
			Description: entry.Description,
			StartTime:   entry.StartsAt,
			EndTime:     entry.EndsAt,
		})
		if err != nil {
			uc.l.Warnf(ctx, "uc.Create calendar export %s: %v", entry.ID, err)
		}
	}
}
