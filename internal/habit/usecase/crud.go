package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/habit"
	"dayplanner/internal/model"
	repo "dayplanner/internal/habit/repository"
)

func validWeekdays(days []int) bool {
	for _, d := range days {
		if d < 0 || d > 6 {
			return false
		}
	}
	return true
}

// Create inserts a new habit. COUNTER habits default to a target of 1.
func (uc *implUseCase) Create(ctx context.Context, input habit.CreateInput) (habit.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return habit.CreateOutput{}, habit.ErrTitleRequired
	}
	if !input.Frequency.Valid() {
		return habit.CreateOutput{}, habit.ErrInvalidFrequency
	}
	if !validWeekdays(input.DaysOfWeek) {
		return habit.CreateOutput{}, habit.ErrInvalidWeekdays
	}

	habitType := input.Type
	if habitType != model.HabitCounter {
		habitType = model.HabitYesNo
	}
	target := input.TargetPerPeriod
	if target < 1 {
		target = 1
	}

	created, err := uc.repo.CreateHabit(ctx, repo.CreateHabitOptions{
		OwnerID:         input.OwnerID,
		Title:           title,
		Description:     input.Description,
		Frequency:       input.Frequency,
		DaysOfWeek:      input.DaysOfWeek,
		Type:            habitType,
		TargetPerPeriod: target,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateHabit: %v", err)
		return habit.CreateOutput{}, err
	}
	return habit.CreateOutput{Habit: created}, nil
}

// List returns the owner's habits, archived ones only on request.
func (uc *implUseCase) List(ctx context.Context, ownerID string, includeArchived bool) (habit.ListOutput, error) {
	habits, err := uc.repo.ListHabits(ctx, repo.ListHabitsOptions{
		OwnerID:         ownerID,
		IncludeArchived: includeArchived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListHabits: %v", err)
		return habit.ListOutput{}, err
	}
	return habit.ListOutput{Habits: habits}, nil
}

// Detail retrieves a single habit by ID, scoped to the owner.
func (uc *implUseCase) Detail(ctx context.Context, ownerID, id string) (habit.DetailOutput, error) {
	h, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneHabit: %v", err)
		return habit.DetailOutput{}, err
	}
	if h.ID == "" {
		return habit.DetailOutput{}, habit.ErrHabitNotFound
	}
	return habit.DetailOutput{Habit: h}, nil
}

// Update edits the habit definition in place. Changing frequency or
// weekdays affects which future days the habit is due; past logs keep
// their history.
func (uc *implUseCase) Update(ctx context.Context, input habit.UpdateInput) (habit.UpdateOutput, error) {
	existing, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneHabit: %v", err)
		return habit.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return habit.UpdateOutput{}, habit.ErrHabitNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = existing.Title
	}

	frequency := input.Frequency
	if !frequency.Valid() {
		frequency = existing.Frequency
	}

	days := input.DaysOfWeek
	if days == nil {
		days = existing.DaysOfWeek
	} else if !validWeekdays(days) {
		return habit.UpdateOutput{}, habit.ErrInvalidWeekdays
	}

	target := input.TargetPerPeriod
	if target < 1 {
		target = existing.TargetPerPeriod
	}

	updated, err := uc.repo.UpdateHabit(ctx, repo.UpdateHabitOptions{
		ID:              existing.ID,
		OwnerID:         existing.OwnerID,
		Title:           title,
		Description:     input.Description,
		Frequency:       frequency,
		DaysOfWeek:      days,
		TargetPerPeriod: target,
		IsArchived:      existing.IsArchived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateHabit: %v", err)
		return habit.UpdateOutput{}, err
	}
	return habit.UpdateOutput{Habit: updated}, nil
}

// Archive flips the archived flag, hiding or restoring the habit.
func (uc *implUseCase) Archive(ctx context.Context, ownerID, id string, archived bool) (habit.UpdateOutput, error) {
	existing, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Archive GetOneHabit: %v", err)
		return habit.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return habit.UpdateOutput{}, habit.ErrHabitNotFound
	}

	updated, err := uc.repo.UpdateHabit(ctx, repo.UpdateHabitOptions{
		ID:              existing.ID,
		OwnerID:         existing.OwnerID,
		Title:           existing.Title,
		Description:     existing.Description,
		Frequency:       existing.Frequency,
		DaysOfWeek:      existing.DaysOfWeek,
		TargetPerPeriod: existing.TargetPerPeriod,
		IsArchived:      archived,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Archive UpdateHabit: %v", err)
		return habit.UpdateOutput{}, err
	}
	return habit.UpdateOutput{Habit: updated}, nil
}

// Delete removes the habit and its logs, logs first so a partial failure
// cannot orphan them.
func (uc *implUseCase) Delete(ctx context.Context, ownerID, id string) error {
	existing, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Delete GetOneHabit: %v", err)
		return err
	}
	if existing.ID == "" {
		return habit.ErrHabitNotFound
	}

	if err := uc.repo.DeleteLogsForHabit(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteLogsForHabit: %v", err)
		return err
	}
	if err := uc.repo.DeleteHabit(ctx, ownerID, id); err != nil {
		uc.l.Errorf(ctx, "uc.Delete DeleteHabit: %v", err)
		return err
	}
	return nil
}
