package usecase

import (
	"context"
	"time"

	"dayplanner/internal/habit"
	"dayplanner/internal/model"
	repo "dayplanner/internal/habit/repository"
	"dayplanner/pkg/calmath"
)

// ListForDay returns the unarchived habits due on the given day, paired
// with that day's logs.
func (uc *implUseCase) ListForDay(ctx context.Context, ownerID string, day time.Time) (habit.TodayOutput, error) {
	habits, err := uc.repo.ListHabits(ctx, repo.ListHabitsOptions{OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForDay ListHabits: %v", err)
		return habit.TodayOutput{}, err
	}

	logs, err := uc.repo.ListLogsForDay(ctx, ownerID, calmath.StartOfDay(day))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListForDay ListLogsForDay: %v", err)
		return habit.TodayOutput{}, err
	}
	byHabit := make(map[string]habit.Log, len(logs))
	for _, l := range logs {
		byHabit[l.HabitID] = l
	}

	var entries []habit.Entry
	for _, h := range habits {
		if !habit.ActiveOn(h, day) {
			continue
		}
		entry := habit.Entry{Habit: h}
		if l, ok := byHabit[h.ID]; ok {
			log := l
			entry.Log = &log
		}
		entries = append(entries, entry)
	}

	return habit.TodayOutput{Entries: entries}, nil
}

// ToggleToday upserts today's log. YES_NO flips done; COUNTER adjusts
// the value with a floor of zero and derives done from the per-period
// target.
func (uc *implUseCase) ToggleToday(ctx context.Context, input habit.ToggleTodayInput) (habit.ToggleOutput, error) {
	h, err := uc.repo.GetOneHabit(ctx, repo.GetOneHabitOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleToday GetOneHabit: %v", err)
		return habit.ToggleOutput{}, err
	}
	if h.ID == "" {
		return habit.ToggleOutput{}, habit.ErrHabitNotFound
	}

	today := calmath.StartOfDay(uc.clock.Now())
	current, err := uc.repo.GetLog(ctx, input.OwnerID, h.ID, today)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleToday GetLog: %v", err)
		return habit.ToggleOutput{}, err
	}

	value, done := nextLogState(h, current, input.Delta)

	saved, err := uc.repo.UpsertLog(ctx, repo.UpsertLogOptions{
		OwnerID: input.OwnerID,
		HabitID: h.ID,
		Day:     today,
		Value:   value,
		Done:    done,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleToday UpsertLog: %v", err)
		return habit.ToggleOutput{}, err
	}
	return habit.ToggleOutput{Log: saved}, nil
}

// nextLogState computes the new (value, done) pair for a toggle.
func nextLogState(h habit.Habit, current habit.Log, delta int) (int, bool) {
	if h.Type == model.HabitCounter {
		if delta == 0 {
			delta = 1
		}
		value := current.Value + delta
		if value < 0 {
			value = 0
		}
		return value, value >= h.TargetPerPeriod
	}

	// YES_NO: flip, value mirrors the flag for display.
	done := !current.Done
	value := 0
	if done {
		value = 1
	}
	return value, done
}
