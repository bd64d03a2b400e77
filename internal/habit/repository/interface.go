package repository

import (
	"context"
	"time"

	"dayplanner/internal/habit"
)

// Repository is the composed interface for the habit domain data store.
type Repository interface {
	HabitRepository
	LogRepository
}

// HabitRepository defines data access for habits. Lookups that match
// nothing return a zero-value Habit with no error.
type HabitRepository interface {
	CreateHabit(ctx context.Context, opt CreateHabitOptions) (habit.Habit, error)
	GetOneHabit(ctx context.Context, opt GetOneHabitOptions) (habit.Habit, error)
	ListHabits(ctx context.Context, opt ListHabitsOptions) ([]habit.Habit, error)
	UpdateHabit(ctx context.Context, opt UpdateHabitOptions) (habit.Habit, error)
	DeleteHabit(ctx context.Context, ownerID, id string) error
}

// LogRepository defines data access for habit logs. Day values are
// normalized to midnight before they reach this layer.
type LogRepository interface {
	// GetLog returns the log for (habit, day), zero value when none.
	GetLog(ctx context.Context, ownerID, habitID string, day time.Time) (habit.Log, error)
	// ListLogsForDay returns every log of the owner on the given day.
	ListLogsForDay(ctx context.Context, ownerID string, day time.Time) ([]habit.Log, error)
	// UpsertLog writes the day's value and done flag, inserting on first
	// touch. The (habit, day) pair is unique.
	UpsertLog(ctx context.Context, opt UpsertLogOptions) (habit.Log, error)
	// DeleteLogsForHabit removes all logs of a habit, used on habit delete.
	DeleteLogsForHabit(ctx context.Context, ownerID, habitID string) error
}
