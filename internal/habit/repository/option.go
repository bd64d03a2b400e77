package repository

import (
	"time"

	"dayplanner/internal/model"
)

// CreateHabitOptions holds parameters for inserting a new habit.
type CreateHabitOptions struct {
	OwnerID         string
	Title           string
	Description     string
	Frequency       model.Frequency
	DaysOfWeek      []int
	Type            model.HabitType
	TargetPerPeriod int
}

// GetOneHabitOptions holds filter parameters for fetching a single habit.
type GetOneHabitOptions struct {
	ID      string
	OwnerID string
}

// ListHabitsOptions holds filter parameters for listing habits.
type ListHabitsOptions struct {
	OwnerID         string
	IncludeArchived bool
}

// UpdateHabitOptions carries the full row state for an update.
type UpdateHabitOptions struct {
	ID              string
	OwnerID         string
	Title           string
	Description     string
	Frequency       model.Frequency
	DaysOfWeek      []int
	TargetPerPeriod int
	IsArchived      bool
}

// UpsertLogOptions writes one day's progress on a habit.
type UpsertLogOptions struct {
	OwnerID string
	HabitID string
	Day     time.Time
	Value   int
	Done    bool
}
