package habit

import (
	"time"

	"dayplanner/internal/model"
)

// Habit is a recurring practice. The engine never mutates a habit; the
// activity resolver reads it to decide which days it is due.
type Habit struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	Frequency   model.Frequency
	// DaysOfWeek holds weekday numbers 0 (Sunday) through 6, only
	// meaningful for WEEKLY habits. Empty means never active.
	DaysOfWeek      []int
	Type            model.HabitType
	TargetPerPeriod int
	IsArchived      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Log is one day's progress on a habit. Day is normalized to midnight;
// there is at most one log per habit per day.
type Log struct {
	ID        string
	HabitID   string
	OwnerID   string
	Day       time.Time
	Value     int
	Done      bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Entry pairs a habit with its log for a given day (nil when untouched).
type Entry struct {
	Habit Habit
	Log   *Log
}

// --- UseCase inputs ---

type CreateInput struct {
	OwnerID         string
	Title           string
	Description     string
	Frequency       model.Frequency
	DaysOfWeek      []int
	Type            model.HabitType
	TargetPerPeriod int
}

type UpdateInput struct {
	OwnerID         string
	ID              string
	Title           string
	Description     string
	Frequency       model.Frequency
	DaysOfWeek      []int
	TargetPerPeriod int
}

type ToggleTodayInput struct {
	OwnerID string
	ID      string
	// Delta adjusts a COUNTER habit's value (+1 when zero). YES_NO habits
	// ignore it and flip done.
	Delta int
}

// --- UseCase outputs ---

type CreateOutput struct {
	Habit Habit
}

type ListOutput struct {
	Habits []Habit
}

type DetailOutput struct {
	Habit Habit
}

type UpdateOutput struct {
	Habit Habit
}

type TodayOutput struct {
	Entries []Entry
}

type ToggleOutput struct {
	Log Log
}
