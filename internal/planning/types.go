package planning

import (
	"time"

	"dayplanner/internal/model"
)

// MinDuration is the floor applied to every occurrence: a computed or
// supplied span shorter than this is clamped up to exactly one hour. The
// recurrence expander and the reschedule resolver share this single
// invariant.
const MinDuration = time.Hour

// Entry is a planner block. SourceTodoID is non-empty iff the entry
// mirrors a todo's due date; at most one entry exists per source todo.
type Entry struct {
	ID           string
	OwnerID      string
	Title        string
	Description  string
	StartsAt     time.Time
	EndsAt       time.Time
	Importance   model.Importance
	Completed    bool
	SourceTodoID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Occurrence is one concrete start/end pair. EndsAt is always after
// StartsAt by at least MinDuration once normalized.
type Occurrence struct {
	StartsAt time.Time
	EndsAt   time.Time
}

// Duration returns the raw span of the occurrence.
func (o Occurrence) Duration() time.Duration {
	return o.EndsAt.Sub(o.StartsAt)
}

// RecurrenceKind is the closed NONE|DAILY|WEEKLY expansion policy.
type RecurrenceKind string

const (
	RecurrenceNone   RecurrenceKind = "NONE"
	RecurrenceDaily  RecurrenceKind = "DAILY"
	RecurrenceWeekly RecurrenceKind = "WEEKLY"
)

// RecurrencePolicy describes how a base occurrence expands into persisted
// entries. It is consumed once at creation time and never stored.
type RecurrencePolicy struct {
	Kind RecurrenceKind
	Base Occurrence
}

// DropTargetKind tags the two drop-target shapes of the week view.
type DropTargetKind string

const (
	// DropTimeSlot is a concrete (day, hour) cell of the week grid.
	DropTimeSlot DropTargetKind = "TIME_SLOT"
	// DropDayOnly is a day header: the entry changes day but keeps its
	// time of day.
	DropDayOnly DropTargetKind = "DAY_ONLY"
)

// DropTarget is where a drag gesture ended, relative to the displayed
// week. Hour is only meaningful for DropTimeSlot.
type DropTarget struct {
	Kind     DropTargetKind
	DayIndex int
	Hour     int
}

// TodoSnapshot carries the todo fields the mirror synchronizer needs.
type TodoSnapshot struct {
	ID         string
	OwnerID    string
	Title      string
	Importance model.Importance
	Status     model.Status
	DueAt      *time.Time
}

// --- UseCase inputs ---

type CreateInput struct {
	OwnerID     string
	Title       string
	Description string
	Importance  model.Importance
	Recurrence  RecurrencePolicy
}

type ListInput struct {
	OwnerID string
	From    time.Time
	To      time.Time
}

type UpdateDetailsInput struct {
	OwnerID     string
	ID          string
	Title       string
	Description string
	Importance  model.Importance
}

type RescheduleInput struct {
	OwnerID   string
	ID        string
	WeekStart time.Time
	Target    DropTarget
}

type SetTimesInput struct {
	OwnerID  string
	ID       string
	StartsAt time.Time
	EndsAt   time.Time
}

// --- UseCase outputs ---

type CreateOutput struct {
	Entries []Entry
}

type ListOutput struct {
	Entries []Entry
}

type DetailOutput struct {
	Entry Entry
}

type UpdateOutput struct {
	Entry Entry
}
