package repository

import (
	"time"

	"dayplanner/internal/model"
)

// CreateEntryOptions holds parameters for inserting a new planning entry.
type CreateEntryOptions struct {
	OwnerID      string
	Title        string
	Description  string
	StartsAt     time.Time
	EndsAt       time.Time
	Importance   model.Importance
	Completed    bool
	SourceTodoID string
}

// GetOneEntryOptions holds filter parameters for fetching a single entry.
// All non-empty fields are applied as AND conditions.
type GetOneEntryOptions struct {
	ID           string
	OwnerID      string
	SourceTodoID string
}

// ListEntriesOptions holds filter parameters for listing entries.
// From/To bound StartsAt when non-zero.
type ListEntriesOptions struct {
	OwnerID       string
	From          time.Time
	To            time.Time
	CompletedOnly bool
	OpenOnly      bool
	Limit         int
	OrderBy       string
}

// UpdateEntryOptions carries the full row state for an update; the
// usecase coalesces unchanged fields from the existing entry.
type UpdateEntryOptions struct {
	ID          string
	OwnerID     string
	Title       string
	Description string
	StartsAt    time.Time
	EndsAt      time.Time
	Importance  model.Importance
	Completed   bool
}
