package repository

import (
	"time"

	"dayplanner/internal/model"
)

// CreateTodoOptions holds parameters for inserting a new todo.
type CreateTodoOptions struct {
	OwnerID    string
	Title      string
	Importance model.Importance
	Status     model.Status
	DueAt      *time.Time
}

// GetOneTodoOptions holds filter parameters for fetching a single todo.
type GetOneTodoOptions struct {
	ID      string
	OwnerID string
}

// ListTodosOptions holds filter parameters for listing and counting
// todos. DueBefore matches only todos that have a due date.
type ListTodosOptions struct {
	OwnerID   string
	Status    model.Status
	OpenOnly  bool
	DueBefore time.Time
	DueFrom   time.Time
	DueTo     time.Time
	Limit     int
	OrderBy   string
}

// UpdateTodoOptions carries the full row state for an update; the usecase
// coalesces unchanged fields from the existing todo.
type UpdateTodoOptions struct {
	ID         string
	OwnerID    string
	Title      string
	Importance model.Importance
	Status     model.Status
	DueAt      *time.Time
}
