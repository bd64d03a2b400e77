package todo

import (
	"time"

	"dayplanner/internal/model"
	"dayplanner/internal/planning"
)

// Todo is a task on the board. DueAt is optional; a todo with a due date
// owns a mirrored planning entry maintained by the synchronizer.
type Todo struct {
	ID         string
	OwnerID    string
	Title      string
	Importance model.Importance
	Status     model.Status
	DueAt      *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Snapshot converts the todo into the view the planning synchronizer
// consumes.
func (t Todo) Snapshot() planning.TodoSnapshot {
	return planning.TodoSnapshot{
		ID:         t.ID,
		OwnerID:    t.OwnerID,
		Title:      t.Title,
		Importance: t.Importance,
		Status:     t.Status,
		DueAt:      t.DueAt,
	}
}

// --- UseCase inputs ---

type CreateInput struct {
	OwnerID    string
	Title      string
	Importance model.Importance
	DueAt      *time.Time
}

type ListInput struct {
	OwnerID string
	Status  model.Status
}

// UpdateInput is a partial update. A nil DueAt leaves the due date
// unchanged unless ClearDue is set, which removes it.
type UpdateInput struct {
	OwnerID    string
	ID         string
	Title      string
	Importance model.Importance
	Status     model.Status
	DueAt      *time.Time
	ClearDue   bool
}

type MoveImportanceInput struct {
	OwnerID    string
	ID         string
	Importance model.Importance
}

// --- UseCase outputs ---

type CreateOutput struct {
	Todo Todo
}

type ListOutput struct {
	Todos []Todo
}

type DetailOutput struct {
	Todo Todo
}

type UpdateOutput struct {
	Todo Todo
}
