package planning

import "context"

// UseCase is the planner surface consumed by the HTTP delivery layer.
// Ownership of the operating user is a precondition: callers resolve and
// verify identity before any method runs.
type UseCase interface {
	// Create expands the recurrence policy and persists one entry per
	// occurrence. The batch is atomic: either all occurrences land or none.
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, ownerID, id string) (DetailOutput, error)
	// UpdateDetails edits title/description/importance. Times and
	// completion state are untouched.
	UpdateDetails(ctx context.Context, input UpdateDetailsInput) (UpdateOutput, error)
	// Reschedule applies a drag-and-drop move, preserving the entry's
	// duration.
	Reschedule(ctx context.Context, input RescheduleInput) (UpdateOutput, error)
	// SetTimes applies a direct time edit. An end at or before the start
	// is forced to start + MinDuration before saving.
	SetTimes(ctx context.Context, input SetTimesInput) (UpdateOutput, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// Mirror keeps a todo's derived planner block consistent with the todo.
// It is the single enforcement point for the mirror invariant: for each
// todo with a due date there is at most one entry with that SourceTodoID,
// spanning [dueAt, dueAt+1h), completed iff the todo is DONE.
type Mirror interface {
	SyncFromTodo(ctx context.Context, todo TodoSnapshot) error
	SyncStatusOnly(ctx context.Context, todo TodoSnapshot) error
	SyncImportanceOnly(ctx context.Context, todo TodoSnapshot) error
	DeleteMirrorForTodo(ctx context.Context, ownerID, todoID string) error
}
