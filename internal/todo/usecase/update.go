package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

// Update applies a partial edit. Empty fields keep their current values;
// ClearDue removes the due date. Any of title, importance, status, or due
// date changing can affect the mirror, so the full synchronizer runs
// afterwards.
func (uc *implUseCase) Update(ctx context.Context, input todo.UpdateInput) (todo.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = existing.Title
	}

	importance := input.Importance
	if !importance.Valid() {
		importance = existing.Importance
	}

	status := input.Status
	if !status.Valid() {
		status = existing.Status
	}

	dueAt := existing.DueAt
	if input.ClearDue {
		dueAt = nil
	} else if input.DueAt != nil {
		dueAt = input.DueAt
	}

	updated, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:         existing.ID,
		OwnerID:    existing.OwnerID,
		Title:      title,
		Importance: importance,
		Status:     status,
		DueAt:      dueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Update UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}

	if err := uc.mirror.SyncFromTodo(ctx, updated.Snapshot()); err != nil {
		uc.l.Errorf(ctx, "uc.Update SyncFromTodo: %v", err)
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}
