package usecase

import (
	"context"

	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

// ToggleStatus advances the quick-toggle cycle and syncs only the
// mirror's completion flag.
func (uc *implUseCase) ToggleStatus(ctx context.Context, ownerID, id string) (todo.UpdateOutput, error) {
	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}

	updated, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:         existing.ID,
		OwnerID:    existing.OwnerID,
		Title:      existing.Title,
		Importance: existing.Importance,
		Status:     existing.Status.Next(),
		DueAt:      existing.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}

	if err := uc.mirror.SyncStatusOnly(ctx, updated.Snapshot()); err != nil {
		uc.l.Errorf(ctx, "uc.ToggleStatus SyncStatusOnly: %v", err)
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}

// MoveImportance reassigns the board lane and syncs only the mirror's
// importance.
func (uc *implUseCase) MoveImportance(ctx context.Context, input todo.MoveImportanceInput) (todo.UpdateOutput, error) {
	if !input.Importance.Valid() {
		return todo.UpdateOutput{}, todo.ErrInvalidImportance
	}

	existing, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: input.ID, OwnerID: input.OwnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MoveImportance GetOneTodo: %v", err)
		return todo.UpdateOutput{}, err
	}
	if existing.ID == "" {
		return todo.UpdateOutput{}, todo.ErrTodoNotFound
	}

	updated, err := uc.repo.UpdateTodo(ctx, repo.UpdateTodoOptions{
		ID:         existing.ID,
		OwnerID:    existing.OwnerID,
		Title:      existing.Title,
		Importance: input.Importance,
		Status:     existing.Status,
		DueAt:      existing.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.MoveImportance UpdateTodo: %v", err)
		return todo.UpdateOutput{}, err
	}

	if err := uc.mirror.SyncImportanceOnly(ctx, updated.Snapshot()); err != nil {
		uc.l.Errorf(ctx, "uc.MoveImportance SyncImportanceOnly: %v", err)
		return todo.UpdateOutput{}, err
	}

	return todo.UpdateOutput{Todo: updated}, nil
}
