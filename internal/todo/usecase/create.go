package usecase

import (
	"context"
	"strings"

	"dayplanner/internal/model"
	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

// Create inserts a new todo in TODO status. A due date immediately
// materializes its planner mirror.
func (uc *implUseCase) Create(ctx context.Context, input todo.CreateInput) (todo.CreateOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return todo.CreateOutput{}, todo.ErrTitleRequired
	}

	importance := input.Importance
	if !importance.Valid() {
		importance = model.ImportanceMedium
	}

	created, err := uc.repo.CreateTodo(ctx, repo.CreateTodoOptions{
		OwnerID:    input.OwnerID,
		Title:      title,
		Importance: importance,
		Status:     model.StatusTodo,
		DueAt:      input.DueAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Create CreateTodo: %v", err)
		return todo.CreateOutput{}, err
	}

	if created.DueAt != nil {
		if err := uc.mirror.SyncFromTodo(ctx, created.Snapshot()); err != nil {
			uc.l.Errorf(ctx, "uc.Create SyncFromTodo: %v", err)
			return todo.CreateOutput{}, err
		}
	}

	return todo.CreateOutput{Todo: created}, nil
}
