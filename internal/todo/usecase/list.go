package usecase

import (
	"context"

	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

// List returns the owner's todos, optionally filtered by status, newest
// first.
func (uc *implUseCase) List(ctx context.Context, input todo.ListInput) (todo.ListOutput, error) {
	todos, err := uc.repo.ListTodos(ctx, repo.ListTodosOptions{
		OwnerID: input.OwnerID,
		Status:  input.Status,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.List ListTodos: %v", err)
		return todo.ListOutput{}, err
	}

	return todo.ListOutput{Todos: todos}, nil
}

// Detail retrieves a single todo by ID, scoped to the owner.
func (uc *implUseCase) Detail(ctx context.Context, ownerID, id string) (todo.DetailOutput, error) {
	t, err := uc.repo.GetOneTodo(ctx, repo.GetOneTodoOptions{ID: id, OwnerID: ownerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetOneTodo: %v", err)
		return todo.DetailOutput{}, err
	}
	if t.ID == "" {
		return todo.DetailOutput{}, todo.ErrTodoNotFound
	}
	return todo.DetailOutput{Todo: t}, nil
}
