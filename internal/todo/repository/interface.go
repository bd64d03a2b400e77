package repository

import (
	"context"

	"dayplanner/internal/todo"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TodoRepository
}

// TodoRepository defines all data access methods for todos. Every method
// is scoped by owner; lookups that match nothing return a zero-value Todo
// with no error.
type TodoRepository interface {
	CreateTodo(ctx context.Context, opt CreateTodoOptions) (todo.Todo, error)
	GetOneTodo(ctx context.Context, opt GetOneTodoOptions) (todo.Todo, error)
	ListTodos(ctx context.Context, opt ListTodosOptions) ([]todo.Todo, error)
	CountTodos(ctx context.Context, opt ListTodosOptions) (int, error)
	UpdateTodo(ctx context.Context, opt UpdateTodoOptions) (todo.Todo, error)
	DeleteTodo(ctx context.Context, ownerID, id string) error
}
