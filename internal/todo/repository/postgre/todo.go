package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/todo"
	repo "dayplanner/internal/todo/repository"
)

const todoColumns = `id, owner_id, title, importance, status, due_at, created_at, updated_at`

// scanTodo scans one row into a Todo, mapping NULL due_at to nil.
func scanTodo(row interface{ Scan(...any) error }) (todo.Todo, error) {
	var t todo.Todo
	var dueAt sql.NullTime
	err := row.Scan(
		&t.ID, &t.OwnerID, &t.Title, &t.Importance, &t.Status,
		&dueAt, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return todo.Todo{}, err
	}
	if dueAt.Valid {
		due := dueAt.Time
		t.DueAt = &due
	}
	return t, nil
}

func nullableTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

// CreateTodo inserts a new todo and returns the created row.
func (r *implRepository) CreateTodo(ctx context.Context, opt repo.CreateTodoOptions) (todo.Todo, error) {
	query := fmt.Sprintf(`
		INSERT INTO todos (%s)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, todoColumns, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, opt.Importance, opt.Status,
		nullableTime(opt.DueAt),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToInsert
	}
	return t, nil
}

// GetOneTodo retrieves a single todo by ID and owner. Returns zero-value
// Todo when not found, not an error.
func (r *implRepository) GetOneTodo(ctx context.Context, opt repo.GetOneTodoOptions) (todo.Todo, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM todos WHERE id = $1 AND owner_id = $2 LIMIT 1`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query, opt.ID, opt.OwnerID))
	if err == sql.ErrNoRows {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTodo"), err)
		return todo.Todo{}, repo.ErrFailedToGet
	}
	return t, nil
}

// ListTodos returns todos matching the filter, most recently created
// first unless overridden.
func (r *implRepository) ListTodos(ctx context.Context, opt repo.ListTodosOptions) ([]todo.Todo, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM todos %s`, todoColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTodos"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var todos []todo.Todo
	for rows.Next() {
		t, scanErr := scanTodo(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		todos = append(todos, t)
	}
	return todos, nil
}

// CountTodos counts todos matching the filter (pagination ignored).
func (r *implRepository) CountTodos(ctx context.Context, opt repo.ListTodosOptions) (int, error) {
	mods, args := r.buildCountQuery(opt)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM todos WHERE %s`, mods)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountTodos"), err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}

// UpdateTodo updates a todo by ID and owner and returns the updated row.
// Returns zero-value Todo when the row does not exist.
func (r *implRepository) UpdateTodo(ctx context.Context, opt repo.UpdateTodoOptions) (todo.Todo, error) {
	query := fmt.Sprintf(`
		UPDATE todos
		SET title = $1, importance = $2, status = $3, due_at = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7
		RETURNING %s`, todoColumns)

	t, err := scanTodo(r.db.QueryRowContext(ctx, query,
		opt.Title, opt.Importance, opt.Status, nullableTime(opt.DueAt),
		time.Now(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return todo.Todo{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTodo"), err)
		return todo.Todo{}, repo.ErrFailedToUpdate
	}
	return t, nil
}

// DeleteTodo removes a todo by ID, scoped to its owner.
func (r *implRepository) DeleteTodo(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM todos WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
