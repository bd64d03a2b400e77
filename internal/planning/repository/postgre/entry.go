package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/planning"
	repo "dayplanner/internal/planning/repository"
)

const entryColumns = `id, owner_id, title, description, starts_at, ends_at, importance, completed, source_todo_id, created_at, updated_at`

// scanEntry scans one row into an Entry, mapping NULL description and
// source_todo_id to empty strings.
func scanEntry(row interface{ Scan(...any) error }) (planning.Entry, error) {
	var e planning.Entry
	var description, sourceTodoID sql.NullString
	err := row.Scan(
		&e.ID, &e.OwnerID, &e.Title, &description, &e.StartsAt, &e.EndsAt,
		&e.Importance, &e.Completed, &sourceTodoID, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return planning.Entry{}, err
	}
	e.Description = description.String
	e.SourceTodoID = sourceTodoID.String
	return e, nil
}

// nullable maps "" to NULL so the partial unique index on source_todo_id
// only applies to real mirrors.
func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// CreateEntry inserts a new planning entry and returns the created row.
func (r *implRepository) CreateEntry(ctx context.Context, opt repo.CreateEntryOptions) (planning.Entry, error) {
	query := fmt.Sprintf(`
		INSERT INTO planning_entries (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, entryColumns, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Title, nullable(opt.Description),
		opt.StartsAt, opt.EndsAt, opt.Importance, opt.Completed, nullable(opt.SourceTodoID),
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntry"), err)
		return planning.Entry{}, repo.ErrFailedToInsert
	}
	return entry, nil
}

// CreateEntriesBatch inserts all entries inside one transaction. Any
// failure rolls back every row already inserted.
func (r *implRepository) CreateEntriesBatch(ctx context.Context, opts []repo.CreateEntryOptions) ([]planning.Entry, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("CreateEntriesBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	defer tx.Rollback()

	query := fmt.Sprintf(`
		INSERT INTO planning_entries (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		RETURNING %s`, entryColumns, entryColumns)

	entries := make([]planning.Entry, 0, len(opts))
	for _, opt := range opts {
		entry, scanErr := scanEntry(tx.QueryRowContext(ctx, query,
			uuid.NewString(), opt.OwnerID, opt.Title, nullable(opt.Description),
			opt.StartsAt, opt.EndsAt, opt.Importance, opt.Completed, nullable(opt.SourceTodoID),
		))
		if scanErr != nil {
			r.l.Errorf(ctx, "%s: %v", r.dsn("CreateEntriesBatch"), scanErr)
			return nil, repo.ErrFailedToInsert
		}
		entries = append(entries, entry)
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("CreateEntriesBatch"), err)
		return nil, repo.ErrFailedToInsert
	}
	return entries, nil
}

// GetOneEntry retrieves a single entry by the provided filters (AND
// condition). Returns a zero-value Entry when not found, not an error.
func (r *implRepository) GetOneEntry(ctx context.Context, opt repo.GetOneEntryOptions) (planning.Entry, error) {
	mods, args := r.buildGetOneQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM planning_entries WHERE %s LIMIT 1`, entryColumns, mods)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return planning.Entry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneEntry"), err)
		return planning.Entry{}, repo.ErrFailedToGet
	}
	return entry, nil
}

// ListBySourceTodo returns all entries mirroring the given todo.
func (r *implRepository) ListBySourceTodo(ctx context.Context, ownerID, todoID string) ([]planning.Entry, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM planning_entries WHERE owner_id = $1 AND source_todo_id = $2`, entryColumns)

	rows, err := r.db.QueryContext(ctx, query, ownerID, todoID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListBySourceTodo"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []planning.Entry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ListEntries returns entries matching the filter, ordered by start time
// unless overridden.
func (r *implRepository) ListEntries(ctx context.Context, opt repo.ListEntriesOptions) ([]planning.Entry, error) {
	mods, args := r.buildListQuery(opt)
	query := fmt.Sprintf(`SELECT %s FROM planning_entries %s`, entryColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListEntries"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var entries []planning.Entry
	for rows.Next() {
		entry, scanErr := scanEntry(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// CountEntries counts entries matching the filter (pagination ignored).
func (r *implRepository) CountEntries(ctx context.Context, opt repo.ListEntriesOptions) (int, error) {
	mods, args := r.buildCountQuery(opt)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM planning_entries WHERE %s`, mods)

	var total int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CountEntries"), err)
		return 0, repo.ErrFailedToList
	}
	return total, nil
}

// UpdateEntry updates an entry by ID and owner and returns the updated
// row. Returns zero-value Entry when the row does not exist.
func (r *implRepository) UpdateEntry(ctx context.Context, opt repo.UpdateEntryOptions) (planning.Entry, error) {
	query := fmt.Sprintf(`
		UPDATE planning_entries
		SET title = $1, description = $2, starts_at = $3, ends_at = $4,
		    importance = $5, completed = $6, updated_at = $7
		WHERE id = $8 AND owner_id = $9
		RETURNING %s`, entryColumns)

	entry, err := scanEntry(r.db.QueryRowContext(ctx, query,
		opt.Title, nullable(opt.Description), opt.StartsAt, opt.EndsAt,
		opt.Importance, opt.Completed, time.Now(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return planning.Entry{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateEntry"), err)
		return planning.Entry{}, repo.ErrFailedToUpdate
	}
	return entry, nil
}

// DeleteEntry removes an entry by ID, scoped to its owner.
func (r *implRepository) DeleteEntry(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM planning_entries WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteEntry"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

// DeleteBySourceTodo removes every mirror of the given todo. Deleting
// zero rows is not an error.
func (r *implRepository) DeleteBySourceTodo(ctx context.Context, ownerID, todoID string) error {
	const query = `DELETE FROM planning_entries WHERE owner_id = $1 AND source_todo_id = $2`
	if _, err := r.db.ExecContext(ctx, query, ownerID, todoID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteBySourceTodo"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
