package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"dayplanner/internal/note"
	repo "dayplanner/internal/note/repository"
)

const notebookColumns = `id, owner_id, name, created_at, updated_at`

func scanNotebook(row interface{ Scan(...any) error }) (note.Notebook, error) {
	var nb note.Notebook
	err := row.Scan(&nb.ID, &nb.OwnerID, &nb.Name, &nb.CreatedAt, &nb.UpdatedAt)
	if err != nil {
		return note.Notebook{}, err
	}
	return nb, nil
}

// CreateNotebook inserts a new notebook and returns the created row.
func (r *implRepository) CreateNotebook(ctx context.Context, opt repo.CreateNotebookOptions) (note.Notebook, error) {
	query := fmt.Sprintf(`
		INSERT INTO notebooks (%s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s`, notebookColumns, notebookColumns)

	nb, err := scanNotebook(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, opt.Name,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNotebook"), err)
		return note.Notebook{}, repo.ErrFailedToInsert
	}
	return nb, nil
}

// GetOneNotebook retrieves a single notebook by ID and owner. Returns a
// zero-value Notebook when not found.
func (r *implRepository) GetOneNotebook(ctx context.Context, opt repo.GetOneOptions) (note.Notebook, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM notebooks WHERE id = $1 AND owner_id = $2 LIMIT 1`, notebookColumns)

	nb, err := scanNotebook(r.db.QueryRowContext(ctx, query, opt.ID, opt.OwnerID))
	if err == sql.ErrNoRows {
		return note.Notebook{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNotebook"), err)
		return note.Notebook{}, repo.ErrFailedToGet
	}
	return nb, nil
}

// ListNotebooks returns the owner's notebooks by name.
func (r *implRepository) ListNotebooks(ctx context.Context, ownerID string) ([]note.Notebook, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM notebooks WHERE owner_id = $1 ORDER BY name ASC`, notebookColumns)

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotebooks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var notebooks []note.Notebook
	for rows.Next() {
		nb, scanErr := scanNotebook(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		notebooks = append(notebooks, nb)
	}
	return notebooks, nil
}

// UpdateNotebook renames a notebook and returns the updated row.
// Returns a zero-value Notebook when the row does not exist.
func (r *implRepository) UpdateNotebook(ctx context.Context, opt repo.UpdateNotebookOptions) (note.Notebook, error) {
	query := fmt.Sprintf(`
		UPDATE notebooks
		SET name = $1, updated_at = $2
		WHERE id = $3 AND owner_id = $4
		RETURNING %s`, notebookColumns)

	nb, err := scanNotebook(r.db.QueryRowContext(ctx, query,
		opt.Name, time.Now(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return note.Notebook{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNotebook"), err)
		return note.Notebook{}, repo.ErrFailedToUpdate
	}
	return nb, nil
}

// DeleteNotebook removes a notebook by ID, scoped to its owner.
func (r *implRepository) DeleteNotebook(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM notebooks WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNotebook"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
