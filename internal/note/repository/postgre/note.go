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

const noteColumns = `id, owner_id, notebook_id, title, content, pinned, created_at, updated_at`

// scanNote scans one row into a Note, mapping NULL notebook_id to nil.
func scanNote(row interface{ Scan(...any) error }) (note.Note, error) {
	var n note.Note
	var notebookID sql.NullString
	err := row.Scan(
		&n.ID, &n.OwnerID, &notebookID, &n.Title, &n.Content,
		&n.Pinned, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return note.Note{}, err
	}
	if notebookID.Valid {
		id := notebookID.String
		n.NotebookID = &id
	}
	return n, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// CreateNote inserts a new note and returns the created row.
func (r *implRepository) CreateNote(ctx context.Context, opt repo.CreateNoteOptions) (note.Note, error) {
	query := fmt.Sprintf(`
		INSERT INTO notes (%s)
		VALUES ($1, $2, $3, $4, $5, FALSE, NOW(), NOW())
		RETURNING %s`, noteColumns, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query,
		uuid.NewString(), opt.OwnerID, nullableString(opt.NotebookID),
		opt.Title, opt.Content,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateNote"), err)
		return note.Note{}, repo.ErrFailedToInsert
	}
	return n, nil
}

// GetOneNote retrieves a single note by ID and owner. Returns a
// zero-value Note when not found.
func (r *implRepository) GetOneNote(ctx context.Context, opt repo.GetOneOptions) (note.Note, error) {
	query := fmt.Sprintf(
		`SELECT %s FROM notes WHERE id = $1 AND owner_id = $2 LIMIT 1`, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query, opt.ID, opt.OwnerID))
	if err == sql.ErrNoRows {
		return note.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneNote"), err)
		return note.Note{}, repo.ErrFailedToGet
	}
	return n, nil
}

// ListNotes returns the owner's notes, pinned first then most recently
// updated.
func (r *implRepository) ListNotes(ctx context.Context, opt repo.ListNotesOptions) ([]note.Note, error) {
	query := fmt.Sprintf(`SELECT %s FROM notes WHERE owner_id = $1`, noteColumns)
	args := []any{opt.OwnerID}
	if opt.NotebookID != nil {
		query += ` AND notebook_id = $2`
		args = append(args, *opt.NotebookID)
	}
	query += ` ORDER BY pinned DESC, updated_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListNotes"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		n, scanErr := scanNote(rows)
		if scanErr != nil {
			return nil, repo.ErrFailedToList
		}
		notes = append(notes, n)
	}
	return notes, nil
}

// UpdateNote updates a note by ID and owner and returns the updated
// row. Returns a zero-value Note when the row does not exist.
func (r *implRepository) UpdateNote(ctx context.Context, opt repo.UpdateNoteOptions) (note.Note, error) {
	query := fmt.Sprintf(`
		UPDATE notes
		SET notebook_id = $1, title = $2, content = $3, pinned = $4, updated_at = $5
		WHERE id = $6 AND owner_id = $7
		RETURNING %s`, noteColumns)

	n, err := scanNote(r.db.QueryRowContext(ctx, query,
		nullableString(opt.NotebookID), opt.Title, opt.Content, opt.Pinned,
		time.Now(), opt.ID, opt.OwnerID,
	))
	if err == sql.ErrNoRows {
		return note.Note{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateNote"), err)
		return note.Note{}, repo.ErrFailedToUpdate
	}
	return n, nil
}

// DetachNotes clears the notebook link on every note in the notebook.
func (r *implRepository) DetachNotes(ctx context.Context, ownerID, notebookID string) error {
	const query = `
		UPDATE notes SET notebook_id = NULL, updated_at = NOW()
		WHERE notebook_id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, notebookID, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DetachNotes"), err)
		return repo.ErrFailedToUpdate
	}
	return nil
}

// DeleteNote removes a note by ID, scoped to its owner.
func (r *implRepository) DeleteNote(ctx context.Context, ownerID, id string) error {
	const query = `DELETE FROM notes WHERE id = $1 AND owner_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, ownerID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteNote"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}
