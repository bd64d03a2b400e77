package postgre

import (
	"database/sql"
	"fmt"

	"dayplanner/internal/note/repository"
	"dayplanner/pkg/log"
)

type implRepository struct {
	db *sql.DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed Repository for the note domain.
func New(db *sql.DB, l log.Logger) repository.Repository {
	if db == nil {
		panic("note/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("note/repository/postgre.%s", method)
}
