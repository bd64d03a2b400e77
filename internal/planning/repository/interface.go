package repository

import (
	"context"

	"dayplanner/internal/planning"
)

// Repository is the composed interface for the planning domain data store.
type Repository interface {
	EntryRepository
}

// EntryRepository defines all data access methods for planning entries.
// Every method is scoped by owner; lookups that match nothing return a
// zero-value Entry with no error.
type EntryRepository interface {
	CreateEntry(ctx context.Context, opt CreateEntryOptions) (planning.Entry, error)
	// CreateEntriesBatch inserts all entries in one transaction: a failure
	// on any row rolls back the whole batch.
	CreateEntriesBatch(ctx context.Context, opts []CreateEntryOptions) ([]planning.Entry, error)
	GetOneEntry(ctx context.Context, opt GetOneEntryOptions) (planning.Entry, error)
	// ListBySourceTodo returns every entry mirroring the given todo. The
	// uniqueness constraint keeps this at zero or one row.
	ListBySourceTodo(ctx context.Context, ownerID, todoID string) ([]planning.Entry, error)
	ListEntries(ctx context.Context, opt ListEntriesOptions) ([]planning.Entry, error)
	CountEntries(ctx context.Context, opt ListEntriesOptions) (int, error)
	UpdateEntry(ctx context.Context, opt UpdateEntryOptions) (planning.Entry, error)
	DeleteEntry(ctx context.Context, ownerID, id string) error
	DeleteBySourceTodo(ctx context.Context, ownerID, todoID string) error
}
