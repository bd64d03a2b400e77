package habit

import (
	"context"
	"time"
)

// UseCase is the habit surface consumed by the HTTP delivery layer.
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	List(ctx context.Context, ownerID string, includeArchived bool) (ListOutput, error)
	Detail(ctx context.Context, ownerID, id string) (DetailOutput, error)
	Update(ctx context.Context, input UpdateInput) (UpdateOutput, error)
	// Archive hides the habit from every view without deleting its logs.
	Archive(ctx context.Context, ownerID, id string, archived bool) (UpdateOutput, error)
	Delete(ctx context.Context, ownerID, id string) error

	// ListForDay returns the unarchived habits due on the given day, each
	// paired with that day's log when one exists.
	ListForDay(ctx context.Context, ownerID string, day time.Time) (TodayOutput, error)
	// ToggleToday upserts today's log: YES_NO flips done, COUNTER adjusts
	// the value (floor 0) and derives done from the per-period target.
	ToggleToday(ctx context.Context, input ToggleTodayInput) (ToggleOutput, error)
}
