package dashboard

import "context"

// UseCase exposes the dashboard's single read operation.
type UseCase interface {
	Stats(ctx context.Context, ownerID string) (StatsOutput, error)
}
