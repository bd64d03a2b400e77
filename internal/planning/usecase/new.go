package usecase

import (
	"context"

	"dayplanner/internal/planning"
	"dayplanner/internal/planning/repository"
	"dayplanner/pkg/gcalendar"
	"dayplanner/pkg/log"
)

// CalendarClient is the slice of the Google Calendar client the planner
// exports through. *gcalendar.Client satisfies it.
type CalendarClient interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// implUseCase is the private implementation of planning.UseCase and
// planning.Mirror.
type implUseCase struct {
	repo repository.Repository
	l    log.Logger

	// cal is the optional calendar export client; nil disables export
	// entirely.
	cal        CalendarClient
	calendarID string
}

var (
	_ planning.UseCase = (*implUseCase)(nil)
	_ planning.Mirror  = (*implUseCase)(nil)
)

// New creates a new planning UseCase implementation.
func New(repo repository.Repository, l log.Logger, cal CalendarClient, calendarID string) *implUseCase {
	return &implUseCase{
		repo:       repo,
		l:          l,
		cal:        cal,
		calendarID: calendarID,
	}
}
