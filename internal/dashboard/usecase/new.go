package usecase

import (
	"dayplanner/internal/dashboard"
	habitrepo "dayplanner/internal/habit/repository"
	planningrepo "dayplanner/internal/planning/repository"
	todorepo "dayplanner/internal/todo/repository"
	"dayplanner/pkg/clock"
	"dayplanner/pkg/log"
)

// implUseCase composes the three domain repositories into one read
// model. It never writes.
type implUseCase struct {
	todos    todorepo.Repository
	planning planningrepo.Repository
	habits   habitrepo.Repository
	clock    clock.Clock
	l        log.Logger
}

var _ dashboard.UseCase = (*implUseCase)(nil)

// New creates a new dashboard UseCase implementation.
func New(todos todorepo.Repository, planning planningrepo.Repository, habits habitrepo.Repository, clk clock.Clock, l log.Logger) *implUseCase {
	if clk == nil {
		clk = clock.Real{}
	}
	return &implUseCase{
		todos:    todos,
		planning: planning,
		habits:   habits,
		clock:    clk,
		l:        l,
	}
}
