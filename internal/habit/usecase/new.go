package usecase

import (
	"dayplanner/internal/habit"
	"dayplanner/internal/habit/repository"
	"dayplanner/pkg/clock"
	"dayplanner/pkg/log"
)

// implUseCase is the private implementation of habit.UseCase.
type implUseCase struct {
	repo  repository.Repository
	l     log.Logger
	clock clock.Clock
}

var _ habit.UseCase = (*implUseCase)(nil)

// New creates a new habit UseCase implementation. The clock decides what
// "today" means for log toggling.
func New(repo repository.Repository, l log.Logger, clk clock.Clock) *implUseCase {
	return &implUseCase{
		repo:  repo,
		l:     l,
		clock: clk,
	}
}
