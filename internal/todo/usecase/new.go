package usecase

import (
	"dayplanner/internal/planning"
	"dayplanner/internal/todo"
	"dayplanner/internal/todo/repository"
	"dayplanner/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase. Every
// mutation drives the planning mirror before returning, so the mirror
// invariant holds the moment a call completes.
type implUseCase struct {
	repo   repository.Repository
	mirror planning.Mirror
	l      log.Logger
}

var _ todo.UseCase = (*implUseCase)(nil)

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, mirror planning.Mirror, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		mirror: mirror,
		l:      l,
	}
}
