package usecase

import (
	"dayplanner/internal/note"
	"dayplanner/internal/note/repository"
	"dayplanner/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

var _ note.UseCase = (*implUseCase)(nil)

// New creates a new note UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
