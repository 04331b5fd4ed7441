package usecase

import (
	"smart-todo/internal/profile"
	"smart-todo/internal/profile/repository"
	"smart-todo/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new profile UseCase implementation.
func New(repo repository.Repository, l log.Logger) profile.UseCase {
	return &implUseCase{repo: repo, l: l}
}
