package usecase

import (
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/repository"
	"smart-todo/internal/todo/workspace"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/log"
)

// implUseCase is the private implementation of todo.UseCase.
type implUseCase struct {
	repo       repository.Repository
	workspaces *workspace.Registry
	assistant  assistant.UseCase
	dates      *datemath.Parser
	now        func() time.Time
	l          log.Logger
}

// New creates a new todo UseCase implementation.
func New(repo repository.Repository, workspaces *workspace.Registry, assistantUC assistant.UseCase, loc *time.Location, l log.Logger) todo.UseCase {
	return &implUseCase{
		repo:       repo,
		workspaces: workspaces,
		assistant:  assistantUC,
		dates:      datemath.NewParserIn(loc),
		now:        time.Now,
		l:          l,
	}
}

func (uc *implUseCase) clock() time.Time {
	return uc.now().In(uc.dates.Location())
}
