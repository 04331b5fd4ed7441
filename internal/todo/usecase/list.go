package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// List returns the caller's visible tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input todo.ListInput) ([]model.Task, error) {
	tasks, err := uc.workspaces.Get(sc).Tasks(ctx, input.Refresh)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.List Tasks: %v", err)
		return nil, err
	}
	return tasks, nil
}
