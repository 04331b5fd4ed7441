package todo

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Task CRUD, always scoped to the caller.
	List(ctx context.Context, sc model.Scope, input ListInput) ([]model.Task, error)
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)
	ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error)

	// Delete hides the task at once and removes it after the undo window.
	Delete(ctx context.Context, sc model.Scope, id string) (DeleteOutput, error)
	Restore(ctx context.Context, sc model.Scope, id string) error

	// ApproveDraft persists an assistant draft, possibly edited by the user.
	ApproveDraft(ctx context.Context, sc model.Scope, draft model.TodoDraft) (model.Task, error)

	// Analyze loads the caller's tasks for the period and asks the assistant for a summary.
	Analyze(ctx context.Context, sc model.Scope, period model.Period) (model.AnalysisResult, error)
}
