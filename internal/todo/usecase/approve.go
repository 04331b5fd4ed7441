package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// ApproveDraft normalizes a reviewed draft and stores it as a task.
func (uc *implUseCase) ApproveDraft(ctx context.Context, sc model.Scope, draft model.TodoDraft) (model.Task, error) {
	d := uc.assistant.NormalizeDraft(draft)

	return uc.Create(ctx, sc, todo.CreateInput{
		Title:       d.Title,
		Description: d.Description,
		DueDate:     d.DueDate,
		DueTime:     d.DueTime,
		Priority:    d.Priority,
		Category:    d.Category,
	})
}
