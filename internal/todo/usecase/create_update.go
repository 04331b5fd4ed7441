package usecase

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	repo "smart-todo/internal/todo/repository"
)

// Create validates and stores a new task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input todo.CreateInput) (model.Task, error) {
	if err := uc.validateFields(&input); err != nil {
		return model.Task{}, err
	}

	task, err := uc.repo.CreateTask(ctx, sc, repo.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
		DueDate:     input.DueDate,
		DueTime:     input.DueTime,
		Priority:    input.Priority,
		Category:    input.Category,
	})
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	uc.workspaces.Get(sc).Put(task)
	return task, nil
}

// Update applies a partial update. Completing a task stamps CompletedAt and
// reopening it clears the stamp.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input todo.UpdateInput) (model.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, input.ID)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Update GetOneTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, todo.ErrTaskNotFound
	}

	merged := todo.CreateInput{
		Title:       coalesce(input.Title, existing.Title),
		Description: coalesce(input.Description, existing.Description),
		DueDate:     coalesce(input.DueDate, existing.DueDate),
		DueTime:     coalesce(input.DueTime, existing.DueTime),
		Priority:    coalesce(input.Priority, existing.Priority),
		Category:    coalesce(input.Category, existing.Category),
	}
	if err := uc.validateFields(&merged); err != nil {
		return model.Task{}, err
	}

	return uc.save(ctx, sc, existing, merged, coalesce(input.Completed, existing.Completed))
}

// ToggleComplete flips the completion state of a task.
func (uc *implUseCase) ToggleComplete(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	existing, err := uc.repo.GetOneTask(ctx, sc, id)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.ToggleComplete GetOneTask: %v", err)
		return model.Task{}, err
	}
	if existing.ID == "" {
		return model.Task{}, todo.ErrTaskNotFound
	}

	fields := todo.CreateInput{
		Title:       existing.Title,
		Description: existing.Description,
		DueDate:     existing.DueDate,
		DueTime:     existing.DueTime,
		Priority:    existing.Priority,
		Category:    existing.Category,
	}
	if !fields.Priority.Valid() {
		fields.Priority = model.PriorityMedium
	}
	return uc.save(ctx, sc, existing, fields, !existing.Completed)
}

func (uc *implUseCase) save(ctx context.Context, sc model.Scope, existing model.Task, fields todo.CreateInput, completed bool) (model.Task, error) {
	completedAt := existing.CompletedAt
	switch {
	case completed && !existing.Completed:
		now := uc.now().UTC()
		completedAt = &now
	case !completed:
		completedAt = nil
	}

	task, err := uc.repo.UpdateTask(ctx, sc, repo.UpdateTaskOptions{
		ID:          existing.ID,
		Title:       fields.Title,
		Description: fields.Description,
		DueDate:     fields.DueDate,
		DueTime:     fields.DueTime,
		Priority:    fields.Priority,
		Category:    fields.Category,
		Completed:   completed,
		CompletedAt: completedAt,
	})
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.save UpdateTask: %v", err)
		return model.Task{}, err
	}
	if task.ID == "" {
		return model.Task{}, todo.ErrTaskNotFound
	}

	uc.workspaces.Get(sc).Put(task)
	return task, nil
}
