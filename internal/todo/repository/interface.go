package repository

import (
	"context"

	"smart-todo/internal/model"
)

// Repository is the composed interface for the todo domain data store.
type Repository interface {
	TaskRepository
}

// TaskRepository defines data access for tasks. Every call is scoped to the
// caller: a row owned by someone else behaves as if it did not exist.
type TaskRepository interface {
	CreateTask(ctx context.Context, sc model.Scope, opt CreateTaskOptions) (model.Task, error)
	// GetOneTask returns a zero Task (ID == "") when not found.
	GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error)
	ListTasks(ctx context.Context, sc model.Scope, opt ListTasksOptions) ([]model.Task, error)
	// UpdateTask returns a zero Task (ID == "") when not found.
	UpdateTask(ctx context.Context, sc model.Scope, opt UpdateTaskOptions) (model.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}
