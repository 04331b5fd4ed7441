package repository

import (
	"time"

	"smart-todo/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
// Empty optional strings are stored as NULL.
type CreateTaskOptions struct {
	Title       string
	Description string
	DueDate     string
	DueTime     string
	Priority    model.Priority
	Category    string
}

// ListTasksOptions holds filter parameters for listing Tasks.
type ListTasksOptions struct {
	// Completed filters by completion state when set.
	Completed *bool
	// Limit caps the number of rows; zero means no cap.
	Limit int
}

// UpdateTaskOptions replaces every mutable column of a Task.
type UpdateTaskOptions struct {
	ID          string
	Title       string
	Description string
	DueDate     string
	DueTime     string
	Priority    model.Priority
	Category    string
	Completed   bool
	CompletedAt *time.Time
}
