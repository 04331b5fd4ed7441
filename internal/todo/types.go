package todo

import (
	"time"

	"smart-todo/internal/model"
)

// --- UseCase Inputs ---

type ListInput struct {
	// Refresh skips the session cache and reloads from the backend.
	Refresh bool
}

type CreateInput struct {
	Title       string
	Description string
	DueDate     string
	DueTime     string
	Priority    model.Priority
	Category    string
}

// UpdateInput is a partial update: nil fields keep their stored value and an
// empty string clears an optional field.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	DueDate     *string
	DueTime     *string
	Priority    *model.Priority
	Category    *string
	Completed   *bool
}

// --- UseCase Outputs ---

type DeleteOutput struct {
	ID        string
	UndoUntil time.Time
}
