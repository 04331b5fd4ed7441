package todo

import "errors"

var (
	ErrTaskNotFound     = errors.New("task not found")
	ErrTitleRequired    = errors.New("title is required")
	ErrTitleTooLong     = errors.New("title is too long")
	ErrInvalidPriority  = errors.New("invalid priority")
	ErrInvalidDueDate   = errors.New("invalid due date")
	ErrInvalidDueTime   = errors.New("invalid due time")
	ErrNotPendingDelete = errors.New("task is not pending deletion")
	ErrNoTodosInPeriod  = errors.New("no todos in period")
)
