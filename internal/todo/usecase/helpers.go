package usecase

import (
	"errors"
	"strings"
	"unicode/utf8"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
	"smart-todo/internal/todo/workspace"
	"smart-todo/pkg/datemath"
)

const maxTitleRunes = 100

// validateFields checks a complete task shape and trims its strings in place.
func (uc *implUseCase) validateFields(in *todo.CreateInput) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Description = strings.TrimSpace(in.Description)
	in.DueDate = strings.TrimSpace(in.DueDate)
	in.DueTime = strings.TrimSpace(in.DueTime)
	in.Category = strings.TrimSpace(in.Category)

	if in.Title == "" {
		return todo.ErrTitleRequired
	}
	if utf8.RuneCountInString(in.Title) > maxTitleRunes {
		return todo.ErrTitleTooLong
	}
	if in.Priority == "" {
		in.Priority = model.PriorityMedium
	}
	if !in.Priority.Valid() {
		return todo.ErrInvalidPriority
	}
	if in.DueDate != "" {
		if _, err := uc.dates.ParseDate(in.DueDate); err != nil {
			return todo.ErrInvalidDueDate
		}
	}
	if in.DueTime != "" && !datemath.IsClock(in.DueTime) {
		return todo.ErrInvalidDueTime
	}
	return nil
}

// coalesce applies an optional update over the stored value.
func coalesce[T any](newVal *T, existing T) T {
	if newVal != nil {
		return *newVal
	}
	return existing
}

// mapWorkspaceErr translates workspace errors into domain errors.
func mapWorkspaceErr(err error) error {
	switch {
	case errors.Is(err, workspace.ErrNotFound):
		return todo.ErrTaskNotFound
	case errors.Is(err, workspace.ErrNotPending):
		return todo.ErrNotPendingDelete
	}
	return err
}
