package assistant

import (
	"context"

	"smart-todo/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// GenerateTodo turns one free-text sentence into a normalized task draft.
	GenerateTodo(ctx context.Context, input GenerateInput) (model.TodoDraft, error)

	// AnalyzeTodos summarizes a non-empty task list for a period.
	AnalyzeTodos(ctx context.Context, input AnalyzeInput) (model.AnalysisResult, error)

	// NormalizeDraft applies the draft rules to a client-edited draft.
	NormalizeDraft(draft model.TodoDraft) model.TodoDraft
}
