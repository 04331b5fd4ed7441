package usecase

import (
	"context"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// Analyze filters the caller's tasks to the period and asks the assistant
// about them. An empty period never reaches the model.
func (uc *implUseCase) Analyze(ctx context.Context, sc model.Scope, period model.Period) (model.AnalysisResult, error) {
	if !period.Valid() {
		return model.AnalysisResult{}, assistant.ErrInvalidPeriod
	}

	tasks, err := uc.workspaces.Get(sc).Tasks(ctx, false)
	if err != nil {
		uc.l.Errorf(ctx, "todo.usecase.Analyze Tasks: %v", err)
		return model.AnalysisResult{}, err
	}

	inPeriod := todo.FilterByPeriod(tasks, period, uc.clock(), uc.dates)
	if len(inPeriod) == 0 {
		return model.AnalysisResult{}, todo.ErrNoTodosInPeriod
	}

	return uc.assistant.AnalyzeTodos(ctx, assistant.AnalyzeInput{Todos: inPeriod, Period: period})
}
