package usecase

import (
	"context"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/pkg/llmprovider"
)

// AnalyzeTodos aggregates statistics, then makes one call to the primary model.
func (uc *implUseCase) AnalyzeTodos(ctx context.Context, input assistant.AnalyzeInput) (model.AnalysisResult, error) {
	if !input.Period.Valid() {
		return model.AnalysisResult{}, assistant.ErrInvalidPeriod
	}
	if len(input.Todos) == 0 {
		return model.AnalysisResult{}, assistant.ErrNoTodos
	}

	now := uc.clock()
	stats := aggregateStats(input.Todos, now, uc.dates)

	resp, err := uc.analyzer.GenerateContent(ctx, &llmprovider.Request{
		Messages:       llmprovider.UserText(uc.buildAnalyzePrompt(stats, input.Todos, input.Period, now)),
		Temperature:    analyzeTemperature,
		ResponseSchema: analysisSchema,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.AnalyzeTodos GenerateContent: %v", err)
		return model.AnalysisResult{}, err
	}

	var raw rawAnalysis
	if err := llmprovider.DecodeObject(resp.Text(), analysisSchema, &raw); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.AnalyzeTodos DecodeObject (model %s): %v", resp.ModelName, err)
		return model.AnalysisResult{}, err
	}

	uc.l.Infof(ctx, "assistant.usecase.AnalyzeTodos: analyzed %d todos for %s", stats.Total, input.Period)
	return normalizeAnalysis(raw), nil
}
