package usecase

import (
	"context"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/pkg/llmprovider"
)

const (
	generateTemperature = 0.2
	analyzeTemperature  = 0.7
)

// GenerateTodo validates text, asks the model chain for a draft and normalizes it.
// Invalid input never reaches the model.
func (uc *implUseCase) GenerateTodo(ctx context.Context, input assistant.GenerateInput) (model.TodoDraft, error) {
	text, err := validateText(input.Text)
	if err != nil {
		return model.TodoDraft{}, err
	}

	now := uc.clock()
	resp, err := uc.generator.GenerateContent(ctx, &llmprovider.Request{
		Messages:       llmprovider.UserText(uc.buildGeneratePrompt(text, now)),
		Temperature:    generateTemperature,
		ResponseSchema: todoDraftSchema,
	})
	if err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.GenerateTodo GenerateContent: %v", err)
		return model.TodoDraft{}, err
	}

	var raw rawDraft
	if err := llmprovider.DecodeObject(resp.Text(), todoDraftSchema, &raw); err != nil {
		uc.l.Errorf(ctx, "assistant.usecase.GenerateTodo DecodeObject (model %s): %v", resp.ModelName, err)
		return model.TodoDraft{}, err
	}

	return uc.normalizeDraft(raw.toDraft(), now), nil
}
