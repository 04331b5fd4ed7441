package usecase

import (
	"context"
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/pkg/datemath"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/log"
)

// Generator is the model-calling dependency; *llmprovider.Manager satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error)
}

// Options tunes the use case. Zero values pick defaults.
type Options struct {
	Location      *time.Location
	PastDuePolicy assistant.PastDuePolicy
	Now           func() time.Time
}

// implUseCase is the private implementation of assistant.UseCase.
type implUseCase struct {
	l         log.Logger
	generator Generator // ordered model chain with fallback
	analyzer  Generator // primary model only
	dates     *datemath.Parser
	policy    assistant.PastDuePolicy
	now       func() time.Time
}

// New creates a new assistant UseCase implementation.
func New(l log.Logger, generator, analyzer Generator, opt Options) assistant.UseCase {
	if opt.Now == nil {
		opt.Now = time.Now
	}
	if opt.PastDuePolicy == "" {
		opt.PastDuePolicy = assistant.PastDueClamp
	}
	return &implUseCase{
		l:         l,
		generator: generator,
		analyzer:  analyzer,
		dates:     datemath.NewParserIn(opt.Location),
		policy:    opt.PastDuePolicy,
		now:       opt.Now,
	}
}

func (uc *implUseCase) clock() time.Time {
	return uc.now().In(uc.dates.Location())
}
