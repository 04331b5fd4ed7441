package usecase

import (
	"context"
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/llmprovider"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock Gemini client for testing
type mockGeminiClient struct {
	model    string
	text     string
	err      error
	calls    int
	lastText string
}

func (m *mockGeminiClient) GenerateContent(ctx context.Context, req *gemini.Request) (*gemini.Response, error) {
	m.calls++
	if len(req.Messages) > 0 && len(req.Messages[0].Parts) > 0 {
		m.lastText = req.Messages[0].Parts[0].Text
	}
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.Response{
		Content: gemini.Content{Role: "model", Parts: []gemini.Part{{Text: m.text}}},
		Usage:   &gemini.Usage{},
	}, nil
}

func (m *mockGeminiClient) Model() string {
	if m.model == "" {
		return "gemini-test"
	}
	return m.model
}

var kst = time.FixedZone("KST", 9*60*60)

// fixedNow is Tuesday 2025-06-10 10:00 KST.
func fixedNow() time.Time {
	return time.Date(2025, 6, 10, 10, 0, 0, 0, kst)
}

// newManager chains clients in order, falling back only on unavailable models.
func newManager(clients ...*mockGeminiClient) *llmprovider.Manager {
	providers := make([]llmprovider.Provider, len(clients))
	for i, c := range clients {
		providers[i] = llmprovider.NewGeminiAdapter(c)
	}
	return llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: true,
		RetryAttempts:   1,
		ShouldFallback:  llmprovider.IsModelUnavailable,
	}, &mockLogger{})
}

func newTestUseCase(generator, analyzer Generator, policy assistant.PastDuePolicy) *implUseCase {
	return New(&mockLogger{}, generator, analyzer, Options{
		Location:      kst,
		PastDuePolicy: policy,
		Now:           fixedNow,
	}).(*implUseCase)
}
