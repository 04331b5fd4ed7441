package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-todo/internal/assistant"
	assistantUC "smart-todo/internal/assistant/usecase"
	"smart-todo/internal/model"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/llmprovider"
)

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

type mockUseCase struct {
	draft    model.TodoDraft
	analysis model.AnalysisResult
	err      error

	generateCalls int
	analyzeCalls  int
	lastAnalyze   assistant.AnalyzeInput
}

func (m *mockUseCase) GenerateTodo(ctx context.Context, input assistant.GenerateInput) (model.TodoDraft, error) {
	m.generateCalls++
	return m.draft, m.err
}

func (m *mockUseCase) AnalyzeTodos(ctx context.Context, input assistant.AnalyzeInput) (model.AnalysisResult, error) {
	m.analyzeCalls++
	m.lastAnalyze = input
	return m.analysis, m.err
}

func (m *mockUseCase) NormalizeDraft(d model.TodoDraft) model.TodoDraft { return d }

func serve(t *testing.T, h Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/generate", h.GenerateTodo)
	r.POST("/analyze", h.AnalyzeTodos)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGenerateTodo_Success_NullsAbsentFields(t *testing.T) {
	uc := &mockUseCase{draft: model.TodoDraft{Title: "팀 회의 준비", DueDate: "2025-06-11", DueTime: "15:00", Priority: model.PriorityMedium}}
	w := serve(t, New(&mockLogger{}, uc, false), "/generate", `{"text":"내일 오후 3시까지 팀 회의 준비"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if body.Data["due_date"] != "2025-06-11" || body.Data["due_time"] != "15:00" {
		t.Errorf("unexpected data: %v", body.Data)
	}
	for _, key := range []string{"description", "category"} {
		v, ok := body.Data[key]
		if !ok || v != nil {
			t.Errorf("%s should be present and null, got %v (present=%v)", key, v, ok)
		}
	}
}

func TestGenerateTodo_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
		err  error
	}{
		{name: "malformed json", body: `{"text":`},
		{name: "text not a string", body: `{"text":42}`},
		{name: "empty text maps to 400", body: `{"text":""}`, err: assistant.ErrEmptyText},
		{name: "too long maps to 400", body: `{"text":"x"}`, err: assistant.ErrTextTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{err: tt.err}
			w := serve(t, New(&mockLogger{}, uc, false), "/generate", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if tt.err == nil && uc.generateCalls != 0 {
				t.Errorf("use case must not be called for an unbindable body")
			}
		})
	}
}

type countingGenerator struct {
	calls int
}

func (g *countingGenerator) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	g.calls++
	return nil, errors.New("model must not be called")
}

func TestGenerateTodo_TextLengthLimit(t *testing.T) {
	tests := []struct {
		name  string
		runes int
	}{
		{name: "501 runes", runes: 501},
		{name: "1000 runes", runes: 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := &countingGenerator{}
			uc := assistantUC.New(&mockLogger{}, gen, gen, assistantUC.Options{})
			body, _ := json.Marshal(map[string]string{"text": strings.Repeat("회", tt.runes)})

			w := serve(t, New(&mockLogger{}, uc, false), "/generate", string(body))

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
			if gen.calls != 0 {
				t.Errorf("model called %d times for oversized text", gen.calls)
			}
		})
	}
}

func TestGenerateTodo_UpstreamErrors(t *testing.T) {
	wrap := func(err error) error {
		return errors.Join(llmprovider.ErrAllProvidersFailed, &llmprovider.ProviderError{Provider: "gemini", Model: "m", Err: err})
	}

	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"quota", wrap(&gemini.APIError{StatusCode: 429, Status: "RESOURCE_EXHAUSTED"}), http.StatusTooManyRequests, msgQuota},
		{"auth", wrap(gemini.ErrMissingAPIKey), http.StatusInternalServerError, msgAuth},
		{"model unavailable", wrap(&gemini.APIError{StatusCode: 404, Status: "NOT_FOUND"}), http.StatusInternalServerError, msgUnavailable},
		{"network", wrap(context.DeadlineExceeded), http.StatusInternalServerError, msgNetwork},
		{"schema", llmprovider.ErrSchemaMismatch, http.StatusInternalServerError, msgBadOutput},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, msgGenerateFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(t, New(&mockLogger{}, &mockUseCase{err: tt.err}, false), "/generate", `{"text":"장보기"}`)

			if w.Code != tt.status {
				t.Errorf("expected %d, got %d", tt.status, w.Code)
			}
			var body map[string]any
			json.Unmarshal(w.Body.Bytes(), &body)
			if body["error"] != tt.msg {
				t.Errorf("error = %v, want %q", body["error"], tt.msg)
			}
			if _, ok := body["details"]; ok {
				t.Errorf("details must be hidden outside development")
			}
		})
	}
}

func TestGenerateTodo_DetailsInDevelopment(t *testing.T) {
	w := serve(t, New(&mockLogger{}, &mockUseCase{err: errors.New("root cause")}, true), "/generate", `{"text":"장보기"}`)

	var body map[string]any
	json.Unmarshal(w.Body.Bytes(), &body)
	if body["details"] != "root cause" {
		t.Errorf("details = %v, want root cause", body["details"])
	}
}

func TestAnalyzeTodos_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing todos", body: `{"period":"today"}`},
		{name: "todos not an array", body: `{"todos":"x","period":"today"}`},
		{name: "todos null", body: `{"todos":null,"period":"today"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			w := serve(t, New(&mockLogger{}, uc, false), "/analyze", tt.body)

			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d", w.Code)
			}
			if uc.analyzeCalls != 0 {
				t.Errorf("use case must not be called")
			}
		})
	}

	t.Run("empty array reaches the use case", func(t *testing.T) {
		uc := &mockUseCase{err: assistant.ErrNoTodos}
		w := serve(t, New(&mockLogger{}, uc, false), "/analyze", `{"todos":[],"period":"today"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := &mockUseCase{err: assistant.ErrInvalidPeriod}
		w := serve(t, New(&mockLogger{}, uc, false), "/analyze", `{"todos":[{"title":"a"}],"period":"month"}`)
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})
}

func TestAnalyzeTodos_Success(t *testing.T) {
	uc := &mockUseCase{analysis: model.AnalysisResult{Summary: "좋아요", UrgentTasks: []string{"보고서"}}}
	body := `{"period":"week","todos":[{
		"id":"1","title":"보고서","description":null,"due_date":"2025-06-09","due_time":"15:00:00",
		"priority":"high","category":null,"completed":true,
		"completed_at":"2025-06-09T05:00:00Z","created_at":"2025-06-01T00:00:00+09:00"
	}]}`

	w := serve(t, New(&mockLogger{}, uc, false), "/analyze", body)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	in := uc.lastAnalyze
	if in.Period != model.PeriodWeek || len(in.Todos) != 1 {
		t.Fatalf("unexpected input: %+v", in)
	}
	task := in.Todos[0]
	if task.DueTime != "15:00" || task.CompletedAt == nil || task.CreatedAt.IsZero() {
		t.Errorf("unexpected task: %+v", task)
	}

	var resp struct {
		Data map[string]any `json:"data"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)
	if insights, ok := resp.Data["insights"].([]any); !ok || len(insights) != 0 {
		t.Errorf("nil insights should render as [], got %v", resp.Data["insights"])
	}
}
