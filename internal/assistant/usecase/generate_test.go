package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/pkg/gemini"
	"smart-todo/pkg/llmprovider"
)

func TestGenerateTodo_InvalidInputNeverCallsModel(t *testing.T) {
	client := &mockGeminiClient{text: `{"title":"x","priority":"low"}`}
	uc := newTestUseCase(newManager(client), newManager(client), assistant.PastDueClamp)

	inputs := []string{"", "a", strings.Repeat("가", 501), "%%%%%%"}
	for _, in := range inputs {
		if _, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: in}); err == nil {
			t.Errorf("GenerateTodo(%q) expected error", in)
		}
	}
	if client.calls != 0 {
		t.Errorf("model called %d times, want 0", client.calls)
	}
}

func TestGenerateTodo_RelativeDateAndTime(t *testing.T) {
	client := &mockGeminiClient{text: "```json\n" + `{
		"title": "팀 회의 준비",
		"description": null,
		"due_date": "2025-06-11",
		"due_time": "15:00",
		"priority": "medium",
		"category": "업무"
	}` + "\n```"}
	uc := newTestUseCase(newManager(client), newManager(client), assistant.PastDueClamp)

	draft, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: "내일 오후 3시까지 팀 회의 준비"})
	if err != nil {
		t.Fatalf("GenerateTodo: %v", err)
	}

	if draft.DueDate != "2025-06-11" || draft.DueTime != "15:00" {
		t.Errorf("due = %s %s, want 2025-06-11 15:00", draft.DueDate, draft.DueTime)
	}
	if !draft.Priority.Valid() {
		t.Errorf("priority %q is not valid", draft.Priority)
	}
	if n := utf8.RuneCountInString(draft.Title); n < 1 || n > 100 {
		t.Errorf("title length %d out of range", n)
	}
	if draft.Description != "" || draft.Category != "업무" {
		t.Errorf("unexpected draft: %+v", draft)
	}

	if !strings.Contains(client.lastText, "내일 오후 3시까지 팀 회의 준비") {
		t.Errorf("prompt does not repeat the input text")
	}
	if !strings.Contains(client.lastText, "2025-06-10 화요일") {
		t.Errorf("prompt does not anchor today")
	}
	if !strings.Contains(client.lastText, "\"내일\" → 2025-06-11") {
		t.Errorf("prompt does not resolve 내일")
	}
}

func TestGenerateTodo_PastDateFromModelIsClamped(t *testing.T) {
	client := &mockGeminiClient{text: `{"title":"어제 일","due_date":"2025-06-09","priority":"high"}`}
	uc := newTestUseCase(newManager(client), nil, assistant.PastDueClamp)

	draft, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: "어제 못한 일 하기"})
	if err != nil {
		t.Fatalf("GenerateTodo: %v", err)
	}
	if draft.DueDate != "2025-06-10" {
		t.Errorf("due date = %q, want 2025-06-10", draft.DueDate)
	}
}

func TestGenerateTodo_FallsBackOnUnavailableModel(t *testing.T) {
	first := &mockGeminiClient{
		model: "gemini-2.5-flash",
		err:   &gemini.APIError{StatusCode: http.StatusNotFound, Status: "NOT_FOUND", Message: "models/gemini-2.5-flash is not found"},
	}
	second := &mockGeminiClient{model: "gemini-2.0-flash", text: `{"title":"second","priority":"low"}`}
	third := &mockGeminiClient{model: "gemini-1.5-flash", text: `{"title":"third","priority":"low"}`}

	uc := newTestUseCase(newManager(first, second, third), nil, assistant.PastDueClamp)

	draft, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: "장보기"})
	if err != nil {
		t.Fatalf("GenerateTodo: %v", err)
	}
	if draft.Title != "second" {
		t.Errorf("title = %q, want second", draft.Title)
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Errorf("calls = %d/%d/%d, want 1/1/0", first.calls, second.calls, third.calls)
	}
}

func TestGenerateTodo_QuotaDoesNotFallBack(t *testing.T) {
	first := &mockGeminiClient{err: &gemini.APIError{StatusCode: http.StatusTooManyRequests, Status: "RESOURCE_EXHAUSTED"}}
	second := &mockGeminiClient{text: `{"title":"x","priority":"low"}`}

	uc := newTestUseCase(newManager(first, second), nil, assistant.PastDueClamp)

	_, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: "장보기"})
	if llmprovider.Classify(err) != llmprovider.KindQuota {
		t.Fatalf("expected quota error, got %v", err)
	}
	if second.calls != 0 {
		t.Errorf("second model must not be called")
	}
}

func TestGenerateTodo_SchemaMismatch(t *testing.T) {
	client := &mockGeminiClient{text: `{"description":"no title"}`}
	uc := newTestUseCase(newManager(client), nil, assistant.PastDueClamp)

	_, err := uc.GenerateTodo(context.Background(), assistant.GenerateInput{Text: "장보기"})
	if !errors.Is(err, llmprovider.ErrSchemaMismatch) {
		t.Errorf("expected ErrSchemaMismatch, got %v", err)
	}
}

func TestNormalizeDraft_Exported(t *testing.T) {
	uc := newTestUseCase(nil, nil, assistant.PastDueClamp)
	got := uc.NormalizeDraft(model.TodoDraft{Title: " x ", Priority: "?"})
	if got.Title != "x" || got.Priority != model.PriorityMedium {
		t.Errorf("NormalizeDraft = %+v", got)
	}
}
