package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

func ptr[T any](v T) *T { return &v }

func TestCreate_Validation(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockAssistant{}, time.Hour)
	ctx := context.Background()

	tests := []struct {
		name  string
		input todo.CreateInput
		want  error
	}{
		{"blank title", todo.CreateInput{Title: "   "}, todo.ErrTitleRequired},
		{"long title", todo.CreateInput{Title: string(make([]rune, 101))}, todo.ErrTitleTooLong},
		{"bad priority", todo.CreateInput{Title: "x", Priority: "urgent"}, todo.ErrInvalidPriority},
		{"bad date", todo.CreateInput{Title: "x", DueDate: "2025-02-30"}, todo.ErrInvalidDueDate},
		{"bad time", todo.CreateInput{Title: "x", DueDate: "2025-06-11", DueTime: "25:00"}, todo.ErrInvalidDueTime},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Create(ctx, alice, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreate_DefaultsAndCache(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &mockAssistant{}, time.Hour)
	ctx := context.Background()

	if _, err := uc.List(ctx, alice, todo.ListInput{}); err != nil {
		t.Fatalf("List: %v", err)
	}

	task, err := uc.Create(ctx, alice, todo.CreateInput{Title: "  장보기  ", Category: " 쇼핑 "})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if task.Title != "장보기" || task.Category != "쇼핑" || task.Priority != model.PriorityMedium {
		t.Errorf("unexpected task: %+v", task)
	}

	tasks, _ := uc.List(ctx, alice, todo.ListInput{})
	if len(tasks) != 1 || tasks[0].ID != task.ID {
		t.Errorf("created task should be visible without a reload, got %+v", tasks)
	}
}

func TestUpdate_Partial(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &mockAssistant{}, time.Hour)
	ctx := context.Background()

	created, _ := uc.Create(ctx, alice, todo.CreateInput{Title: "보고서", Description: "초안", DueDate: "2025-06-11", Priority: model.PriorityHigh})

	updated, err := uc.Update(ctx, alice, todo.UpdateInput{ID: created.ID, Title: ptr("최종 보고서"), Description: ptr("")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Title != "최종 보고서" || updated.Description != "" || updated.DueDate != "2025-06-11" || updated.Priority != model.PriorityHigh {
		t.Errorf("unexpected update: %+v", updated)
	}

	if _, err := uc.Update(ctx, alice, todo.UpdateInput{ID: created.ID, Priority: ptr(model.Priority("urgent"))}); !errors.Is(err, todo.ErrInvalidPriority) {
		t.Errorf("expected ErrInvalidPriority, got %v", err)
	}
	if _, err := uc.Update(ctx, model.Scope{UserID: "mallory"}, todo.UpdateInput{ID: created.ID, Title: ptr("x")}); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("other users must not see the task, got %v", err)
	}
}

func TestToggleComplete(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &mockAssistant{}, time.Hour)
	ctx := context.Background()

	created, _ := uc.Create(ctx, alice, todo.CreateInput{Title: "운동"})

	done, err := uc.ToggleComplete(ctx, alice, created.ID)
	if err != nil {
		t.Fatalf("ToggleComplete: %v", err)
	}
	if !done.Completed || done.CompletedAt == nil || !done.CompletedAt.Equal(fixedNow()) {
		t.Errorf("completion not stamped: %+v", done)
	}

	again, _ := uc.ToggleComplete(ctx, alice, created.ID)
	if again.Completed || again.CompletedAt != nil {
		t.Errorf("reopening should clear the stamp: %+v", again)
	}

	if _, err := uc.ToggleComplete(ctx, alice, "missing"); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDeleteAndRestore(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &mockAssistant{}, time.Hour)
	ctx := context.Background()

	a, _ := uc.Create(ctx, alice, todo.CreateInput{Title: "a"})
	b, _ := uc.Create(ctx, alice, todo.CreateInput{Title: "b"})

	out, err := uc.Delete(ctx, alice, a.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if out.ID != a.ID || out.UndoUntil.IsZero() {
		t.Errorf("unexpected output: %+v", out)
	}

	tasks, _ := uc.List(ctx, alice, todo.ListInput{Refresh: true})
	if len(tasks) != 1 || tasks[0].ID != b.ID {
		t.Errorf("pending task must stay hidden after a reload, got %+v", tasks)
	}

	if err := uc.Restore(ctx, alice, a.ID); err != nil {
		t.Fatalf("Restore: %v", err)
	}
	tasks, _ = uc.List(ctx, alice, todo.ListInput{})
	if len(tasks) != 2 {
		t.Errorf("restored task should be visible, got %+v", tasks)
	}
	if len(r.deleted) != 0 {
		t.Errorf("nothing should reach the backend, got %v", r.deleted)
	}

	if err := uc.Restore(ctx, alice, a.ID); !errors.Is(err, todo.ErrNotPendingDelete) {
		t.Errorf("expected ErrNotPendingDelete, got %v", err)
	}
	if _, err := uc.Delete(ctx, alice, "missing"); !errors.Is(err, todo.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete_Commits(t *testing.T) {
	r := &mockRepo{}
	uc := newTestUseCase(r, &mockAssistant{}, 10*time.Millisecond)
	ctx := context.Background()

	a, _ := uc.Create(ctx, alice, todo.CreateInput{Title: "a"})
	if _, err := uc.Delete(ctx, alice, a.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for {
		r.mu.Lock()
		n := len(r.deleted)
		r.mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("delete was never committed")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestApproveDraft(t *testing.T) {
	uc := newTestUseCase(&mockRepo{}, &mockAssistant{}, time.Hour)

	task, err := uc.ApproveDraft(context.Background(), alice, model.TodoDraft{Title: "", Priority: "??", DueDate: "2025-06-11", DueTime: "15:00"})
	if err != nil {
		t.Fatalf("ApproveDraft: %v", err)
	}
	if task.Title != "새 할 일" || task.Priority != model.PriorityMedium || task.DueTime != "15:00" {
		t.Errorf("draft not normalized: %+v", task)
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("empty period never calls the assistant", func(t *testing.T) {
		r := &mockRepo{rows: []model.Task{{ID: "old", UserID: "alice", DueDate: "2025-05-01"}}}
		a := &mockAssistant{}
		uc := newTestUseCase(r, a, time.Hour)

		if _, err := uc.Analyze(ctx, alice, model.PeriodToday); !errors.Is(err, todo.ErrNoTodosInPeriod) {
			t.Errorf("expected ErrNoTodosInPeriod, got %v", err)
		}
		if a.analyzeCalls != 0 {
			t.Errorf("assistant called %d times", a.analyzeCalls)
		}
	})

	t.Run("invalid period", func(t *testing.T) {
		uc := newTestUseCase(&mockRepo{}, &mockAssistant{}, time.Hour)
		if _, err := uc.Analyze(ctx, alice, "month"); !errors.Is(err, assistant.ErrInvalidPeriod) {
			t.Errorf("expected ErrInvalidPeriod, got %v", err)
		}
	})

	t.Run("filters to the week", func(t *testing.T) {
		r := &mockRepo{rows: []model.Task{
			{ID: "today", UserID: "alice", DueDate: "2025-06-10"},
			{ID: "saturday", UserID: "alice", DueDate: "2025-06-14"},
			{ID: "next-week", UserID: "alice", DueDate: "2025-06-16"},
			{ID: "bob", UserID: "bob", DueDate: "2025-06-10"},
		}}
		a := &mockAssistant{result: model.AnalysisResult{Summary: "ok"}}
		uc := newTestUseCase(r, a, time.Hour)

		got, err := uc.Analyze(ctx, alice, model.PeriodWeek)
		if err != nil || got.Summary != "ok" {
			t.Fatalf("Analyze: %+v, %v", got, err)
		}
		if a.lastInput.Period != model.PeriodWeek || len(a.lastInput.Todos) != 2 {
			t.Errorf("unexpected assistant input: %+v", a.lastInput)
		}
	})
}

func TestList_BackendError(t *testing.T) {
	boom := errors.New("boom")
	uc := newTestUseCase(&mockRepo{err: boom}, &mockAssistant{}, time.Hour)

	if _, err := uc.List(context.Background(), alice, todo.ListInput{}); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
