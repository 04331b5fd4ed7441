package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
	"smart-todo/internal/todo/workspace"
	"smart-todo/pkg/datemath"
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

// mockRepo is an in-memory repository keyed by owner.
type mockRepo struct {
	mu      sync.Mutex
	rows    []model.Task
	nextID  int
	err     error
	deleted []string
}

func (m *mockRepo) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.Task{}, m.err
	}
	m.nextID++
	t := model.Task{
		ID:          fmt.Sprintf("id-%d", m.nextID),
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: opt.Description,
		DueDate:     opt.DueDate,
		DueTime:     opt.DueTime,
		Priority:    opt.Priority,
		Category:    opt.Category,
		CreatedAt:   fixedNow(),
	}
	m.rows = append([]model.Task{t}, m.rows...)
	return t, nil
}

func (m *mockRepo) GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.Task{}, m.err
	}
	for _, t := range m.rows {
		if t.ID == id && t.UserID == sc.UserID {
			return t, nil
		}
	}
	return model.Task{}, nil
}

func (m *mockRepo) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	var out []model.Task
	for _, t := range m.rows {
		if t.UserID == sc.UserID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *mockRepo) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return model.Task{}, m.err
	}
	for i, t := range m.rows {
		if t.ID != opt.ID || t.UserID != sc.UserID {
			continue
		}
		t.Title = opt.Title
		t.Description = opt.Description
		t.DueDate = opt.DueDate
		t.DueTime = opt.DueTime
		t.Priority = opt.Priority
		t.Category = opt.Category
		t.Completed = opt.Completed
		t.CompletedAt = opt.CompletedAt
		m.rows[i] = t
		return t, nil
	}
	return model.Task{}, nil
}

func (m *mockRepo) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	for i, t := range m.rows {
		if t.ID == id && t.UserID == sc.UserID {
			m.rows = append(m.rows[:i], m.rows[i+1:]...)
			m.deleted = append(m.deleted, id)
			return nil
		}
	}
	return nil
}

// mockAssistant records analysis input and trims draft titles.
type mockAssistant struct {
	analyzeCalls int
	lastInput    assistant.AnalyzeInput
	result       model.AnalysisResult
}

func (m *mockAssistant) GenerateTodo(ctx context.Context, input assistant.GenerateInput) (model.TodoDraft, error) {
	return model.TodoDraft{}, nil
}

func (m *mockAssistant) AnalyzeTodos(ctx context.Context, input assistant.AnalyzeInput) (model.AnalysisResult, error) {
	m.analyzeCalls++
	m.lastInput = input
	return m.result, nil
}

func (m *mockAssistant) NormalizeDraft(d model.TodoDraft) model.TodoDraft {
	if d.Title == "" {
		d.Title = "새 할 일"
	}
	if !d.Priority.Valid() {
		d.Priority = model.PriorityMedium
	}
	return d
}

var kst = time.FixedZone("KST", 9*60*60)

// fixedNow is Tuesday 2025-06-10 10:00 KST.
func fixedNow() time.Time {
	return time.Date(2025, 6, 10, 10, 0, 0, 0, kst)
}

var alice = model.Scope{UserID: "alice", AccessToken: "token-a"}

func newTestUseCase(r *mockRepo, a *mockAssistant, deleteDelay time.Duration) *implUseCase {
	return &implUseCase{
		repo:       r,
		workspaces: workspace.NewRegistry(&mockLogger{}, r, nil, workspace.Options{DeleteDelay: deleteDelay}),
		assistant:  a,
		dates:      datemath.NewParserIn(kst),
		now:        fixedNow,
		l:          &mockLogger{},
	}
}
