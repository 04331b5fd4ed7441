package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
	sb "smart-todo/pkg/supabase"
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

var scope = model.Scope{UserID: "u1", AccessToken: "token-u1"}

const storedRow = `{
	"id":"t1","user_id":"u1","title":"보고서","description":null,
	"due_date":"2025-06-11","due_time":"15:00:00","priority":"high","category":"업무",
	"completed":false,"completed_at":null,
	"created_at":"2025-06-10T01:00:00.123456+00:00","updated_at":"2025-06-10T01:00:00+00:00"
}`

type recorded struct {
	method string
	query  map[string][]string
	prefer string
	accept string
	body   map[string]any
}

func newServer(t *testing.T, status int, reply string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/todos" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-u1" {
			t.Errorf("caller token not forwarded: %q", r.Header.Get("Authorization"))
		}
		rec.method = r.Method
		rec.query = r.URL.Query()
		rec.prefer = r.Header.Get("Prefer")
		rec.accept = r.Header.Get("Accept")
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			json.Unmarshal(raw, &rec.body)
		}
		w.WriteHeader(status)
		io.WriteString(w, reply)
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newRepo(url string) repo.Repository {
	return New(sb.Config{URL: url, AnonKey: "anon"}, &mockLogger{})
}

func TestListTasks(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "["+storedRow+"]")

	done := false
	tasks, err := newRepo(srv.URL).ListTasks(context.Background(), scope, repo.ListTasksOptions{Completed: &done, Limit: 50})
	if err != nil {
		t.Fatalf("ListTasks: %v", err)
	}
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}

	got := tasks[0]
	if got.ID != "t1" || got.DueTime != "15:00" || got.Description != "" || got.Priority != model.PriorityHigh {
		t.Errorf("unexpected task: %+v", got)
	}
	if got.CreatedAt.IsZero() || got.CompletedAt != nil {
		t.Errorf("unexpected timestamps: %+v", got)
	}

	if rec.query["user_id"][0] != "eq.u1" || rec.query["completed"][0] != "eq.false" {
		t.Errorf("missing filters: %v", rec.query)
	}
	if rec.query["order"][0] != "created_at.desc.nullslast" || rec.query["limit"][0] != "50" {
		t.Errorf("unexpected order/limit: %v", rec.query)
	}
}

func TestCreateTask_SendsNullsAndOwner(t *testing.T) {
	srv, rec := newServer(t, http.StatusCreated, storedRow)

	task, err := newRepo(srv.URL).CreateTask(context.Background(), scope, repo.CreateTaskOptions{
		Title:    "보고서",
		DueDate:  "2025-06-11",
		DueTime:  "15:00",
		Priority: model.PriorityHigh,
		Category: "업무",
	})
	if err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	if task.ID != "t1" {
		t.Errorf("unexpected task: %+v", task)
	}

	if rec.method != http.MethodPost || rec.prefer != "return=representation" {
		t.Errorf("unexpected request: %s prefer=%q", rec.method, rec.prefer)
	}
	if rec.accept != "application/vnd.pgrst.object+json" {
		t.Errorf("expected single-object accept header, got %q", rec.accept)
	}
	if rec.body["user_id"] != "u1" {
		t.Errorf("owner not sent: %v", rec.body)
	}
	if v, ok := rec.body["description"]; !ok || v != nil {
		t.Errorf("empty description should be sent as null, got %v", v)
	}
	if _, ok := rec.body["id"]; ok {
		t.Errorf("id must be assigned by the backend")
	}
}

func TestGetOneTask_NotFoundIsZero(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned","details":"The result contains 0 rows","hint":null}`)

	task, err := newRepo(srv.URL).GetOneTask(context.Background(), scope, "missing")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if task.ID != "" {
		t.Errorf("expected zero task, got %+v", task)
	}
}

func TestUpdateTask(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		srv, rec := newServer(t, http.StatusOK, "["+storedRow+"]")

		task, err := newRepo(srv.URL).UpdateTask(context.Background(), scope, repo.UpdateTaskOptions{ID: "t1", Title: "보고서", Priority: model.PriorityHigh})
		if err != nil || task.ID != "t1" {
			t.Fatalf("UpdateTask: %+v, %v", task, err)
		}
		if rec.method != http.MethodPatch || rec.query["id"][0] != "eq.t1" {
			t.Errorf("unexpected request: %s %v", rec.method, rec.query)
		}
		if _, ok := rec.body["user_id"]; ok {
			t.Errorf("owner must not be patched")
		}
	})

	t.Run("no rows", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusOK, "[]")

		task, err := newRepo(srv.URL).UpdateTask(context.Background(), scope, repo.UpdateTaskOptions{ID: "other"})
		if err != nil || task.ID != "" {
			t.Errorf("expected zero task without error, got %+v, %v", task, err)
		}
	})
}

func TestDeleteTask(t *testing.T) {
	srv, rec := newServer(t, http.StatusNoContent, "")

	if err := newRepo(srv.URL).DeleteTask(context.Background(), scope, "t1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	if rec.method != http.MethodDelete || rec.query["user_id"][0] != "eq.u1" {
		t.Errorf("unexpected request: %s %v", rec.method, rec.query)
	}
}

func TestErrors(t *testing.T) {
	t.Run("expired session", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnauthorized, `{"code":"PGRST303","message":"JWT expired","details":null,"hint":null}`)

		_, err := newRepo(srv.URL).ListTasks(context.Background(), scope, repo.ListTasksOptions{})
		if !errors.Is(err, repo.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `{"message":"boom"}`)

		err := newRepo(srv.URL).DeleteTask(context.Background(), scope, "t1")
		if !errors.Is(err, repo.ErrFailedToDelete) {
			t.Errorf("expected ErrFailedToDelete, got %v", err)
		}
	})
}
