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
	repo "smart-todo/internal/profile/repository"
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

const storedRow = `{"id":"u1","email":"a@b.c","display_name":"민지","avatar_url":null,
	"created_at":"2025-06-01T00:00:00+00:00","updated_at":null}`

type recorded struct {
	method string
	query  map[string][]string
	body   map[string]any
}

func newServer(t *testing.T, status int, reply string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/v1/profiles" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer token-u1" {
			t.Errorf("caller token not forwarded: %q", r.Header.Get("Authorization"))
		}
		rec.method = r.Method
		rec.query = r.URL.Query()
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

func TestGetProfile(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, storedRow)

	p, err := newRepo(srv.URL).GetProfile(context.Background(), scope)
	if err != nil {
		t.Fatalf("GetProfile: %v", err)
	}
	if p.ID != "u1" || p.DisplayName != "민지" || p.AvatarURL != "" || p.CreatedAt.IsZero() {
		t.Errorf("unexpected profile: %+v", p)
	}
	if got := rec.query["id"]; len(got) != 1 || got[0] != "eq.u1" {
		t.Errorf("id filter = %v", got)
	}
}

func TestGetProfile_Missing(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotAcceptable, `{"code":"PGRST116","message":"JSON object requested, multiple (or no) rows returned"}`)

	p, err := newRepo(srv.URL).GetProfile(context.Background(), scope)
	if err != nil || p.ID != "" {
		t.Errorf("expected zero profile, got %+v, %v", p, err)
	}
}

func TestUpdateProfile_OnlySentKeys(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "["+storedRow+"]")

	empty := ""
	_, err := newRepo(srv.URL).UpdateProfile(context.Background(), scope, repo.UpdateProfileOptions{AvatarURL: &empty})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if rec.method != http.MethodPatch {
		t.Errorf("method = %s", rec.method)
	}
	if v, ok := rec.body["avatar_url"]; !ok || v != nil {
		t.Errorf("avatar_url should be sent as null, got %v (present=%v)", v, ok)
	}
	if _, ok := rec.body["display_name"]; ok {
		t.Errorf("display_name must not be sent")
	}
	if _, ok := rec.body["updated_at"]; !ok {
		t.Errorf("updated_at must be stamped")
	}
}

func TestUpdateProfile_NoRows(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, "[]")

	name := "x"
	p, err := newRepo(srv.URL).UpdateProfile(context.Background(), scope, repo.UpdateProfileOptions{DisplayName: &name})
	if err != nil || p.ID != "" {
		t.Errorf("expected zero profile, got %+v, %v", p, err)
	}
}

func TestErrors(t *testing.T) {
	t.Run("expired session", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusUnauthorized, `{"code":"PGRST303","message":"JWT expired"}`)
		if _, err := newRepo(srv.URL).GetProfile(context.Background(), scope); !errors.Is(err, repo.ErrUnauthorized) {
			t.Errorf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("server error", func(t *testing.T) {
		srv, _ := newServer(t, http.StatusInternalServerError, `{"message":"boom"}`)
		if _, err := newRepo(srv.URL).GetProfile(context.Background(), scope); !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}
