package auth

import (
	"context"

	"smart-todo/internal/model"
	"smart-todo/pkg/supabase"
)

// UseCase manages the cookie session of a browser. Every state change is
// reported on the backend's AuthEvents bus.
//
//go:generate mockery --name UseCase
type UseCase interface {
	SignIn(ctx context.Context, cookies supabase.CookieStore, input SignInInput) (SessionOutput, error)
	Refresh(ctx context.Context, cookies supabase.CookieStore) (SessionOutput, error)
	SignOut(ctx context.Context, cookies supabase.CookieStore) error

	// Focus tells the caller's workspace that the tab regained focus.
	Focus(ctx context.Context, sc model.Scope)
}
