package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"smart-todo/internal/auth"
	"smart-todo/internal/model"
	"smart-todo/pkg/supabase"
)

func (uc *implUseCase) SignIn(ctx context.Context, cookies supabase.CookieStore, input auth.SignInInput) (auth.SessionOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return auth.SessionOutput{}, auth.ErrEmailRequired
	}
	if input.Password == "" {
		return auth.SessionOutput{}, auth.ErrPasswordRequired
	}

	client, err := supabase.NewServerClient(uc.cfg, cookies)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignIn NewServerClient: %v", err)
		return auth.SessionOutput{}, err
	}

	session, err := client.SignInWithPassword(ctx, email, input.Password)
	if err != nil {
		if isRejected(err) {
			return auth.SessionOutput{}, auth.ErrInvalidCredentials
		}
		uc.l.Errorf(ctx, "auth.usecase.SignIn SignInWithPassword: %v", err)
		return auth.SessionOutput{}, err
	}
	return uc.output(session), nil
}

func (uc *implUseCase) Refresh(ctx context.Context, cookies supabase.CookieStore) (auth.SessionOutput, error) {
	client, err := supabase.NewServerClient(uc.cfg, cookies)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.Refresh NewServerClient: %v", err)
		return auth.SessionOutput{}, err
	}

	session, err := client.RefreshSession(ctx)
	if err != nil {
		if errors.Is(err, supabase.ErrNoRefreshToken) || isRejected(err) {
			return auth.SessionOutput{}, auth.ErrNoSession
		}
		uc.l.Errorf(ctx, "auth.usecase.Refresh RefreshSession: %v", err)
		return auth.SessionOutput{}, err
	}
	return uc.output(session), nil
}

// SignOut revokes the session and clears the cookies. The user is looked up
// first so that SIGNED_OUT reaches their workspace; a dead token still signs out.
func (uc *implUseCase) SignOut(ctx context.Context, cookies supabase.CookieStore) error {
	client, err := supabase.NewServerClient(uc.cfg, cookies)
	if err != nil {
		uc.l.Errorf(ctx, "auth.usecase.SignOut NewServerClient: %v", err)
		return err
	}

	var userID string
	if user, err := client.GetUser(ctx); err == nil {
		userID = user.ID
	}

	if err := client.SignOut(ctx, userID); err != nil {
		// Cookies are already gone; the upstream revoke is best effort.
		uc.l.Warnf(ctx, "auth.usecase.SignOut SignOut: %v", err)
	}
	return nil
}

func (uc *implUseCase) Focus(ctx context.Context, sc model.Scope) {
	uc.cfg.Events.Emit(supabase.AuthChange{Event: supabase.EventFocus, UserID: sc.UserID})
}

func (uc *implUseCase) output(s *supabase.Session) auth.SessionOutput {
	out := auth.SessionOutput{UserID: s.User.ID, Email: s.User.Email}
	switch {
	case s.ExpiresAt > 0:
		out.ExpiresAt = time.Unix(s.ExpiresAt, 0).UTC()
	case s.ExpiresIn > 0:
		out.ExpiresAt = uc.now().Add(time.Duration(s.ExpiresIn) * time.Second).UTC()
	}
	return out
}

// isRejected reports a GoTrue 4xx answer about the credentials themselves.
func isRejected(err error) bool {
	var sbErr *supabase.Error
	if !errors.As(err, &sbErr) {
		return false
	}
	return sbErr.StatusCode == http.StatusBadRequest || sbErr.StatusCode == http.StatusUnauthorized
}
