package supabase

import (
	"context"

	"github.com/supabase-community/gotrue-go/types"
)

// GetUser returns the user owning the current access token.
func (c *Client) GetUser(ctx context.Context) (*User, error) {
	if c.AccessToken() == "" {
		return nil, ErrNotAuthenticated
	}

	var user User
	err := c.withRefresh(ctx, func(x *exchange, token string) error {
		resp, err := c.auth(x, token).GetUser()
		if err != nil {
			return x.wrap("get user", err)
		}
		user = userFrom(&resp.User)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SignInWithPassword exchanges credentials for a session and stores it.
func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	x := c.newExchange(ctx)
	resp, err := c.auth(x, "").SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, x.wrap("sign in", err)
	}

	session := sessionFrom(resp)
	c.setSession(session)
	c.cfg.Events.Emit(AuthChange{Event: EventSignedIn, UserID: session.User.ID, Session: session})
	return session, nil
}

// RefreshSession trades the stored refresh token for a new session.
func (c *Client) RefreshSession(ctx context.Context) (*Session, error) {
	c.mu.RLock()
	refreshToken := c.refreshToken
	c.mu.RUnlock()
	if refreshToken == "" {
		return nil, ErrNoRefreshToken
	}

	x := c.newExchange(ctx)
	resp, err := c.auth(x, "").RefreshToken(refreshToken)
	if err != nil {
		return nil, x.wrap("refresh session", err)
	}

	session := sessionFrom(resp)
	c.setSession(session)
	c.cfg.Events.Emit(AuthChange{Event: EventTokenRefreshed, UserID: session.User.ID, Session: session})
	return session, nil
}

// SignOut revokes the session upstream and clears local state.
// Local state is cleared even when the upstream call fails.
func (c *Client) SignOut(ctx context.Context, userID string) error {
	var err error
	if token := c.AccessToken(); token != "" {
		x := c.newExchange(ctx)
		err = x.wrap("sign out", c.auth(x, token).Logout())
	}

	c.clearSession()
	c.cfg.Events.Emit(AuthChange{Event: EventSignedOut, UserID: userID})
	return err
}

func sessionFrom(resp *types.TokenResponse) *Session {
	return &Session{
		AccessToken:  resp.AccessToken,
		TokenType:    resp.TokenType,
		ExpiresIn:    resp.ExpiresIn,
		ExpiresAt:    resp.ExpiresAt,
		RefreshToken: resp.RefreshToken,
		User:         userFrom(&resp.User),
	}
}

func userFrom(u *types.User) User {
	return User{
		ID:           u.ID.String(),
		Email:        u.Email,
		Role:         u.Role,
		CreatedAt:    u.CreatedAt,
		UserMetadata: u.UserMetadata,
	}
}
