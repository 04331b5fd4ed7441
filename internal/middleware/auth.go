package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"smart-todo/internal/model"
	"smart-todo/pkg/response"
	"smart-todo/pkg/supabase"
)

var errInvalidClaims = errors.New("token has no subject")

// accessClaims is the part of a Supabase access token we rely on.
type accessClaims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Auth requires a valid Supabase session from the Authorization header or the
// access cookie. An expired cookie session is refreshed once and the new
// tokens are written back as cookies.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		token, fromCookie := m.accessToken(c)
		if token == "" && !m.hasRefreshCookie(c) {
			response.Unauthorized(c)
			return
		}

		var (
			sc  model.Scope
			err error
		)
		if m.jwtSecret != nil {
			sc, err = m.verifyLocal(token)
			if errors.Is(err, jwt.ErrTokenExpired) || (token == "" && err != nil) {
				sc, err = m.refresh(ctx, c)
			}
		} else {
			sc, err = m.verifyRemote(ctx, c, token, fromCookie)
		}
		if err != nil {
			m.l.Debugf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

func (m Middleware) accessToken(c *gin.Context) (token string, fromCookie bool) {
	if h := c.GetHeader("Authorization"); h != "" {
		if scheme, value, ok := strings.Cut(h, " "); ok && strings.EqualFold(scheme, "Bearer") {
			return strings.TrimSpace(value), false
		}
	}
	if v, ok := supabase.GinCookies(c).Get(m.cookieName()); ok {
		return v, true
	}
	return "", false
}

func (m Middleware) cookieName() string {
	if m.supabase.AccessCookieName != "" {
		return m.supabase.AccessCookieName
	}
	return supabase.DefaultAccessCookie
}

func (m Middleware) hasRefreshCookie(c *gin.Context) bool {
	name := m.supabase.RefreshCookieName
	if name == "" {
		name = supabase.DefaultRefreshCookie
	}
	_, ok := supabase.GinCookies(c).Get(name)
	return ok
}

// verifyLocal checks an HS256 token signed with the project JWT secret.
func (m Middleware) verifyLocal(token string) (model.Scope, error) {
	var claims accessClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return m.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return model.Scope{}, err
	}
	if claims.Subject == "" {
		return model.Scope{}, errInvalidClaims
	}

	return model.Scope{UserID: claims.Subject, Email: claims.Email, AccessToken: token}, nil
}

// refresh trades the refresh cookie for a new session.
func (m Middleware) refresh(ctx context.Context, c *gin.Context) (model.Scope, error) {
	client, err := supabase.NewServerClient(m.supabase, supabase.GinCookies(c))
	if err != nil {
		return model.Scope{}, err
	}
	session, err := client.RefreshSession(ctx)
	if err != nil {
		return model.Scope{}, err
	}
	return model.Scope{UserID: session.User.ID, Email: session.User.Email, AccessToken: session.AccessToken}, nil
}

// verifyRemote asks the auth server who owns the token.
// Cookie sessions may be refreshed on the way.
func (m Middleware) verifyRemote(ctx context.Context, c *gin.Context, token string, fromCookie bool) (model.Scope, error) {
	var (
		client *supabase.Client
		err    error
	)
	if fromCookie || token == "" {
		client, err = supabase.NewServerClient(m.supabase, supabase.GinCookies(c))
	} else {
		client, err = supabase.NewClient(m.supabase, token)
	}
	if err != nil {
		return model.Scope{}, err
	}

	if token == "" {
		if _, err := client.RefreshSession(ctx); err != nil {
			return model.Scope{}, err
		}
	}

	user, err := client.GetUser(ctx)
	if err != nil {
		return model.Scope{}, err
	}
	return model.Scope{UserID: user.ID, Email: user.Email, AccessToken: client.AccessToken()}, nil
}
