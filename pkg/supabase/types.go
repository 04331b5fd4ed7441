package supabase

import (
	"net/http"
	"time"
)

// Config configures access to a Supabase-compatible backend.
type Config struct {
	URL     string // project URL, e.g. https://xyz.supabase.co
	AnonKey string // public anon key sent as apikey on every call

	AccessCookieName  string
	RefreshCookieName string

	HTTPClient *http.Client
	Timeout    time.Duration

	// Events receives auth state changes. Optional.
	Events *AuthEvents
}

func (c *Config) validate() error {
	if c.URL == "" {
		return ErrMissingURL
	}
	if c.AccessCookieName == "" {
		c.AccessCookieName = DefaultAccessCookie
	}
	if c.RefreshCookieName == "" {
		c.RefreshCookieName = DefaultRefreshCookie
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: c.Timeout}
	}
	return nil
}

const (
	DefaultAccessCookie  = "sb-access-token"
	DefaultRefreshCookie = "sb-refresh-token"
	DefaultTimeout       = 15 * time.Second

	restPath = "/rest/v1"
	authPath = "/auth/v1"
)

// User is the GoTrue user object.
type User struct {
	ID           string         `json:"id"`
	Email        string         `json:"email"`
	Role         string         `json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UserMetadata map[string]any `json:"user_metadata,omitempty"`
}

// Session is the token pair returned by GoTrue.
type Session struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
	ExpiresAt    int64  `json:"expires_at"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}
