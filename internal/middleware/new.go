package middleware

import (
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

// Middleware bundles the gin middlewares shared by every domain.
type Middleware struct {
	l         log.Logger
	supabase  supabase.Config
	jwtSecret []byte
	limiter   *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	Supabase supabase.Config
	// JWTSecret verifies access tokens locally. Empty means every token is
	// checked against the auth server instead.
	JWTSecret string
	// AIRequestsPerMin limits model-backed endpoints per user. Zero disables it.
	AIRequestsPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{
		l:        l,
		supabase: cfg.Supabase,
	}
	if cfg.JWTSecret != "" {
		mw.jwtSecret = []byte(cfg.JWTSecret)
	}
	if cfg.AIRequestsPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.AIRequestsPerMin)
	}
	return mw
}
