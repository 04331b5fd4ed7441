package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/auth"
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Refresh(c *gin.Context)
	Logout(c *gin.Context)
	Focus(c *gin.Context)
	Me(c *gin.Context)
}

// CookieFactory adapts a request to the backend's cookie store.
type CookieFactory func(c *gin.Context) supabase.CookieStore

type handler struct {
	l           log.Logger
	uc          auth.UseCase
	cookies     CookieFactory
	withDetails bool
}

// New creates a new HTTP handler for sessions. Cookies are read from and
// written to the gin context.
func New(l log.Logger, uc auth.UseCase, withDetails bool) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		cookies:     supabase.GinCookies,
		withDetails: withDetails,
	}
}
