package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the session endpoints under /auth. Login, refresh and
// logout work from cookies alone; focus and me need a verified caller.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	a := rg.Group("/auth")
	{
		a.POST("/login", h.Login)
		a.POST("/refresh", h.Refresh)
		a.POST("/logout", h.Logout)
		a.POST("/focus", mw.Auth(), h.Focus)
		a.GET("/me", mw.Auth(), h.Me)
	}
}
