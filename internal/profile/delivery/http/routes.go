package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the profile endpoints under /profile.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	p := rg.Group("/profile", mw.Auth())
	{
		p.GET("", h.Get)
		p.PATCH("", h.Update)
	}
}
