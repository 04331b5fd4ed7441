package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the assistant endpoints under /ai.
// Both calls spend model quota, so they sit behind Auth and the per-user limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	ai := rg.Group("/ai", mw.Auth(), mw.RateLimit())
	{
		ai.POST("/generate-todo", h.GenerateTodo)
		ai.POST("/analyze-todos", h.AnalyzeTodos)
	}
}
