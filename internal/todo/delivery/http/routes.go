package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/middleware"
)

// RegisterRoutes maps the todo endpoints under /todos. Every route needs a
// session; analyze also spends model quota and shares the AI limiter.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	todos := rg.Group("/todos", mw.Auth())
	{
		todos.GET("", h.List)
		todos.POST("", h.Create)
		todos.POST("/drafts", h.ApproveDraft)
		todos.POST("/analyze", mw.RateLimit(), h.Analyze)
		todos.PATCH("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
		todos.POST("/:id/toggle", h.Toggle)
		todos.POST("/:id/restore", h.Restore)
	}
}
