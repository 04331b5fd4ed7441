package middleware

import (
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"smart-todo/pkg/response"
)

// Recovery turns a panic into a JSON 500.
func (m Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				m.l.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s: %v\n%s", c.Request.Method, c.Request.URL.Path, r, debug.Stack())
				response.InternalError(c)
			}
		}()
		c.Next()
	}
}
