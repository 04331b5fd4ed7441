package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/assistant"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the assistant HTTP delivery layer.
type Handler interface {
	GenerateTodo(c *gin.Context)
	AnalyzeTodos(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          assistant.UseCase
	withDetails bool
}

// New creates a new HTTP handler for the assistant domain.
// withDetails exposes error causes in responses and is meant for development only.
func New(l log.Logger, uc assistant.UseCase, withDetails bool) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		withDetails: withDetails,
	}
}
