package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/todo"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the todo HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Create(c *gin.Context)
	Update(c *gin.Context)
	Toggle(c *gin.Context)
	Delete(c *gin.Context)
	Restore(c *gin.Context)
	ApproveDraft(c *gin.Context)
	Analyze(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          todo.UseCase
	withDetails bool
}

// New creates a new HTTP handler for the todo domain.
func New(l log.Logger, uc todo.UseCase, withDetails bool) Handler {
	return &handler{
		l:           l,
		uc:          uc,
		withDetails: withDetails,
	}
}
