package http

import (
	"github.com/gin-gonic/gin"

	"smart-todo/internal/profile"
	"smart-todo/pkg/log"
)

// Handler is the public interface for the profile HTTP delivery layer.
type Handler interface {
	Get(c *gin.Context)
	Update(c *gin.Context)
}

type handler struct {
	l           log.Logger
	uc          profile.UseCase
	withDetails bool
}

// New creates a new HTTP handler for the profile domain.
func New(l log.Logger, uc profile.UseCase, withDetails bool) Handler {
	return &handler{l: l, uc: uc, withDetails: withDetails}
}
