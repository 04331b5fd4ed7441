package httpserver

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	assistantHTTP "smart-todo/internal/assistant/delivery/http"
	authHTTP "smart-todo/internal/auth/delivery/http"
	"smart-todo/internal/middleware"
	profileHTTP "smart-todo/internal/profile/delivery/http"
	todoHTTP "smart-todo/internal/todo/delivery/http"
	"smart-todo/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin          *gin.Engine
	l            log.Logger
	port         int
	mode         string
	environment  string
	readTimeout  time.Duration
	writeTimeout time.Duration
	origins      []string

	mw    middleware.Middleware
	ready func(ctx context.Context) error

	// Domains
	assistantHandler assistantHTTP.Handler
	todoHandler      todoHTTP.Handler
	profileHandler   profileHTTP.Handler
	authHandler      authHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger       log.Logger
	Port         int
	Mode         string
	Environment  string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// AllowedOrigins are the browser origins allowed to send credentialed requests.
	AllowedOrigins []string

	Middleware middleware.Middleware

	// Ready reports whether the storage backend is reachable. Optional.
	Ready func(ctx context.Context) error

	AssistantHandler assistantHTTP.Handler
	TodoHandler      todoHTTP.Handler
	ProfileHandler   profileHTTP.Handler
	AuthHandler      authHTTP.Handler
}

// New creates a new HTTPServer instance and registers every route.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		readTimeout:      cfg.ReadTimeout,
		writeTimeout:     cfg.WriteTimeout,
		origins:          cfg.AllowedOrigins,
		mw:               cfg.Middleware,
		ready:            cfg.Ready,
		assistantHandler: cfg.AssistantHandler,
		todoHandler:      cfg.TodoHandler,
		profileHandler:   cfg.ProfileHandler,
		authHandler:      cfg.AuthHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.assistantHandler == nil {
		return errors.New("assistant handler is required")
	}
	return nil
}
