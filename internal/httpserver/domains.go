package httpserver

import (
	"context"

	assistantHTTP "smart-todo/internal/assistant/delivery/http"
	authHTTP "smart-todo/internal/auth/delivery/http"
	profileHTTP "smart-todo/internal/profile/delivery/http"
	todoHTTP "smart-todo/internal/todo/delivery/http"
)

// registerDomainRoutes mounts every domain under /api. Handlers left nil
// in Config are skipped, except the assistant which is always required.
func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	assistantHTTP.RegisterRoutes(api, srv.assistantHandler, srv.mw)
	srv.l.Infof(ctx, "Assistant routes registered at /api/ai")

	if srv.todoHandler != nil {
		todoHTTP.RegisterRoutes(api, srv.todoHandler, srv.mw)
		srv.l.Infof(ctx, "Todo routes registered at /api/todos")
	} else {
		srv.l.Infof(ctx, "Todo handler not configured, skipping /api/todos")
	}

	if srv.profileHandler != nil {
		profileHTTP.RegisterRoutes(api, srv.profileHandler, srv.mw)
		srv.l.Infof(ctx, "Profile routes registered at /api/profile")
	}

	if srv.authHandler != nil {
		authHTTP.RegisterRoutes(api, srv.authHandler, srv.mw)
		srv.l.Infof(ctx, "Auth routes registered at /api/auth")
	}
}
