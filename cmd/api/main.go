package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"smart-todo/config"
	_ "smart-todo/docs" // Swagger docs
	"smart-todo/internal/assistant"
	assistantHTTP "smart-todo/internal/assistant/delivery/http"
	assistantUC "smart-todo/internal/assistant/usecase"
	authHTTP "smart-todo/internal/auth/delivery/http"
	authUC "smart-todo/internal/auth/usecase"
	"smart-todo/internal/httpserver"
	"smart-todo/internal/middleware"
	profileHTTP "smart-todo/internal/profile/delivery/http"
	profileRepo "smart-todo/internal/profile/repository/supabase"
	profileUC "smart-todo/internal/profile/usecase"
	todoHTTP "smart-todo/internal/todo/delivery/http"
	"smart-todo/internal/todo/repository"
	"smart-todo/internal/todo/repository/postgre"
	todoSupabase "smart-todo/internal/todo/repository/supabase"
	todoUC "smart-todo/internal/todo/usecase"
	"smart-todo/internal/todo/workspace"
	"smart-todo/pkg/llmprovider"
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

// @title       Smart Todo API
// @description Personal task management with Gemini-backed todo generation and productivity analysis.
// @version     1
// @host        localhost:8080
// @BasePath    /api
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in          header
// @name        Authorization
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Smart Todo API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Todo backend: %s", cfg.Todo.Backend)

	// 3. Model chain
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	retryDelay := parseDuration(ctx, logger, "llm.retry_delay", cfg.LLM.RetryDelay)
	totalTimeout := parseDuration(ctx, logger, "llm.max_total_timeout", cfg.LLM.MaxTotalTimeout)

	generator := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: totalTimeout,
		ShouldFallback:  llmprovider.IsModelUnavailable,
	}, logger)
	analyzer := llmprovider.NewManager(llmprovider.Primary(providers), &llmprovider.Config{
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      retryDelay,
		MaxTotalTimeout: totalTimeout,
	}, logger)
	logger.Infof(ctx, "Models: generate=%v analyze=%v", generator.Models(), analyzer.Models())

	// 4. Assistant domain
	loc, err := time.LoadLocation(cfg.Assistant.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Assistant.Timezone, err)
		loc = time.UTC
	}
	policy, err := assistant.ParsePastDuePolicy(cfg.Assistant.PastDuePolicy)
	if err != nil {
		logger.Errorf(ctx, "Invalid assistant.past_due_policy: %v", err)
		return
	}
	assistantUseCase := assistantUC.New(logger, generator, analyzer, assistantUC.Options{
		Location:      loc,
		PastDuePolicy: policy,
	})

	// 5. Backend
	sbCfg := supabase.Config{
		URL:               cfg.Supabase.URL,
		AnonKey:           cfg.Supabase.AnonKey,
		AccessCookieName:  cfg.Supabase.AccessCookieName,
		RefreshCookieName: cfg.Supabase.RefreshCookieName,
		Events:            supabase.NewAuthEvents(),
	}

	var (
		todoRepo repository.Repository
		ready    func(ctx context.Context) error
	)
	switch cfg.Todo.Backend {
	case config.TodoBackendPostgres:
		db, err := postgre.Connect(ctx, cfg.Database.DSN)
		if err != nil {
			logger.Errorf(ctx, "Failed to connect to PostgreSQL: %v", err)
			return
		}
		defer closeDB(ctx, logger, db)
		todoRepo = postgre.New(db, logger)
		ready = db.PingContext
	default:
		todoRepo = todoSupabase.New(sbCfg, logger)
	}

	// 6. Todo domain
	registry := workspace.NewRegistry(logger, todoRepo, sbCfg.Events, workspace.Options{
		DeleteDelay: cfg.Todo.DeleteDelay,
	})
	defer registry.Close()
	todoUseCase := todoUC.New(todoRepo, registry, assistantUseCase, loc, logger)

	// 7. Profile and auth domains
	profileUseCase := profileUC.New(profileRepo.New(sbCfg, logger), logger)
	authUseCase := authUC.New(sbCfg, logger)

	// 8. HTTP Server
	withDetails := cfg.Environment.IsDevelopment()
	mw := middleware.New(logger, middleware.Config{
		Supabase:         sbCfg,
		JWTSecret:        cfg.Supabase.JWTSecret,
		AIRequestsPerMin: cfg.RateLimit.AIRequestsPerMin,
	})

	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:           logger,
		Port:             cfg.HTTPServer.Port,
		Mode:             cfg.HTTPServer.Mode,
		Environment:      cfg.Environment.Name,
		ReadTimeout:      cfg.HTTPServer.ReadTimeout,
		WriteTimeout:     cfg.HTTPServer.WriteTimeout,
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		Middleware:       mw,
		Ready:            ready,
		AssistantHandler: assistantHTTP.New(logger, assistantUseCase, withDetails),
		TodoHandler:      todoHTTP.New(logger, todoUseCase, withDetails),
		ProfileHandler:   profileHTTP.New(logger, profileUseCase, withDetails),
		AuthHandler:      authHTTP.New(logger, authUseCase, withDetails),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

// parseDuration reads an optional duration setting; invalid values disable it.
func parseDuration(ctx context.Context, l log.Logger, key, raw string) time.Duration {
	if raw == "" {
		return 0
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		l.Warnf(ctx, "Invalid %s %q, ignoring: %v", key, raw, err)
		return 0
	}
	return d
}

func closeDB(ctx context.Context, l log.Logger, db *sql.DB) {
	if err := db.Close(); err != nil {
		l.Warnf(ctx, "Failed to close database: %v", err)
	}
}
