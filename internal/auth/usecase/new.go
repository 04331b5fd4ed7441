package usecase

import (
	"time"

	"smart-todo/internal/auth"
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

type implUseCase struct {
	cfg supabase.Config
	now func() time.Time
	l   log.Logger
}

// New creates a new auth UseCase. cfg.Events receives every session change.
func New(cfg supabase.Config, l log.Logger) auth.UseCase {
	return &implUseCase{cfg: cfg, now: time.Now, l: l}
}
