package supabase

import (
	"fmt"

	"smart-todo/internal/model"
	"smart-todo/internal/profile/repository"
	"smart-todo/pkg/log"
	sb "smart-todo/pkg/supabase"
)

const (
	tableProfiles  = "profiles"
	profileColumns = "id,email,display_name,avatar_url,created_at,updated_at"
)

// ClientFactory builds a backend client acting as the caller.
type ClientFactory func(sc model.Scope) (*sb.Client, error)

type implRepository struct {
	newClient ClientFactory
	l         log.Logger
}

// New creates a Supabase-backed profile Repository.
func New(cfg sb.Config, l log.Logger) repository.Repository {
	return NewWithFactory(func(sc model.Scope) (*sb.Client, error) {
		return sb.NewClient(cfg, sc.AccessToken)
	}, l)
}

// NewWithFactory is New with a custom client constructor.
func NewWithFactory(factory ClientFactory, l log.Logger) repository.Repository {
	if factory == nil {
		panic("profile/repository/supabase: client factory is required")
	}
	return &implRepository{newClient: factory, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("profile/repository/supabase.%s", method)
}
