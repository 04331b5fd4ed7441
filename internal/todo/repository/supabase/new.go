package supabase

import (
	"fmt"

	"smart-todo/internal/model"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/log"
	sb "smart-todo/pkg/supabase"
)

const tableTodos = "todos"

// ClientFactory builds a backend client acting as the caller.
type ClientFactory func(sc model.Scope) (*sb.Client, error)

type implRepository struct {
	newClient ClientFactory
	l         log.Logger
}

// New creates a Supabase-backed Repository. Row level security on the
// todos table enforces ownership; user_id filters are added as well.
func New(cfg sb.Config, l log.Logger) repository.Repository {
	return NewWithFactory(func(sc model.Scope) (*sb.Client, error) {
		return sb.NewClient(cfg, sc.AccessToken)
	}, l)
}

// NewWithFactory is New with a custom client constructor.
func NewWithFactory(factory ClientFactory, l log.Logger) repository.Repository {
	if factory == nil {
		panic("todo/repository/supabase: client factory is required")
	}
	return &implRepository{newClient: factory, l: l}
}

func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("todo/repository/supabase.%s", method)
}
