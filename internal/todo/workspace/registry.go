package workspace

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"smart-todo/internal/model"
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

const (
	DefaultRegistrySize = 1000
	DefaultIdleTTL      = 30 * time.Minute
)

// Options tunes a Registry. Zero values pick defaults.
type Options struct {
	Size        int
	IdleTTL     time.Duration
	DeleteDelay time.Duration
}

// Registry holds one Workspace per user. Workspaces idle for longer than
// IdleTTL, or pushed out by newer users, are closed.
type Registry struct {
	l      log.Logger
	store  Store
	events *supabase.AuthEvents
	delay  time.Duration

	mu    sync.Mutex
	cache *expirable.LRU[string, *Workspace]
}

// NewRegistry creates an empty registry.
func NewRegistry(l log.Logger, store Store, events *supabase.AuthEvents, opt Options) *Registry {
	if opt.Size <= 0 {
		opt.Size = DefaultRegistrySize
	}
	if opt.IdleTTL <= 0 {
		opt.IdleTTL = DefaultIdleTTL
	}

	return &Registry{
		l:      l,
		store:  store,
		events: events,
		delay:  opt.DeleteDelay,
		cache: expirable.NewLRU[string, *Workspace](opt.Size, func(_ string, w *Workspace) {
			w.Close()
		}, opt.IdleTTL),
	}
}

// Get returns the caller's workspace, creating it on first use or after the
// previous one was closed. The caller's current token is adopted.
func (r *Registry) Get(sc model.Scope) *Workspace {
	r.mu.Lock()
	defer r.mu.Unlock()

	w, ok := r.cache.Get(sc.UserID)
	if !ok || w.Closed() {
		// Drops an expired or closed entry through the eviction callback.
		r.cache.Remove(sc.UserID)
		w = New(r.l, r.store, sc, r.events, r.delay)
	} else {
		w.SetAccessToken(sc.AccessToken)
	}
	// Re-adding refreshes the idle deadline.
	r.cache.Add(sc.UserID, w)
	return w
}

// Len is the number of cached workspaces.
func (r *Registry) Len() int {
	return r.cache.Len()
}

// Close closes every workspace.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache.Purge()
}
