package supabase

import "sync"

// AuthEvent names an auth state change.
type AuthEvent string

const (
	EventSignedIn       AuthEvent = "SIGNED_IN"
	EventSignedOut      AuthEvent = "SIGNED_OUT"
	EventTokenRefreshed AuthEvent = "TOKEN_REFRESHED"
	EventFocus          AuthEvent = "FOCUS"
)

// AuthChange is delivered to subscribers.
type AuthChange struct {
	Event   AuthEvent
	UserID  string
	Session *Session // nil on SIGNED_OUT and FOCUS
}

// AuthEvents fans auth state changes out to subscribers.
// Callbacks run synchronously on the emitting goroutine, outside the internal lock.
type AuthEvents struct {
	mu   sync.Mutex
	next int
	subs map[int]func(AuthChange)
}

// NewAuthEvents creates an empty event bus.
func NewAuthEvents() *AuthEvents {
	return &AuthEvents{subs: make(map[int]func(AuthChange))}
}

// Subscribe registers fn and returns an idempotent unsubscribe function.
func (e *AuthEvents) Subscribe(fn func(AuthChange)) (unsubscribe func()) {
	e.mu.Lock()
	id := e.next
	e.next++
	e.subs[id] = fn
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			delete(e.subs, id)
			e.mu.Unlock()
		})
	}
}

// Emit delivers change to every current subscriber.
func (e *AuthEvents) Emit(change AuthChange) {
	if e == nil {
		return
	}

	e.mu.Lock()
	fns := make([]func(AuthChange), 0, len(e.subs))
	for _, fn := range e.subs {
		fns = append(fns, fn)
	}
	e.mu.Unlock()

	for _, fn := range fns {
		fn(change)
	}
}

// Len returns the number of live subscriptions.
func (e *AuthEvents) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.subs)
}
