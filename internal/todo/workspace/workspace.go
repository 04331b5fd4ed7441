package workspace

import (
	"context"
	"errors"
	"sync"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo/repository"
	"smart-todo/pkg/log"
	"smart-todo/pkg/supabase"
)

var (
	ErrClosed     = errors.New("workspace is closed")
	ErrNotFound   = errors.New("task is not in the workspace")
	ErrNotPending = errors.New("task is not pending deletion")
)

const commitTimeout = 15 * time.Second

// Store is the part of the repository a workspace needs.
type Store interface {
	ListTasks(ctx context.Context, sc model.Scope, opt repository.ListTasksOptions) ([]model.Task, error)
	DeleteTask(ctx context.Context, sc model.Scope, id string) error
}

type pendingDelete struct {
	task      model.Task
	index     int
	timer     *time.Timer
	undoUntil time.Time
}

// Workspace is the task list of one signed-in user. It holds the only
// in-memory copy of that list, hides tasks waiting for deletion and follows
// the user's auth events.
type Workspace struct {
	l     log.Logger
	store Store
	delay time.Duration

	mu          sync.Mutex
	scope       model.Scope
	tasks       []model.Task
	stale       bool
	pending     map[string]*pendingDelete
	closed      bool
	unsubscribe func()
}

// New creates a workspace for sc and subscribes it to events when non-nil.
// deleteDelay is the undo window of ScheduleDelete.
func New(l log.Logger, store Store, sc model.Scope, events *supabase.AuthEvents, deleteDelay time.Duration) *Workspace {
	w := &Workspace{
		l:       l,
		store:   store,
		delay:   deleteDelay,
		scope:   sc,
		stale:   true,
		pending: make(map[string]*pendingDelete),
	}
	if events != nil {
		w.unsubscribe = events.Subscribe(w.onAuthChange)
	}
	return w
}

// Scope returns the identity the workspace acts as.
func (w *Workspace) Scope() model.Scope {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.scope
}

// SetAccessToken replaces the token used for background calls.
func (w *Workspace) SetAccessToken(token string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if token != "" {
		w.scope.AccessToken = token
	}
}

// Closed reports whether Close has run.
func (w *Workspace) Closed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Tasks returns a copy of the visible list, loading it first when it is
// stale or refresh is set. Tasks pending deletion are never returned.
func (w *Workspace) Tasks(ctx context.Context, refresh bool) ([]model.Task, error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return nil, ErrClosed
	}
	load := w.stale || refresh
	sc := w.scope
	w.mu.Unlock()

	if load {
		tasks, err := w.store.ListTasks(ctx, sc, repository.ListTasksOptions{})
		if err != nil {
			return nil, err
		}

		w.mu.Lock()
		if w.closed {
			w.mu.Unlock()
			return nil, ErrClosed
		}
		w.tasks = w.tasks[:0]
		for _, t := range tasks {
			if _, hidden := w.pending[t.ID]; !hidden {
				w.tasks = append(w.tasks, t)
			}
		}
		w.stale = false
		w.mu.Unlock()
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]model.Task, len(w.tasks))
	copy(out, w.tasks)
	return out, nil
}

// Find returns a visible task by id.
func (w *Workspace) Find(id string) (model.Task, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if i := w.indexOf(id); i >= 0 {
		return w.tasks[i], true
	}
	return model.Task{}, false
}

// Put inserts t at the front or replaces the task with the same id.
func (w *Workspace) Put(t model.Task) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return
	}
	if _, hidden := w.pending[t.ID]; hidden {
		return
	}
	if i := w.indexOf(t.ID); i >= 0 {
		w.tasks[i] = t
		return
	}
	w.tasks = append([]model.Task{t}, w.tasks...)
}

// MarkPendingDelete hides a task without touching the backend.
func (w *Workspace) MarkPendingDelete(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, err := w.markLocked(id)
	return err
}

func (w *Workspace) markLocked(id string) (*pendingDelete, error) {
	if w.closed {
		return nil, ErrClosed
	}
	if _, ok := w.pending[id]; ok {
		return nil, ErrNotFound
	}
	i := w.indexOf(id)
	if i < 0 {
		return nil, ErrNotFound
	}

	p := &pendingDelete{task: w.tasks[i], index: i}
	w.tasks = append(w.tasks[:i], w.tasks[i+1:]...)
	w.pending[id] = p
	return p, nil
}

// ScheduleDelete hides a task now and commits the deletion after the undo
// window. It returns the end of the window.
func (w *Workspace) ScheduleDelete(id string) (time.Time, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, err := w.markLocked(id)
	if err != nil {
		return time.Time{}, err
	}

	p.undoUntil = time.Now().Add(w.delay)
	p.timer = time.AfterFunc(w.delay, func() {
		ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
		defer cancel()
		if err := w.CommitDelete(ctx, id); err != nil && !errors.Is(err, ErrNotPending) {
			w.l.Warnf(ctx, "todo.workspace.ScheduleDelete CommitDelete %s: %v", id, err)
		}
	})
	return p.undoUntil, nil
}

// CommitDelete deletes a pending task in the backend. On failure the task
// is put back where it was.
func (w *Workspace) CommitDelete(ctx context.Context, id string) error {
	w.mu.Lock()
	p, ok := w.pending[id]
	if !ok {
		w.mu.Unlock()
		return ErrNotPending
	}
	delete(w.pending, id)
	if p.timer != nil {
		p.timer.Stop()
	}
	sc := w.scope
	w.mu.Unlock()

	if err := w.store.DeleteTask(ctx, sc, id); err != nil {
		w.mu.Lock()
		w.restoreLocked(p)
		w.mu.Unlock()
		return err
	}
	return nil
}

// Restore cancels a pending deletion.
func (w *Workspace) Restore(id string) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	p, ok := w.pending[id]
	if !ok {
		return ErrNotPending
	}
	delete(w.pending, id)
	if p.timer != nil {
		p.timer.Stop()
	}
	w.restoreLocked(p)
	return nil
}

func (w *Workspace) restoreLocked(p *pendingDelete) {
	if w.closed || w.indexOf(p.task.ID) >= 0 {
		return
	}
	i := min(p.index, len(w.tasks))
	w.tasks = append(w.tasks[:i], append([]model.Task{p.task}, w.tasks[i:]...)...)
}

// PendingCount is the number of tasks waiting for deletion.
func (w *Workspace) PendingCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.pending)
}

// Close unsubscribes from auth events and drops all state. Deletions still
// inside their undo window are committed before it returns.
func (w *Workspace) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	pendingIDs := make([]string, 0, len(w.pending))
	for id, p := range w.pending {
		if p.timer != nil {
			p.timer.Stop()
		}
		pendingIDs = append(pendingIDs, id)
	}
	w.pending = make(map[string]*pendingDelete)
	w.tasks = nil
	sc := w.scope
	unsubscribe := w.unsubscribe
	w.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	w.flush(sc, pendingIDs)
}

// flush deletes ids in the backend. A timer that already fired finds its
// entry gone and skips, so each id is sent once.
func (w *Workspace) flush(sc model.Scope, ids []string) {
	if len(ids) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), commitTimeout)
	defer cancel()
	for _, id := range ids {
		if err := w.store.DeleteTask(ctx, sc, id); err != nil {
			w.l.Warnf(ctx, "todo.workspace.Close DeleteTask %s: %v", id, err)
		}
	}
}

func (w *Workspace) onAuthChange(ch supabase.AuthChange) {
	w.mu.Lock()
	if w.closed || ch.UserID != w.scope.UserID {
		w.mu.Unlock()
		return
	}

	switch ch.Event {
	case supabase.EventSignedIn, supabase.EventFocus:
		w.stale = true
	case supabase.EventTokenRefreshed:
		if ch.Session != nil && ch.Session.AccessToken != "" {
			w.scope.AccessToken = ch.Session.AccessToken
		}
	case supabase.EventSignedOut:
		w.mu.Unlock()
		w.Close()
		return
	}
	w.mu.Unlock()
}

func (w *Workspace) indexOf(id string) int {
	for i, t := range w.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
