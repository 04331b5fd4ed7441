package supabase

import (
	"context"
	"strconv"
	"time"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
	sb "smart-todo/pkg/supabase"
)

const taskColumns = "id,user_id,title,description,due_date,due_time,priority,category,completed,completed_at,created_at,updated_at"

// taskRow is the PostgREST representation of a todos row.
type taskRow struct {
	ID          string     `json:"id,omitempty"`
	UserID      string     `json:"user_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"due_date"`
	DueTime     *string    `json:"due_time"`
	Priority    string     `json:"priority"`
	Category    *string    `json:"category"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (row taskRow) toTask() model.Task {
	t := model.Task{
		ID:          row.ID,
		UserID:      row.UserID,
		Title:       row.Title,
		Description: deref(row.Description),
		DueDate:     deref(row.DueDate),
		DueTime:     clipClock(deref(row.DueTime)),
		Priority:    model.Priority(row.Priority),
		Category:    deref(row.Category),
		Completed:   row.Completed,
		CompletedAt: row.CompletedAt,
	}
	if row.CreatedAt != nil {
		t.CreatedAt = *row.CreatedAt
	}
	if row.UpdatedAt != nil {
		t.UpdatedAt = *row.UpdatedAt
	}
	return t
}

func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}

	in := taskRow{
		UserID:      sc.UserID,
		Title:       opt.Title,
		Description: nullable(opt.Description),
		DueDate:     nullable(opt.DueDate),
		DueTime:     nullable(opt.DueTime),
		Priority:    string(opt.Priority),
		Category:    nullable(opt.Category),
	}

	var out taskRow
	if err := client.From(tableTodos).Select(taskColumns).Insert(in).Single().Execute(ctx, &out); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, r.wrap(err, repo.ErrFailedToInsert)
	}
	return out.toTask(), nil
}

func (r *implRepository) GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}

	var out taskRow
	err = client.From(tableTodos).Select(taskColumns).Eq("id", id).Eq("user_id", sc.UserID).Single().Execute(ctx, &out)
	if sb.IsNotFound(err) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, r.wrap(err, repo.ErrFailedToGet)
	}
	return out.toTask(), nil
}

// ListTasks returns the caller's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]model.Task, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}

	q := client.From(tableTodos).Select(taskColumns).Eq("user_id", sc.UserID).Order("created_at", false)
	if opt.Completed != nil {
		q = q.Eq("completed", strconv.FormatBool(*opt.Completed))
	}
	if opt.Limit > 0 {
		q = q.Limit(opt.Limit)
	}

	var rows []taskRow
	if err := q.Execute(ctx, &rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, r.wrap(err, repo.ErrFailedToList)
	}

	tasks := make([]model.Task, len(rows))
	for i, row := range rows {
		tasks[i] = row.toTask()
	}
	return tasks, nil
}

func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}

	now := time.Now().UTC()
	patch := taskRow{
		Title:       opt.Title,
		Description: nullable(opt.Description),
		DueDate:     nullable(opt.DueDate),
		DueTime:     nullable(opt.DueTime),
		Priority:    string(opt.Priority),
		Category:    nullable(opt.Category),
		Completed:   opt.Completed,
		CompletedAt: opt.CompletedAt,
		UpdatedAt:   &now,
	}

	var rows []taskRow
	err = client.From(tableTodos).Select(taskColumns).Eq("id", opt.ID).Eq("user_id", sc.UserID).Update(patch).Execute(ctx, &rows)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, r.wrap(err, repo.ErrFailedToUpdate)
	}
	if len(rows) == 0 {
		return model.Task{}, nil
	}
	return rows[0].toTask(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	client, err := r.newClient(sc)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}

	if err := client.From(tableTodos).Eq("id", id).Eq("user_id", sc.UserID).Delete().Execute(ctx, nil); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return r.wrap(err, repo.ErrFailedToDelete)
	}
	return nil
}

// wrap keeps session rejections distinguishable from storage failures.
func (r *implRepository) wrap(err, fallback error) error {
	if sb.IsUnauthorized(err) {
		return repo.ErrUnauthorized
	}
	return fallback
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// clipClock turns a Postgres time ("15:00:00") into HH:mm.
func clipClock(s string) string {
	if len(s) >= len("15:04:05") && s[2] == ':' && s[5] == ':' {
		return s[:5]
	}
	return s
}
