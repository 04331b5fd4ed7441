package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"smart-todo/internal/model"
	repo "smart-todo/internal/todo/repository"
)

const taskColumns = `id, user_id, title, description,
	to_char(due_date, 'YYYY-MM-DD'), to_char(due_time, 'HH24:MI'),
	priority, category, completed, completed_at, created_at, updated_at`

func newUUID() string {
	return uuid.NewString()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTask(s scanner) (model.Task, error) {
	var (
		t           model.Task
		description sql.NullString
		dueDate     sql.NullString
		dueTime     sql.NullString
		category    sql.NullString
		priority    string
		completedAt sql.NullTime
	)
	err := s.Scan(&t.ID, &t.UserID, &t.Title, &description, &dueDate, &dueTime,
		&priority, &category, &t.Completed, &completedAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return model.Task{}, err
	}

	t.Description = description.String
	t.DueDate = dueDate.String
	t.DueTime = dueTime.String
	t.Priority = model.Priority(priority)
	t.Category = category.String
	if completedAt.Valid {
		ts := completedAt.Time
		t.CompletedAt = &ts
	}
	return t, nil
}

// CreateTask inserts a new Task row owned by the caller.
func (r *implRepository) CreateTask(ctx context.Context, sc model.Scope, opt repo.CreateTaskOptions) (model.Task, error) {
	query := fmt.Sprintf(`
		INSERT INTO todos (id, user_id, title, description, due_date, due_time, priority, category, completed, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6::time, $7, $8, FALSE, $9, $9)
		RETURNING %s`, taskColumns)

	now := r.now().UTC()
	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		r.newID(), sc.UserID, opt.Title, nullString(opt.Description),
		nullString(opt.DueDate), nullString(opt.DueTime), string(opt.Priority), nullString(opt.Category), now,
	))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, repo.ErrFailedToInsert
	}
	return task, nil
}

// GetOneTask returns zero-value Task (ID == "") when not found.
func (r *implRepository) GetOneTask(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	if _, err := uuid.Parse(id); err != nil {
		return model.Task{}, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM todos WHERE id = $1 AND user_id = $2 LIMIT 1`, taskColumns)
	task, err := scanTask(r.db.QueryRowContext(ctx, query, id, sc.UserID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneTask"), err)
		return model.Task{}, repo.ErrFailedToGet
	}
	return task, nil
}

// ListTasks returns the caller's tasks, newest first.
func (r *implRepository) ListTasks(ctx context.Context, sc model.Scope, opt repo.ListTasksOptions) ([]model.Task, error) {
	mods, args := r.buildListQuery(sc, opt)
	query := fmt.Sprintf(`SELECT %s FROM todos %s`, taskColumns, mods)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	tasks := []model.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListTasks"), err)
			return nil, repo.ErrFailedToList
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListTasks"), err)
		return nil, repo.ErrFailedToList
	}
	return tasks, nil
}

// UpdateTask replaces the mutable columns of a Task; zero-value Task when not found.
func (r *implRepository) UpdateTask(ctx context.Context, sc model.Scope, opt repo.UpdateTaskOptions) (model.Task, error) {
	if _, err := uuid.Parse(opt.ID); err != nil {
		return model.Task{}, nil
	}

	query := fmt.Sprintf(`
		UPDATE todos
		SET title = $1, description = $2, due_date = $3::date, due_time = $4::time,
		    priority = $5, category = $6, completed = $7, completed_at = $8, updated_at = $9
		WHERE id = $10 AND user_id = $11
		RETURNING %s`, taskColumns)

	var completedAt sql.NullTime
	if opt.CompletedAt != nil {
		completedAt = sql.NullTime{Time: *opt.CompletedAt, Valid: true}
	}

	task, err := scanTask(r.db.QueryRowContext(ctx, query,
		opt.Title, nullString(opt.Description), nullString(opt.DueDate), nullString(opt.DueTime),
		string(opt.Priority), nullString(opt.Category), opt.Completed, completedAt, r.now().UTC(),
		opt.ID, sc.UserID,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpdateTask"), err)
		return model.Task{}, repo.ErrFailedToUpdate
	}
	return task, nil
}

// DeleteTask removes a Task owned by the caller. Missing rows are not an error.
func (r *implRepository) DeleteTask(ctx context.Context, sc model.Scope, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return nil
	}

	const query = `DELETE FROM todos WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, id, sc.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteTask"), err)
		return repo.ErrFailedToDelete
	}
	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
