package http

import (
	"bytes"
	"encoding/json"
	"time"

	"smart-todo/internal/model"
	"smart-todo/internal/todo"
)

// --- Request DTOs ---

type listReq struct {
	Refresh bool `form:"refresh"`
}

func (r listReq) toInput() todo.ListInput {
	return todo.ListInput{Refresh: r.Refresh}
}

// ---

type createReq struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
}

func (r createReq) toInput() todo.CreateInput {
	return todo.CreateInput{
		Title:       r.Title,
		Description: deref(r.Description),
		DueDate:     deref(r.DueDate),
		DueTime:     deref(r.DueTime),
		Priority:    model.Priority(r.Priority),
		Category:    deref(r.Category),
	}
}

func (r createReq) toDraft() model.TodoDraft {
	in := r.toInput()
	return model.TodoDraft{
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		DueTime:     in.DueTime,
		Priority:    in.Priority,
		Category:    in.Category,
	}
}

// ---

// field is a PATCH value: absent keys stay unset, null clears.
type field struct {
	Set   bool
	Value string
}

func (f *field) UnmarshalJSON(b []byte) error {
	f.Set = true
	if bytes.Equal(b, []byte("null")) {
		f.Value = ""
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

func (f field) ptr() *string {
	if !f.Set {
		return nil
	}
	v := f.Value
	return &v
}

type updateReq struct {
	ID          string `json:"-"`
	Title       field  `json:"title" swaggertype:"string"`
	Description field  `json:"description" swaggertype:"string"`
	DueDate     field  `json:"due_date" swaggertype:"string"`
	DueTime     field  `json:"due_time" swaggertype:"string"`
	Priority    field  `json:"priority" swaggertype:"string"`
	Category    field  `json:"category" swaggertype:"string"`
	Completed   *bool  `json:"completed"`
}

func (r updateReq) toInput() todo.UpdateInput {
	in := todo.UpdateInput{
		ID:          r.ID,
		Title:       r.Title.ptr(),
		Description: r.Description.ptr(),
		DueDate:     r.DueDate.ptr(),
		DueTime:     r.DueTime.ptr(),
		Category:    r.Category.ptr(),
		Completed:   r.Completed,
	}
	if p := r.Priority.ptr(); p != nil {
		prio := model.Priority(*p)
		in.Priority = &prio
	}
	return in
}

// ---

type analyzeReq struct {
	Period string `json:"period"`
}

// --- Response DTOs ---

// taskResp renders absent optional fields as JSON null.
type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	DueDate     *string    `json:"due_date"`
	DueTime     *string    `json:"due_time"`
	Priority    string     `json:"priority"`
	Category    *string    `json:"category"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

func (h *handler) newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Description: optional(t.Description),
		DueDate:     optional(t.DueDate),
		DueTime:     optional(t.DueTime),
		Priority:    string(t.Priority),
		Category:    optional(t.Category),
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
	}
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		resp.UpdatedAt = &u
	}
	return resp
}

func (h *handler) newListResp(tasks []model.Task) []taskResp {
	out := make([]taskResp, len(tasks))
	for i, t := range tasks {
		out[i] = h.newTaskResp(t)
	}
	return out
}

type deleteResp struct {
	ID        string    `json:"id"`
	UndoUntil time.Time `json:"undo_until"`
}

type restoreResp struct {
	ID string `json:"id"`
}

type analysisResp struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

func (h *handler) newAnalysisResp(r model.AnalysisResult) analysisResp {
	return analysisResp{
		Summary:         r.Summary,
		UrgentTasks:     nonNil(r.UrgentTasks),
		Insights:        nonNil(r.Insights),
		Recommendations: nonNil(r.Recommendations),
	}
}

// --- helpers ---

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
