package http

import (
	"strings"
	"time"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
)

// --- Request DTOs ---

type generateReq struct {
	Text string `json:"text"`
}

func (r generateReq) toInput() assistant.GenerateInput {
	return assistant.GenerateInput{Text: r.Text}
}

// ---

// todoItem mirrors a stored todo row as the client sends it back.
type todoItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
	Completed   bool    `json:"completed"`
	CompletedAt *string `json:"completed_at"`
	CreatedAt   string  `json:"created_at"`
}

func (t todoItem) toTask() model.Task {
	task := model.Task{
		ID:          t.ID,
		Title:       t.Title,
		Description: deref(t.Description),
		DueDate:     deref(t.DueDate),
		DueTime:     clipClock(deref(t.DueTime)),
		Priority:    model.Priority(t.Priority),
		Category:    deref(t.Category),
		Completed:   t.Completed,
		CreatedAt:   parseTimestamp(t.CreatedAt),
	}
	if t.CompletedAt != nil {
		if ts := parseTimestamp(*t.CompletedAt); !ts.IsZero() {
			task.CompletedAt = &ts
		}
	}
	return task
}

type analyzeReq struct {
	Todos  *[]todoItem `json:"todos"`
	Period string      `json:"period"`
}

func (r analyzeReq) validate() error {
	if r.Todos == nil {
		return errTodosRequired
	}
	return nil
}

func (r analyzeReq) toInput() assistant.AnalyzeInput {
	todos := make([]model.Task, len(*r.Todos))
	for i, t := range *r.Todos {
		todos[i] = t.toTask()
	}
	return assistant.AnalyzeInput{
		Todos:  todos,
		Period: model.Period(r.Period),
	}
}

// --- Response DTOs ---

// draftResp renders absent draft fields as JSON null.
type draftResp struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
}

func (h *handler) newDraftResp(d model.TodoDraft) draftResp {
	return draftResp{
		Title:       d.Title,
		Description: optional(d.Description),
		DueDate:     optional(d.DueDate),
		DueTime:     optional(d.DueTime),
		Priority:    string(d.Priority),
		Category:    optional(d.Category),
	}
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
	return strings.TrimSpace(*s)
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

// clipClock accepts Postgres "HH:mm:ss" values and keeps "HH:mm".
func clipClock(s string) string {
	if len(s) == len("15:04:05") && s[5] == ':' {
		return s[:5]
	}
	return s
}

// parseTimestamp accepts RFC 3339 and the Postgres text form; anything else is zero.
func parseTimestamp(s string) time.Time {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999-07", "2006-01-02T15:04:05.999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
