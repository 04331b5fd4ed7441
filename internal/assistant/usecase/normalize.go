package usecase

import (
	"strings"
	"time"
	"unicode/utf8"

	"smart-todo/internal/assistant"
	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

const (
	placeholderTitle = "새 할 일"
	maxTitleRunes    = 100

	maxUrgentTasks     = 5
	maxRecommendations = 4
)

func (r rawDraft) toDraft() model.TodoDraft {
	return model.TodoDraft{
		Title:       r.Title,
		Description: deref(r.Description),
		DueDate:     deref(r.DueDate),
		DueTime:     deref(r.DueTime),
		Priority:    model.Priority(r.Priority),
		Category:    deref(r.Category),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// NormalizeDraft applies the draft rules relative to the current day.
func (uc *implUseCase) NormalizeDraft(draft model.TodoDraft) model.TodoDraft {
	return uc.normalizeDraft(draft, uc.clock())
}

// normalizeDraft never fails: every field either passes its rule or is replaced.
// It is idempotent for a fixed now.
func (uc *implUseCase) normalizeDraft(d model.TodoDraft, now time.Time) model.TodoDraft {
	out := model.TodoDraft{
		Title:       normalizeTitle(d.Title),
		Description: strings.TrimSpace(d.Description),
		DueDate:     uc.normalizeDueDate(strings.TrimSpace(d.DueDate), now),
		DueTime:     strings.TrimSpace(d.DueTime),
		Priority:    d.Priority,
		Category:    strings.TrimSpace(d.Category),
	}

	if !datemath.IsClock(out.DueTime) {
		out.DueTime = ""
	}
	if !out.Priority.Valid() {
		out.Priority = model.PriorityMedium
	}
	return out
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return placeholderTitle
	}
	if utf8.RuneCountInString(title) > maxTitleRunes {
		runes := []rune(title)
		return string(runes[:maxTitleRunes-3]) + "..."
	}
	return title
}

func (uc *implUseCase) normalizeDueDate(date string, now time.Time) string {
	if date == "" {
		return ""
	}
	due, err := uc.dates.ParseDate(date)
	if err != nil {
		return ""
	}

	today := uc.dates.StartOfDay(now)
	if !due.Before(today) {
		return date
	}

	switch uc.policy {
	case assistant.PastDueDrop:
		return ""
	case assistant.PastDueKeep:
		return date
	default:
		return uc.dates.FormatDate(today)
	}
}

// normalizeAnalysis replaces nil lists, trims entries and applies list caps.
func normalizeAnalysis(r rawAnalysis) model.AnalysisResult {
	return model.AnalysisResult{
		Summary:         strings.TrimSpace(r.Summary),
		UrgentTasks:     cleanList(r.UrgentTasks, maxUrgentTasks),
		Insights:        cleanList(r.Insights, 0),
		Recommendations: cleanList(r.Recommendations, maxRecommendations),
	}
}

func cleanList(items []string, limit int) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		out = append(out, item)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
