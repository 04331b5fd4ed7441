package todo

import (
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

// FilterByPeriod keeps the tasks that belong to period relative to now.
//
// A task belongs to today when it is due today, or has no due date and was
// created today. The week variant uses the current Sunday-start week instead.
func FilterByPeriod(todos []model.Task, period model.Period, now time.Time, dates *datemath.Parser) []model.Task {
	var window datemath.Range
	switch period {
	case model.PeriodToday:
		window = dates.DayRange(now)
	case model.PeriodWeek:
		window = dates.WeekRange(now)
	default:
		return nil
	}

	out := make([]model.Task, 0, len(todos))
	for _, t := range todos {
		if t.DueDate != "" {
			if due, err := dates.ParseDate(t.DueDate); err == nil && window.Contains(due) {
				out = append(out, t)
			}
			continue
		}
		if !t.CreatedAt.IsZero() && window.Contains(t.CreatedAt) {
			out = append(out, t)
		}
	}
	return out
}
