package usecase

import (
	"testing"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

func ptrTime(t time.Time) *time.Time { return &t }

func TestAggregateStats_Counts(t *testing.T) {
	dates := datemath.NewParserIn(kst)
	now := fixedNow() // 2025-06-10 10:00

	todos := []model.Task{
		{Title: "overdue", DueDate: "2025-06-09", Priority: model.PriorityHigh, Category: "업무"},
		{Title: "overdue today", DueDate: "2025-06-10", DueTime: "09:30", Priority: model.PriorityHigh},
		{Title: "due soon", DueDate: "2025-06-10", DueTime: "18:30", Priority: model.PriorityMedium, Category: "업무"},
		{Title: "date only today", DueDate: "2025-06-10", Priority: model.PriorityLow},
		{Title: "later", DueDate: "2025-06-20", DueTime: "22:00"},
		{
			Title: "done on time", DueDate: "2025-06-10", DueTime: "12:00", Completed: true, Priority: model.PriorityLow,
			CompletedAt: ptrTime(time.Date(2025, 6, 10, 9, 0, 0, 0, kst)),
		},
		{
			Title: "done late", DueDate: "2025-06-08", Completed: true, Priority: model.PriorityHigh,
			CompletedAt: ptrTime(time.Date(2025, 6, 9, 9, 0, 0, 0, kst)),
		},
		{
			Title: "done via created proxy", DueDate: "2025-06-12", Completed: true,
			CreatedAt: time.Date(2025, 6, 1, 9, 0, 0, 0, kst),
		},
		{Title: "early bird", DueTime: "07:00"},
	}

	s := aggregateStats(todos, now, dates)

	if s.Total != len(todos) || s.Completed+s.Incomplete != s.Total {
		t.Fatalf("total=%d completed=%d incomplete=%d", s.Total, s.Completed, s.Incomplete)
	}
	if s.Completed != 3 {
		t.Errorf("completed = %d, want 3", s.Completed)
	}
	if s.Overdue != 2 {
		t.Errorf("overdue = %d, want 2", s.Overdue)
	}
	// "due soon" at 18:30 and "date only today" at 23:59:59.
	if s.DueSoon != 2 {
		t.Errorf("due soon = %d, want 2", s.DueSoon)
	}
	if s.OnTime != 2 {
		t.Errorf("on time = %d, want 2", s.OnTime)
	}

	if b := s.ByPriority[model.PriorityHigh]; b.Total != 3 || b.Completed != 1 {
		t.Errorf("high = %+v", b)
	}
	// Empty priority counts as medium.
	if b := s.ByPriority[model.PriorityMedium]; b.Total != 4 {
		t.Errorf("medium = %+v", b)
	}

	if b := s.ByCategory["업무"]; b == nil || b.Total != 2 {
		t.Errorf("업무 = %+v", b)
	}
	if b := s.ByCategory[uncategorized]; b == nil || b.Total != 7 {
		t.Errorf("미분류 = %+v", b)
	}

	wantSlots := map[string]int{"09-12": 1, "12-18": 1, "18-21": 1, "21-24": 1}
	for _, slot := range s.BySlot {
		if slot.Total != wantSlots[slot.Name] {
			t.Errorf("slot %s total = %d, want %d", slot.Name, slot.Total, wantSlots[slot.Name])
		}
	}

	if b := s.ByWeekday[time.Tuesday]; b.Total != 4 || b.Completed != 1 {
		t.Errorf("tuesday = %+v", b)
	}
}

func TestAggregateStats_TodayTotals(t *testing.T) {
	dates := datemath.NewParserIn(kst)
	todos := []model.Task{
		{Title: "a", DueDate: "2025-06-10"},
		{Title: "b", DueDate: "2025-06-10", Completed: true},
		{Title: "c"},
	}

	s := aggregateStats(todos, fixedNow(), dates)
	if s.Total != 3 || s.Completed+s.Incomplete != 3 {
		t.Errorf("total=%d completed=%d incomplete=%d", s.Total, s.Completed, s.Incomplete)
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		done, total int
		want        string
	}{
		{0, 0, "0"},
		{3, 0, "0"},
		{0, 4, "0"},
		{1, 3, "33"},
		{2, 3, "67"},
		{4, 4, "100"},
	}
	for _, tt := range tests {
		if got := completionRate(tt.done, tt.total); got != tt.want {
			t.Errorf("completionRate(%d, %d) = %q, want %q", tt.done, tt.total, got, tt.want)
		}
	}
}

func TestAggregateStats_EmptyBucketsRenderZero(t *testing.T) {
	s := aggregateStats([]model.Task{{Title: "only", Priority: model.PriorityHigh}}, fixedNow(), datemath.NewParserIn(kst))

	for _, p := range model.Priorities {
		if p == model.PriorityHigh {
			continue
		}
		if got := s.ByPriority[p].Rate(); got != "0" {
			t.Errorf("priority %s rate = %q, want 0", p, got)
		}
	}
	for _, slot := range s.BySlot {
		if got := slot.Rate(); got != "0" {
			t.Errorf("slot %s rate = %q, want 0", slot.Name, got)
		}
	}
	for d, b := range s.ByWeekday {
		if got := b.Rate(); got != "0" {
			t.Errorf("weekday %d rate = %q, want 0", d, got)
		}
	}
}

func TestRankedSlots(t *testing.T) {
	todos := []model.Task{
		{Title: "a", DueTime: "10:00", Completed: true},
		{Title: "b", DueTime: "10:30"},
		{Title: "c", DueTime: "19:00", Completed: true},
	}
	s := aggregateStats(todos, fixedNow(), datemath.NewParserIn(kst))

	ranked := s.RankedSlots()
	if len(ranked) != 2 || ranked[0].Name != "18-21" || ranked[1].Name != "09-12" {
		t.Errorf("ranked = %+v", ranked)
	}
}
