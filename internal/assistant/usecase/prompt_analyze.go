package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

const (
	upbeatThreshold      = 70
	encouragingThreshold = 50
)

var priorityGlyph = map[model.Priority]string{
	model.PriorityHigh:   "🔴",
	model.PriorityMedium: "🟡",
	model.PriorityLow:    "🟢",
}

var priorityLabel = map[model.Priority]string{
	model.PriorityHigh:   "높음",
	model.PriorityMedium: "보통",
	model.PriorityLow:    "낮음",
}

// buildAnalyzePrompt renders statistics, the annotated task list and the answer rubric.
func (uc *implUseCase) buildAnalyzePrompt(s todoStats, todos []model.Task, period model.Period, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "당신은 생산성 코치입니다. 사용자의 %s 할 일 목록을 분석하여 지정된 JSON 형식으로만 응답하세요.\n", period.Label())
	fmt.Fprintf(&b, "현재 시각: %s %s %s\n\n", uc.dates.FormatDate(now), datemath.KoreanWeekday(now.Weekday()), now.Format(datemath.ClockLayout))

	b.WriteString("## 통계\n")
	fmt.Fprintf(&b, "- 전체: %d개, 완료: %d개, 미완료: %d개, 완료율: %s%%\n", s.Total, s.Completed, s.Incomplete, completionRate(s.Completed, s.Total))
	fmt.Fprintf(&b, "- 기한 초과: %d개, 24시간 내 마감: %d개, 기한 내 완료: %d개\n", s.Overdue, s.DueSoon, s.OnTime)

	b.WriteString("- 우선순위별:")
	for _, p := range model.Priorities {
		bk := s.ByPriority[p]
		fmt.Fprintf(&b, " %s %s %d/%d (%s%%)", priorityGlyph[p], priorityLabel[p], bk.Completed, bk.Total, bk.Rate())
	}
	b.WriteString("\n")

	b.WriteString("- 카테고리별:")
	for _, c := range s.Categories() {
		fmt.Fprintf(&b, " %s %d/%d (%s%%)", c.Name, c.Completed, c.Total, c.Rate())
	}
	b.WriteString("\n")

	b.WriteString("- 시간대별:")
	for _, slot := range s.BySlot {
		fmt.Fprintf(&b, " %s시 %d/%d (%s%%)", slot.Name, slot.Completed, slot.Total, slot.Rate())
	}
	b.WriteString("\n")

	if period == model.PeriodWeek {
		b.WriteString("- 요일별:")
		for d, bk := range s.ByWeekday {
			fmt.Fprintf(&b, " %s %d/%d (%s%%)", datemath.KoreanWeekday(time.Weekday(d)), bk.Completed, bk.Total, bk.Rate())
		}
		b.WriteString("\n")
	}

	if slots := s.RankedSlots(); len(slots) > 0 {
		fmt.Fprintf(&b, "- 완료율이 가장 높은 시간대: %s시 (%s%%)\n", slots[0].Name, slots[0].Rate())
	}
	if days := s.RankedWeekdays(); len(days) > 0 {
		fmt.Fprintf(&b, "- 완료율이 가장 높은 요일: %s (%s%%)\n", days[0].Name, days[0].Rate())
	}
	b.WriteString("\n")

	b.WriteString("## 할 일 목록\n")
	for _, t := range todos {
		b.WriteString(uc.describeTask(t, now))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString("## 작성 규칙\n")
	b.WriteString("- summary: 전체 상황을 한 문단으로 요약\n")
	switch pct := s.CompletionPercent(); {
	case pct >= upbeatThreshold:
		b.WriteString("  완료율이 높으니 성과를 칭찬하는 긍정적인 어조로 작성\n")
	case pct < encouragingThreshold:
		b.WriteString("  완료율이 낮으니 부담을 주지 않고 격려하는 어조로 작성\n")
	default:
		b.WriteString("  균형 잡힌 담담한 어조로 작성\n")
	}
	b.WriteString("- urgentTasks: 긴급한 할 일 제목 최대 5개. 기한 초과 항목을 먼저, 그다음 24시간 내 마감 항목\n")
	b.WriteString("- insights: 다음 관점의 인사이트\n")
	b.WriteString("  1. 완료율 평가\n")
	b.WriteString("  2. 시간 관리 (기한 초과, 마감 임박)\n")
	b.WriteString("  3. 생산성 패턴 (완료율이 가장 높은 시간대와 요일을 언급)\n")
	b.WriteString("  4. 개선 기회\n")
	b.WriteString("- recommendations: 바로 실천할 수 있는 구체적인 추천 최대 4개\n")
	b.WriteString("- 목록에 없는 할 일을 만들어내지 마세요\n")

	return b.String()
}

// describeTask renders one annotated task line.
func (uc *implUseCase) describeTask(t model.Task, now time.Time) string {
	status := "⬜"
	if t.Completed {
		status = "✅"
	}

	prio := t.Priority
	if !prio.Valid() {
		prio = model.PriorityMedium
	}

	category := t.Category
	if category == "" {
		category = uncategorized
	}

	line := fmt.Sprintf("- %s %s [%s] %s", status, priorityGlyph[prio], category, t.Title)

	if t.DueDate != "" {
		due := t.DueDate
		if t.DueTime != "" {
			due += " " + t.DueTime
		}
		line += fmt.Sprintf(" (마감: %s)", due)

		if moment, ok := uc.dates.DueMoment(t.DueDate, t.DueTime); ok && !t.Completed && moment.Before(now) {
			line += " ⚠️ 기한 초과"
		}
	}
	return line
}
