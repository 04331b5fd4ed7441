package usecase

import (
	"fmt"
	"strings"
	"time"

	"smart-todo/pkg/datemath"
)

// buildGeneratePrompt renders the instruction for turning text into a task draft.
// Relative dates are resolved here so the model only copies concrete values.
func (uc *implUseCase) buildGeneratePrompt(text string, now time.Time) string {
	today := uc.dates.StartOfDay(now)
	resolve := func(expr string) string {
		t, err := uc.dates.Parse(expr, now)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("%s (%s)", uc.dates.FormatDate(t), datemath.KoreanWeekday(t.Weekday()))
	}

	var b strings.Builder

	b.WriteString("당신은 한국어 문장을 할 일(todo) 데이터로 변환하는 도우미입니다.\n")
	b.WriteString("아래 입력 문장을 분석하여 지정된 JSON 형식으로만 응답하세요.\n\n")

	fmt.Fprintf(&b, "입력 문장: \"%s\"\n\n", text)

	b.WriteString("## 기준 시각\n")
	fmt.Fprintf(&b, "- 오늘: %s %s\n", uc.dates.FormatDate(today), datemath.KoreanWeekday(today.Weekday()))
	fmt.Fprintf(&b, "- 현재 시각: %s\n\n", now.Format(datemath.ClockLayout))

	b.WriteString("## 날짜 규칙 (due_date, YYYY-MM-DD)\n")
	fmt.Fprintf(&b, "- \"오늘\" → %s\n", resolve("오늘"))
	fmt.Fprintf(&b, "- \"내일\" → %s\n", resolve("내일"))
	fmt.Fprintf(&b, "- \"모레\" → %s\n", resolve("모레"))
	for _, day := range []string{"월요일", "화요일", "수요일", "목요일", "금요일", "토요일", "일요일"} {
		fmt.Fprintf(&b, "- \"다음 주 %s\" → %s\n", day, resolve("다음 주 "+day))
	}
	fmt.Fprintf(&b, "- \"다음 주\" (요일 없음) → %s\n", resolve("다음 주"))
	b.WriteString("- 날짜 표현이 없으면 due_date는 null\n")
	b.WriteString("- 오늘 이전 날짜는 사용하지 마세요\n\n")

	b.WriteString("## 시간 규칙 (due_time, HH:mm 24시간제)\n")
	b.WriteString("- \"아침\" → 09:00, \"점심\" → 12:00, \"저녁\" → 18:00, \"밤\" → 21:00\n")
	b.WriteString("- \"N시\": 1~6시는 오후로 해석 (예: \"3시\" → 15:00), 7~12시는 그대로 (예: \"9시\" → 09:00)\n")
	b.WriteString("- \"오전 N시\" → N시 (예: \"오전 10시\" → 10:00), \"오후 N시\" → N+12시 (예: \"오후 3시\" → 15:00)\n")
	b.WriteString("- \"N시 M분\" → HH:MM (예: \"2시 30분\" → 14:30), \"N시 반\" → N시 30분\n")
	b.WriteString("- 시간 표현이 없으면 due_time은 null\n\n")

	b.WriteString("## 우선순위 규칙 (priority)\n")
	b.WriteString("- high: \"긴급\", \"급한\", \"중요\", \"반드시\", \"ASAP\", \"빨리\"\n")
	b.WriteString("- low: \"나중에\", \"여유\", \"천천히\", \"언젠가\", \"시간 날 때\"\n")
	b.WriteString("- 그 외에는 medium\n\n")

	b.WriteString("## 카테고리 규칙 (category)\n")
	b.WriteString("- 업무: 회의, 미팅, 보고서, 프로젝트, 발표, 출장\n")
	b.WriteString("- 학습: 공부, 강의, 시험, 과제, 독서\n")
	b.WriteString("- 건강: 운동, 병원, 헬스, 요가, 약\n")
	b.WriteString("- 쇼핑: 구매, 사기, 장보기, 주문\n")
	b.WriteString("- 개인: 약속, 가족, 친구, 청소, 빨래\n")
	b.WriteString("- 해당 없으면 null\n\n")

	b.WriteString("## 출력 필드\n")
	b.WriteString("- title (string, 필수): 핵심 행동을 담은 간결한 제목, 100자 이내, 날짜/시간 표현 제외\n")
	b.WriteString("- description (string 또는 null): 제목에 담지 못한 추가 정보\n")
	b.WriteString("- due_date (string 또는 null): YYYY-MM-DD\n")
	b.WriteString("- due_time (string 또는 null): HH:mm\n")
	b.WriteString("- priority (string, 필수): high | medium | low\n")
	b.WriteString("- category (string 또는 null)\n\n")

	b.WriteString("## 예시\n")
	fmt.Fprintf(&b, "입력: \"내일 오후 3시까지 팀 회의 준비\"\n")
	fmt.Fprintf(&b, "출력: {\"title\": \"팀 회의 준비\", \"description\": null, \"due_date\": \"%s\", \"due_time\": \"15:00\", \"priority\": \"medium\", \"category\": \"업무\"}\n",
		uc.dates.FormatDate(today.AddDate(0, 0, 1)))

	return b.String()
}
