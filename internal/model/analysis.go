package model

// Period is the window an analysis covers.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// Valid reports whether p is a supported period.
func (p Period) Valid() bool {
	return p == PeriodToday || p == PeriodWeek
}

// Label is the human-readable name used in prompts.
func (p Period) Label() string {
	if p == PeriodWeek {
		return "이번 주"
	}
	return "오늘"
}

// AnalysisResult is the assistant's summary of a task set.
type AnalysisResult struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
