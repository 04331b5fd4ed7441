package usecase

import "smart-todo/pkg/llmprovider"

var todoDraftSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"title": {
			Type:        llmprovider.TypeString,
			Description: "할 일 제목 (100자 이내)",
		},
		"description": {
			Type:        llmprovider.TypeString,
			Description: "추가 설명",
			Nullable:    true,
		},
		"due_date": {
			Type:        llmprovider.TypeString,
			Description: "마감 날짜 YYYY-MM-DD",
			Nullable:    true,
		},
		"due_time": {
			Type:        llmprovider.TypeString,
			Description: "마감 시간 HH:mm (24시간제)",
			Nullable:    true,
		},
		"priority": {
			Type: llmprovider.TypeString,
			Enum: []string{"high", "medium", "low"},
		},
		"category": {
			Type:        llmprovider.TypeString,
			Description: "카테고리",
			Nullable:    true,
		},
	},
	Required: []string{"title", "priority"},
	Ordering: []string{"title", "description", "due_date", "due_time", "priority", "category"},
}

var analysisSchema = &llmprovider.Schema{
	Type: llmprovider.TypeObject,
	Properties: map[string]*llmprovider.Schema{
		"summary": {
			Type:        llmprovider.TypeString,
			Description: "전체 요약 한 문단",
		},
		"urgentTasks": {
			Type:        llmprovider.TypeArray,
			Description: "긴급한 할 일 제목 (최대 5개)",
			Items:       &llmprovider.Schema{Type: llmprovider.TypeString},
		},
		"insights": {
			Type:        llmprovider.TypeArray,
			Description: "인사이트",
			Items:       &llmprovider.Schema{Type: llmprovider.TypeString},
		},
		"recommendations": {
			Type:        llmprovider.TypeArray,
			Description: "추천 사항 (최대 4개)",
			Items:       &llmprovider.Schema{Type: llmprovider.TypeString},
		},
	},
	Required: []string{"summary", "urgentTasks", "insights", "recommendations"},
	Ordering: []string{"summary", "urgentTasks", "insights", "recommendations"},
}

// rawDraft is the model output before normalization.
type rawDraft struct {
	Title       string  `json:"title"`
	Description *string `json:"description"`
	DueDate     *string `json:"due_date"`
	DueTime     *string `json:"due_time"`
	Priority    string  `json:"priority"`
	Category    *string `json:"category"`
}

type rawAnalysis struct {
	Summary         string   `json:"summary"`
	UrgentTasks     []string `json:"urgentTasks"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}
