package assistant

import (
	"fmt"

	"smart-todo/internal/model"
)

// --- UseCase Inputs ---

type GenerateInput struct {
	Text string
}

type AnalyzeInput struct {
	Todos  []model.Task
	Period model.Period
}

// PastDuePolicy decides what happens to a generated due date that is already past.
type PastDuePolicy string

const (
	PastDueClamp PastDuePolicy = "clamp" // replace with today
	PastDueDrop  PastDuePolicy = "drop"  // remove the due date
	PastDueKeep  PastDuePolicy = "keep"  // leave unchanged
)

// ParsePastDuePolicy validates a configured policy; empty means clamp.
func ParsePastDuePolicy(s string) (PastDuePolicy, error) {
	switch p := PastDuePolicy(s); p {
	case "":
		return PastDueClamp, nil
	case PastDueClamp, PastDueDrop, PastDueKeep:
		return p, nil
	}
	return "", fmt.Errorf("unknown past due policy %q", s)
}
