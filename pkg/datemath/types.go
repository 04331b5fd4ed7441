package datemath

import "time"

const (
	// DateLayout is the wire format of calendar dates (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// ClockLayout is the wire format of wall-clock times (HH:mm).
	ClockLayout = "15:04"
)

// Range is a half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the range.
func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}
