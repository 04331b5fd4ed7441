package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var (
	dateRe  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// EndOfDay returns 23:59:59 at the end of the given day.
func (p *Parser) EndOfDay(t time.Time) time.Time {
	return p.StartOfDay(t).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
}

// StartOfWeek returns midnight of the Sunday that starts t's week.
func (p *Parser) StartOfWeek(t time.Time) time.Time {
	day := p.StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// DayRange returns [start of t's day, start of next day).
func (p *Parser) DayRange(t time.Time) Range {
	start := p.StartOfDay(t)
	return Range{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekRange returns [Sunday 00:00, next Sunday 00:00) around t.
func (p *Parser) WeekRange(t time.Time) Range {
	start := p.StartOfWeek(t)
	return Range{Start: start, End: start.AddDate(0, 0, 7)}
}

// ParseDate parses a strict YYYY-MM-DD calendar date at midnight in the parser's timezone.
// Impossible dates such as 2025-02-30 are rejected.
func (p *Parser) ParseDate(s string) (time.Time, error) {
	if !dateRe.MatchString(s) {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD", s)
	}
	t, err := time.ParseInLocation(DateLayout, s, p.location)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD in the parser's timezone.
func (p *Parser) FormatDate(t time.Time) string {
	return t.In(p.location).Format(DateLayout)
}

// ParseClock parses a strict 24-hour HH:mm value.
func ParseClock(s string) (hour, minute int, ok bool) {
	m := clockRe.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	return hour, minute, true
}

// IsClock reports whether s is a valid HH:mm value.
func IsClock(s string) bool {
	_, _, ok := ParseClock(s)
	return ok
}

// DueMoment resolves a due date and optional due time to an instant.
// A date without a valid time resolves to the end of that day.
func (p *Parser) DueMoment(date, clock string) (time.Time, bool) {
	day, err := p.ParseDate(date)
	if err != nil {
		return time.Time{}, false
	}
	if h, m, ok := ParseClock(clock); ok {
		return day.Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute), true
	}
	return p.EndOfDay(day), true
}
