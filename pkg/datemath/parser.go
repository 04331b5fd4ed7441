package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser converts relative date expressions to absolute dates in one location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// e.g. "Asia/Seoul"
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// NewParserIn creates a parser bound to an already loaded location.
func NewParserIn(loc *time.Location) *Parser {
	if loc == nil {
		loc = time.UTC
	}
	return &Parser{location: loc}
}

// Location returns the parser's timezone.
func (p *Parser) Location() *time.Location {
	return p.location
}

var (
	inDurationRe = regexp.MustCompile(`^in (\d+) (day|days|week|weeks|month|months)$`)
	koAfterRe    = regexp.MustCompile(`^(\d+)\s*(일|주|개월|달)\s*(후|뒤)$`)

	englishWeekdays = map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}

	koreanWeekdays = map[string]time.Weekday{
		"일요일": time.Sunday,
		"월요일": time.Monday,
		"화요일": time.Tuesday,
		"수요일": time.Wednesday,
		"목요일": time.Thursday,
		"금요일": time.Friday,
		"토요일": time.Saturday,
	}
)

var koreanWeekdayNames = [...]string{"일요일", "월요일", "화요일", "수요일", "목요일", "금요일", "토요일"}

// KoreanWeekday returns the Korean name of a weekday, e.g. "화요일".
func KoreanWeekday(d time.Weekday) string {
	return koreanWeekdayNames[d]
}

// Parse converts a relative date expression to the start of the resolved day.
// The baseTime is used as the reference point (usually time.Now()).
func (p *Parser) Parse(relative string, baseTime time.Time) (time.Time, error) {
	relative = strings.Join(strings.Fields(strings.ToLower(relative)), " ")

	switch relative {
	case "today", "오늘":
		return p.StartOfDay(baseTime), nil
	case "tomorrow", "내일":
		return p.StartOfDay(baseTime.AddDate(0, 0, 1)), nil
	case "day after tomorrow", "모레":
		return p.StartOfDay(baseTime.AddDate(0, 0, 2)), nil
	case "yesterday", "어제":
		return p.StartOfDay(baseTime.AddDate(0, 0, -1)), nil
	case "next week", "다음 주", "다음주":
		return p.StartOfDay(baseTime.AddDate(0, 0, 7)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, baseTime)
	}
	if m := koAfterRe.FindStringSubmatch(relative); m != nil {
		return p.parseKoreanAfter(m, baseTime)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(strings.TrimPrefix(relative, "next "), baseTime)
	}
	if rest, ok := cutKoreanNextWeek(relative); ok {
		return p.parseKoreanNextWeekday(rest, baseTime)
	}

	return time.Time{}, fmt.Errorf("unrecognized relative date: %q", relative)
}

// parseInDuration handles patterns like "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, baseTime time.Time) (time.Time, error) {
	matches := inDurationRe.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return time.Time{}, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])
	unit := matches[2]

	switch {
	case strings.HasPrefix(unit, "day"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseKoreanAfter handles "3일 후", "2주 뒤", "1개월 후".
func (p *Parser) parseKoreanAfter(m []string, baseTime time.Time) (time.Time, error) {
	amount, _ := strconv.Atoi(m[1])
	switch m[2] {
	case "일":
		return p.StartOfDay(baseTime.AddDate(0, 0, amount)), nil
	case "주":
		return p.StartOfDay(baseTime.AddDate(0, 0, amount*7)), nil
	default:
		return p.StartOfDay(baseTime.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday": the first such weekday strictly after baseTime.
func (p *Parser) parseNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := englishWeekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}

	base := baseTime.In(p.location)
	daysUntil := int(targetWeekday - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.StartOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// parseKoreanNextWeekday handles "다음 주 월요일": that weekday in the following Sunday-start week.
func (p *Parser) parseKoreanNextWeekday(dayName string, baseTime time.Time) (time.Time, error) {
	targetWeekday, ok := koreanWeekdays[dayName]
	if !ok {
		return time.Time{}, fmt.Errorf("unknown weekday: %q", dayName)
	}
	nextWeek := p.StartOfWeek(baseTime).AddDate(0, 0, 7)
	return nextWeek.AddDate(0, 0, int(targetWeekday)), nil
}

func cutKoreanNextWeek(s string) (string, bool) {
	for _, prefix := range []string{"다음 주 ", "다음주 "} {
		if rest, ok := strings.CutPrefix(s, prefix); ok {
			return rest, true
		}
	}
	return "", false
}
