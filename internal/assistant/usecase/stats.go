package usecase

import (
	"math"
	"sort"
	"strconv"
	"time"

	"smart-todo/internal/model"
	"smart-todo/pkg/datemath"
)

const uncategorized = "미분류"

// bucket counts tasks and completions in one group.
type bucket struct {
	Total     int
	Completed int
}

func (b *bucket) add(completed bool) {
	b.Total++
	if completed {
		b.Completed++
	}
}

// Rate is the completion percentage of the bucket.
func (b bucket) Rate() string {
	return completionRate(b.Completed, b.Total)
}

// timeSlot is a band of the day keyed by due time, [From, To) in hours.
type timeSlot struct {
	Label string
	From  int
	To    int
}

var timeSlots = []timeSlot{
	{Label: "09-12", From: 9, To: 12},
	{Label: "12-18", From: 12, To: 18},
	{Label: "18-21", From: 18, To: 21},
	{Label: "21-24", From: 21, To: 24},
}

// namedBucket pairs a group label with its counts.
type namedBucket struct {
	Name string
	bucket
}

type todoStats struct {
	Total      int
	Completed  int
	Incomplete int

	ByPriority map[model.Priority]*bucket
	ByCategory map[string]*bucket
	BySlot     []namedBucket // same order as timeSlots
	ByWeekday  [7]bucket     // indexed by time.Weekday

	Overdue int
	DueSoon int // due within the next 24h, not completed
	OnTime  int // completed no later than the due moment
}

// aggregateStats is pure: the result depends only on its arguments.
func aggregateStats(todos []model.Task, now time.Time, dates *datemath.Parser) todoStats {
	s := todoStats{
		ByPriority: make(map[model.Priority]*bucket, len(model.Priorities)),
		ByCategory: make(map[string]*bucket),
		BySlot:     make([]namedBucket, len(timeSlots)),
	}
	for _, p := range model.Priorities {
		s.ByPriority[p] = &bucket{}
	}
	for i, slot := range timeSlots {
		s.BySlot[i].Name = slot.Label
	}

	soon := now.Add(24 * time.Hour)

	for _, t := range todos {
		s.Total++
		if t.Completed {
			s.Completed++
		}

		prio := t.Priority
		if !prio.Valid() {
			prio = model.PriorityMedium
		}
		s.ByPriority[prio].add(t.Completed)

		cat := t.Category
		if cat == "" {
			cat = uncategorized
		}
		if s.ByCategory[cat] == nil {
			s.ByCategory[cat] = &bucket{}
		}
		s.ByCategory[cat].add(t.Completed)

		if h, _, ok := datemath.ParseClock(t.DueTime); ok {
			if i := slotIndex(h); i >= 0 {
				s.BySlot[i].add(t.Completed)
			}
		}

		if day, err := dates.ParseDate(t.DueDate); err == nil {
			s.ByWeekday[day.Weekday()].add(t.Completed)
		}

		due, hasDue := dates.DueMoment(t.DueDate, t.DueTime)
		switch {
		case t.Completed:
			if !hasDue || !completionTime(t).After(due) {
				s.OnTime++
			}
		case hasDue && due.Before(now):
			s.Overdue++
		case hasDue && !due.After(soon):
			s.DueSoon++
		}
	}

	s.Incomplete = s.Total - s.Completed
	return s
}

// completionTime uses CompletedAt, falling back to CreatedAt for rows that predate it.
func completionTime(t model.Task) time.Time {
	if t.CompletedAt != nil {
		return *t.CompletedAt
	}
	return t.CreatedAt
}

func slotIndex(hour int) int {
	for i, slot := range timeSlots {
		if hour >= slot.From && hour < slot.To {
			return i
		}
	}
	return -1
}

// completionRate renders done/total as an integer percentage; an empty group is "0".
func completionRate(done, total int) string {
	if total <= 0 {
		return "0"
	}
	return strconv.Itoa(int(math.Round(float64(done) * 100 / float64(total))))
}

// CompletionPercent is the overall completion percentage as a number.
func (s todoStats) CompletionPercent() int {
	if s.Total == 0 {
		return 0
	}
	return int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
}

// Categories returns category buckets sorted by size, then name.
func (s todoStats) Categories() []namedBucket {
	out := make([]namedBucket, 0, len(s.ByCategory))
	for name, b := range s.ByCategory {
		out = append(out, namedBucket{Name: name, bucket: *b})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// RankedSlots returns non-empty time slots by completion rate, best first.
func (s todoStats) RankedSlots() []namedBucket {
	var out []namedBucket
	for _, b := range s.BySlot {
		if b.Total > 0 {
			out = append(out, b)
		}
	}
	sortByRate(out)
	return out
}

// RankedWeekdays returns non-empty weekdays by completion rate, best first.
func (s todoStats) RankedWeekdays() []namedBucket {
	var out []namedBucket
	for d, b := range s.ByWeekday {
		if b.Total > 0 {
			out = append(out, namedBucket{Name: datemath.KoreanWeekday(time.Weekday(d)), bucket: b})
		}
	}
	sortByRate(out)
	return out
}

func sortByRate(items []namedBucket) {
	sort.SliceStable(items, func(i, j int) bool {
		ri := float64(items[i].Completed) / float64(items[i].Total)
		rj := float64(items[j].Completed) / float64(items[j].Total)
		if ri != rj {
			return ri > rj
		}
		return items[i].Total > items[j].Total
	})
}
