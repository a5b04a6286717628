package entity

import (
	"strings"
	"time"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// DateRange buckets records by creation time.
type DateRange string

const (
	DateRangeAll   DateRange = "all"
	DateRangeToday DateRange = "today"
	DateRangeWeek  DateRange = "week" // Calendar week starting Sunday
	DateRangeMonth DateRange = "month"
)

// ParseDateRange accepts the dropdown values; empty means all.
func ParseDateRange(raw string) (DateRange, bool) {
	switch DateRange(strings.ToLower(strings.TrimSpace(raw))) {
	case "", DateRangeAll:
		return DateRangeAll, true
	case DateRangeToday:
		return DateRangeToday, true
	case DateRangeWeek:
		return DateRangeWeek, true
	case DateRangeMonth:
		return DateRangeMonth, true
	default:
		return "", false
	}
}

// Contains reports whether t falls in the bucket relative to now, in now's location.
func (d DateRange) Contains(t, now time.Time) bool {
	if d == DateRangeAll || d == "" {
		return true
	}
	if t.IsZero() {
		return false
	}

	t = t.In(now.Location())
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch d {
	case DateRangeToday:
		return !t.Before(today) && t.Before(today.AddDate(0, 0, 1))
	case DateRangeWeek:
		start := today.AddDate(0, 0, -int(now.Weekday()))

		return !t.Before(start) && t.Before(start.AddDate(0, 0, 7))
	case DateRangeMonth:
		return t.Year() == now.Year() && t.Month() == now.Month()
	default:
		return false
	}
}

// FilterState is the search text and dropdown selections applied to a loaded page.
type FilterState struct {
	Search    string    `json:"search"`
	Status    string    `json:"status"`
	DateRange DateRange `json:"dateRange"`
	Page      int       `json:"page"`
}

// DefaultFilterState shows everything on the first page.
func DefaultFilterState() FilterState {
	return FilterState{
		Status:    StatusAll,
		DateRange: DateRangeAll,
		Page:      1,
	}
}

// Normalize fills empty selections with "all" and clamps the page.
func (f FilterState) Normalize() FilterState {
	f.Search = strings.TrimSpace(f.Search)
	if strings.TrimSpace(f.Status) == "" {
		f.Status = StatusAll
	}
	if f.DateRange == "" {
		f.DateRange = DateRangeAll
	}
	if f.Page < 1 {
		f.Page = 1
	}

	return f
}

// SameCriteria reports whether two states differ only by page.
func (f FilterState) SameCriteria(other FilterState) bool {
	return f.Search == other.Search &&
		strings.EqualFold(f.Status, other.Status) &&
		f.DateRange == other.DateRange
}

// MatchesSearch is a case-insensitive substring test; any field containing the query matches.
func MatchesSearch(query string, fields ...string) bool {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return true
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}

	return false
}
