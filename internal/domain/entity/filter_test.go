package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDateRange_Contains(t *testing.T) {
	// Wednesday 2024-05-15 10:00 UTC; the week started Sunday 2024-05-12.
	now := time.Date(2024, time.May, 15, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		r    DateRange
		t    time.Time
		want bool
	}{
		{name: "all matches anything", r: DateRangeAll, t: time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "today start", r: DateRangeToday, t: time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), want: true},
		{name: "yesterday is not today", r: DateRangeToday, t: time.Date(2024, 5, 14, 23, 59, 0, 0, time.UTC), want: false},
		{name: "sunday opens the week", r: DateRangeWeek, t: time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), want: true},
		{name: "saturday before is last week", r: DateRangeWeek, t: time.Date(2024, 5, 11, 23, 0, 0, 0, time.UTC), want: false},
		{name: "saturday closes the week", r: DateRangeWeek, t: time.Date(2024, 5, 18, 22, 0, 0, 0, time.UTC), want: true},
		{name: "month start", r: DateRangeMonth, t: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "previous month", r: DateRangeMonth, t: time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC), want: false},
		{name: "same month last year", r: DateRangeMonth, t: time.Date(2023, 5, 15, 0, 0, 0, 0, time.UTC), want: false},
		{name: "zero time only matches all", r: DateRangeToday, t: time.Time{}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.r.Contains(tt.t, now))
		})
	}
}

func TestDateRange_WeekOnSunday(t *testing.T) {
	sunday := time.Date(2024, time.May, 12, 8, 0, 0, 0, time.UTC)

	assert.True(t, DateRangeWeek.Contains(time.Date(2024, 5, 12, 1, 0, 0, 0, time.UTC), sunday))
	assert.False(t, DateRangeWeek.Contains(time.Date(2024, 5, 11, 1, 0, 0, 0, time.UTC), sunday))
}

func TestParseDateRange(t *testing.T) {
	r, ok := ParseDateRange(" Week ")
	assert.True(t, ok)
	assert.Equal(t, DateRangeWeek, r)

	r, ok = ParseDateRange("")
	assert.True(t, ok)
	assert.Equal(t, DateRangeAll, r)

	_, ok = ParseDateRange("year")
	assert.False(t, ok)
}

func TestMatchesSearch(t *testing.T) {
	assert.True(t, MatchesSearch("john", "John Doe", "jd@x.com"))
	assert.True(t, MatchesSearch("JOHN", "Amy Smith", "john@x.com"))
	assert.False(t, MatchesSearch("john", "Bob", ""))
	assert.True(t, MatchesSearch("  ", "Bob"))
}

func TestFilterState_SameCriteria(t *testing.T) {
	base := DefaultFilterState()

	moved := base
	moved.Page = 4
	assert.True(t, base.SameCriteria(moved))

	searched := base
	searched.Search = "amy"
	assert.False(t, base.SameCriteria(searched))

	normalized := FilterState{Search: "  amy ", Page: -2}.Normalize()
	assert.Equal(t, "amy", normalized.Search)
	assert.Equal(t, StatusAll, normalized.Status)
	assert.Equal(t, DateRangeAll, normalized.DateRange)
	assert.Equal(t, 1, normalized.Page)
}
