package report

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveMonth_Bounds(t *testing.T) {
	period, err := ResolveMonth(2026, 2)
	assert.NoError(t, err)

	assert.Equal(t, MonthPeriod, period.Kind)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), period.End)
	assert.Equal(t, "February 2026", period.Label)
}

func TestResolveMonth_LeapFebruary(t *testing.T) {
	period, err := ResolveMonth(2024, 2)
	assert.NoError(t, err)

	// 2024 is a leap year, so the half-open range spans 29 days.
	assert.Equal(t, 29*24*time.Hour, period.End.Sub(period.Start))
}

func TestResolveMonth_December(t *testing.T) {
	period, err := ResolveMonth(2025, 12)
	assert.NoError(t, err)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), period.End)
}

func TestResolveMonth_Invalid(t *testing.T) {
	for _, tc := range []struct {
		name  string
		year  int
		month int
	}{
		{"month zero", 2026, 0},
		{"month thirteen", 2026, 13},
		{"month negative", 2026, -1},
		{"year zero", 0, 6},
		{"year negative", -5, 6},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ResolveMonth(tc.year, tc.month)
			assert.True(t, errors.Is(err, ErrInvalidPeriod))
		})
	}
}

func TestPeriod_Contains_HalfOpen(t *testing.T) {
	period, err := ResolveMonth(2026, 2)
	assert.NoError(t, err)

	assert.True(t, period.Contains(period.Start))
	assert.True(t, period.Contains(time.Date(2026, 2, 28, 23, 59, 59, 0, time.UTC)))
	assert.False(t, period.Contains(period.End))
	assert.False(t, period.Contains(period.Start.Add(-time.Nanosecond)))
}

func TestResolveWeek_MidWeekAnchor(t *testing.T) {
	// Thursday 2026-02-26 belongs to the Monday 2026-02-23 week, which runs
	// across the month boundary into March.
	period := ResolveWeek(time.Date(2026, 2, 26, 15, 30, 0, 0, time.UTC))

	assert.Equal(t, WeekPeriod, period.Kind)
	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), period.End)
	assert.Equal(t, "Week of 2026-02-23", period.Label)
}

func TestResolveWeek_MondayAnchor(t *testing.T) {
	monday := time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC)
	period := ResolveWeek(monday)

	assert.Equal(t, monday, period.Start)
	assert.Equal(t, monday.AddDate(0, 0, 7), period.End)
}

func TestResolveWeek_SundayAnchor(t *testing.T) {
	// A Sunday resolves to the Monday six days prior, not the next day.
	period := ResolveWeek(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2026, 2, 23, 0, 0, 0, 0, time.UTC), period.Start)
}

func TestResolveWeek_YearBoundary(t *testing.T) {
	// Thursday 2026-01-01 sits in the week of Monday 2025-12-29.
	period := ResolveWeek(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC), period.End)
}

func TestResolveYear_Bounds(t *testing.T) {
	period, err := ResolveYear(2026)
	assert.NoError(t, err)

	assert.Equal(t, YearPeriod, period.Kind)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), period.Start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), period.End)
}

func TestResolveYear_Invalid(t *testing.T) {
	_, err := ResolveYear(0)
	assert.True(t, errors.Is(err, ErrInvalidPeriod))
}

func TestPeriod_Previous_Month(t *testing.T) {
	period, err := ResolveMonth(2026, 1)
	assert.NoError(t, err)

	previous := period.Previous()
	assert.Equal(t, MonthPeriod, previous.Kind)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, period.Start, previous.End)
	assert.Equal(t, "December 2025", previous.Label)
}

func TestPeriod_Previous_Week(t *testing.T) {
	period := ResolveWeek(time.Date(2026, 2, 26, 0, 0, 0, 0, time.UTC))

	previous := period.Previous()
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, period.Start, previous.End)
}

func TestPeriod_Previous_Year(t *testing.T) {
	period, err := ResolveYear(2026)
	assert.NoError(t, err)

	previous := period.Previous()
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), previous.Start)
	assert.Equal(t, period.Start, previous.End)
	assert.Equal(t, "2025", previous.Label)
}

func TestPreviousMonth_JanuaryRollsBack(t *testing.T) {
	year, month := PreviousMonth(2026, 1)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 12, month)
}

func TestPreviousMonth_MidYear(t *testing.T) {
	year, month := PreviousMonth(2026, 7)
	assert.Equal(t, 2026, year)
	assert.Equal(t, 6, month)
}
