// Package report is the reporting core: period boundary arithmetic,
// transaction aggregation, budget comparison, and trend construction.
// Everything in it is pure; row fetching belongs to the storage layer.
package report

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidPeriod marks malformed month/year input. Surfaced to API callers
// as a client error.
var ErrInvalidPeriod = errors.New("invalid period")

type PeriodKind int

const (
	MonthPeriod PeriodKind = iota
	WeekPeriod
	YearPeriod
)

// Period is a half-open calendar interval [Start, End) in UTC. A transaction
// dated exactly End belongs to the following period, never both.
type Period struct {
	Kind  PeriodKind
	Start time.Time
	End   time.Time
	Label string
}

// Contains reports whether t falls inside [Start, End).
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Previous returns the immediately preceding period of the same kind.
func (p Period) Previous() Period {
	switch p.Kind {
	case WeekPeriod:
		start := p.Start.AddDate(0, 0, -7)
		return Period{Kind: WeekPeriod, Start: start, End: p.Start, Label: weekLabel(start)}
	case YearPeriod:
		start := p.Start.AddDate(-1, 0, 0)
		return Period{Kind: YearPeriod, Start: start, End: p.Start, Label: start.Format("2006")}
	default:
		start := p.Start.AddDate(0, -1, 0)
		return Period{Kind: MonthPeriod, Start: start, End: p.Start, Label: start.Format("January 2006")}
	}
}

// ResolveMonth returns the period covering the given calendar month.
func ResolveMonth(year, month int) (Period, error) {
	if month < 1 || month > 12 {
		return Period{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	if year <= 0 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Kind:  MonthPeriod,
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: start.Format("January 2006"),
	}, nil
}

// ResolveWeek returns the Monday-to-Monday week containing the anchor date.
// A Sunday anchor resolves to the Monday six days prior.
func ResolveWeek(anchor time.Time) Period {
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, time.UTC)
	// time.Weekday numbers Sunday as 0; shift so Monday is offset 0.
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return Period{
		Kind:  WeekPeriod,
		Start: start,
		End:   start.AddDate(0, 0, 7),
		Label: weekLabel(start),
	}
}

// ResolveYear returns the period covering the given calendar year.
func ResolveYear(year int) (Period, error) {
	if year <= 0 {
		return Period{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return Period{
		Kind:  YearPeriod,
		Start: start,
		End:   start.AddDate(1, 0, 0),
		Label: start.Format("2006"),
	}, nil
}

// PreviousMonth returns the calendar month before (year, month), rolling
// January back to December of the prior year.
func PreviousMonth(year, month int) (int, int) {
	if month == 1 {
		return year - 1, 12
	}
	return year, month - 1
}

func weekLabel(start time.Time) string {
	return "Week of " + start.Format("2006-01-02")
}
