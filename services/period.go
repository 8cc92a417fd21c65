package services

import (
	"errors"
	"time"
)

// Period selects the analysis window.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
)

// ErrInvalidPeriod is returned for an unrecognized period key.
var ErrInvalidPeriod = errors.New("invalid period")

// DateRange is a resolved inclusive window plus the divisor used to
// normalize totals to a daily-equivalent figure.
type DateRange struct {
	Start time.Time
	End   time.Time
	Days  int
}

// ResolvePeriod translates a period key into a concrete range anchored at
// now. A sparse week still divides by 7: the figure is "average daily
// intake over the week", not "average over days with entries".
func ResolvePeriod(p Period, now time.Time) (DateRange, error) {
	switch p {
	case PeriodToday:
		return DateRange{Start: dayStart(now), End: now, Days: 1}, nil
	case PeriodWeek:
		return DateRange{Start: dayStart(now.AddDate(0, 0, -6)), End: now, Days: 7}, nil
	}
	return DateRange{}, ErrInvalidPeriod
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
