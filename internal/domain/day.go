package domain

import (
	"fmt"
	"time"
)

// Day is one calendar date in a solve horizon, with its derived weekday
// and coverage day-class precomputed once during normalization.
type Day struct {
	Date    time.Time
	Weekday Weekday
	Type    DayType
}

// NewDay derives the French weekday name and DayType for a civil date.
func NewDay(date time.Time) Day {
	wd := weekdayOrder[int(date.Weekday())]
	return Day{Date: date, Weekday: wd, Type: dayType(wd)}
}

func dayType(wd Weekday) DayType {
	switch wd {
	case Samedi:
		return DaySaturday
	case Dimanche:
		return DaySunday
	default:
		return DayWeekday
	}
}

// BuildHorizon enumerates the contiguous list of Days from periodStart to
// periodEnd inclusive, stepping one calendar day at a time. Returns an
// error if periodEnd precedes periodStart or either date is malformed.
func BuildHorizon(periodStart, periodEnd string) ([]Day, error) {
	start, err := parseISODate(periodStart)
	if err != nil {
		return nil, fmt.Errorf("horizon: %w: period_start %q: %v", ErrInvalidInput, periodStart, err)
	}
	end, err := parseISODate(periodEnd)
	if err != nil {
		return nil, fmt.Errorf("horizon: %w: period_end %q: %v", ErrInvalidInput, periodEnd, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("horizon: %w: period_end before period_start", ErrInvalidInput)
	}
	var days []Day
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, NewDay(d))
	}
	return days, nil
}

// DateString renders the Day's date as "YYYY-MM-DD".
func (d Day) DateString() string {
	return d.Date.Format("2006-01-02")
}
