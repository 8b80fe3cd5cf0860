package domain

import (
	"fmt"
	"time"
)

// Absence forbids all assignments for one employee across an inclusive
// date range.
type Absence struct {
	EmployeeID string
	DateStart  time.Time
	DateEnd    time.Time
	Kind       string
}

// NewAbsence parses the ISO date bounds and constructs an Absence.
func NewAbsence(employeeID, dateStart, dateEnd, kind string) (*Absence, error) {
	if employeeID == "" {
		return nil, fmt.Errorf("absence: %w: empty employee_id", ErrInvalidInput)
	}
	start, err := parseISODate(dateStart)
	if err != nil {
		return nil, fmt.Errorf("absence for %s: %w: date_start %q: %v", employeeID, ErrInvalidInput, dateStart, err)
	}
	end, err := parseISODate(dateEnd)
	if err != nil {
		return nil, fmt.Errorf("absence for %s: %w: date_end %q: %v", employeeID, ErrInvalidInput, dateEnd, err)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("absence for %s: %w: date_end before date_start", employeeID, ErrInvalidInput)
	}
	return &Absence{EmployeeID: employeeID, DateStart: start, DateEnd: end, Kind: kind}, nil
}

// Covers reports whether the given civil date falls within the absence's
// inclusive range.
func (a *Absence) Covers(d time.Time) bool {
	return !d.Before(a.DateStart) && !d.After(a.DateEnd)
}

func parseISODate(s string) (time.Time, error) {
	return time.Parse("2006-01-02", s)
}
