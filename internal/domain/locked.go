package domain

import (
	"fmt"
	"time"
)

// LockedAssignment forces x[employee,date,shift]=1 on input.
type LockedAssignment struct {
	EmployeeID  string
	ShiftTypeID string
	Date        time.Time
}

// NewLockedAssignment parses the date and constructs a LockedAssignment.
// Referential validity (that employee/shift ids actually exist) is
// checked during normalization, once the full entity set is available.
func NewLockedAssignment(employeeID, shiftTypeID, date string) (*LockedAssignment, error) {
	if employeeID == "" || shiftTypeID == "" {
		return nil, fmt.Errorf("locked assignment: %w: empty employee_id or shift_type_id", ErrInvalidInput)
	}
	d, err := parseISODate(date)
	if err != nil {
		return nil, fmt.Errorf("locked assignment for %s/%s: %w: date %q: %v", employeeID, shiftTypeID, ErrInvalidInput, date, err)
	}
	return &LockedAssignment{EmployeeID: employeeID, ShiftTypeID: shiftTypeID, Date: d}, nil
}

// Key returns the (employee_id, date) pair used by the result extractor
// to mark is_locked by membership.
func (l *LockedAssignment) Key() LockKey {
	return LockKey{EmployeeID: l.EmployeeID, Date: l.Date.Format("2006-01-02")}
}

// LockKey identifies a locked (employee, date) pair independent of which
// shift was locked, matching the spec's is_locked membership test.
type LockKey struct {
	EmployeeID string
	Date       string
}
