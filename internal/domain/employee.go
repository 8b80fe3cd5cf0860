package domain

import "fmt"

// Employee is a caregiver schedulable onto shifts for the duration of a
// solve. Instances are immutable snapshots handed to the solver.
type Employee struct {
	ID              string
	Role            Role
	ActivityRate    int
	WorkingDays     []Weekday
	PreferredShifts []string // shift-type ids; optional, may be empty

	workingDaySet map[Weekday]bool
}

// NewEmployee validates and constructs an Employee. It returns an error
// describing the first invariant violated, matching the normalization
// rules in spec section 7.1: activity_rate must be one of {20,40,60,80,100}
// and the working-day count must equal activity_rate/20.
func NewEmployee(id string, role Role, activityRate int, workingDays []Weekday, preferredShifts []string) (*Employee, error) {
	if id == "" {
		return nil, fmt.Errorf("employee: %w: empty id", ErrInvalidInput)
	}
	if !validRole(string(role)) {
		return nil, fmt.Errorf("employee %s: %w: unknown role %q", id, ErrInvalidInput, role)
	}
	if !activityRates[activityRate] {
		return nil, fmt.Errorf("employee %s: %w: activity_rate %d not in {20,40,60,80,100}", id, ErrInvalidInput, activityRate)
	}
	set := make(map[Weekday]bool, len(workingDays))
	for _, d := range workingDays {
		if !validWeekday(string(d)) {
			return nil, fmt.Errorf("employee %s: %w: unknown weekday %q", id, ErrInvalidInput, d)
		}
		set[d] = true
	}
	if len(set) != activityRate/20 {
		return nil, fmt.Errorf("employee %s: %w: working_days has %d entries, want %d for activity_rate %d",
			id, ErrInvalidInput, len(set), activityRate/20, activityRate)
	}
	return &Employee{
		ID:              id,
		Role:            role,
		ActivityRate:    activityRate,
		WorkingDays:     workingDays,
		PreferredShifts: preferredShifts,
		workingDaySet:   set,
	}, nil
}

// MaxWeeklyHours returns 42 * activity_rate / 100, the weekly-hours cap
// used by the weekly-hours hard constraint.
func (e *Employee) MaxWeeklyHours() float64 {
	return 42.0 * float64(e.ActivityRate) / 100.0
}

// WorksOn reports whether the employee's working-days pattern includes
// the given weekday.
func (e *Employee) WorksOn(d Weekday) bool {
	return e.workingDaySet[d]
}

// PrefersShift reports whether the given shift-type id is in the
// employee's preference list.
func (e *Employee) PrefersShift(shiftTypeID string) bool {
	for _, s := range e.PreferredShifts {
		if s == shiftTypeID {
			return true
		}
	}
	return false
}
