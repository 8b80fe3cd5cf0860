// Package testutil provides functional-options fixture builders for
// solver tests, so test scenarios read as a short list of deviations
// from a sane default rather than repeating every field.
package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/carerota/roster/internal/domain"
	"github.com/carerota/roster/internal/solver"
)

var testIDCounter atomic.Int64

func nextID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, testIDCounter.Add(1))
}

// Employee options.
type EmployeeOption func(*solver.EmployeeInput)

func WithRole(r domain.Role) EmployeeOption {
	return func(e *solver.EmployeeInput) { e.Role = string(r) }
}

func WithActivityRate(rate int) EmployeeOption {
	return func(e *solver.EmployeeInput) { e.ActivityRate = rate }
}

func WithWorkingDays(days ...domain.Weekday) EmployeeOption {
	return func(e *solver.EmployeeInput) {
		e.WorkingDays = make([]string, len(days))
		for i, d := range days {
			e.WorkingDays[i] = string(d)
		}
	}
}

func WithPreferredShifts(shiftTypeIDs ...string) EmployeeOption {
	return func(e *solver.EmployeeInput) { e.PreferredShifts = shiftTypeIDs }
}

// NewTestEmployee builds a full-time (activity_rate=100, Monday–Friday)
// employee with the given id and role, customized by opts.
func NewTestEmployee(id string, role domain.Role, opts ...EmployeeOption) solver.EmployeeInput {
	if id == "" {
		id = nextID("emp")
	}
	e := solver.EmployeeInput{
		ID:           id,
		Role:         string(role),
		ActivityRate: 100,
		WorkingDays:  []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi"},
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// ShiftType options.
type ShiftTypeOption func(*solver.ShiftTypeInput)

func WithShiftName(name string) ShiftTypeOption {
	return func(s *solver.ShiftTypeInput) { s.Name = name }
}

// NewTestShiftType builds a ShiftTypeInput from HH:MM bounds.
func NewTestShiftType(id, startTime, endTime string, durationHours float64, opts ...ShiftTypeOption) solver.ShiftTypeInput {
	if id == "" {
		id = nextID("shift")
	}
	s := solver.ShiftTypeInput{
		ID:            id,
		Name:          id,
		StartTime:     startTime,
		EndTime:       endTime,
		DurationHours: durationHours,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Coverage options.
type CoverageOption func(*solver.CoverageInput)

func WithMinInfirmier(n int) CoverageOption {
	return func(c *solver.CoverageInput) { c.MinInfirmier = n }
}

func WithMinASSC(n int) CoverageOption {
	return func(c *solver.CoverageInput) { c.MinASSC = n }
}

func WithMinAideSoignant(n int) CoverageOption {
	return func(c *solver.CoverageInput) { c.MinAideSoignant = n }
}

// NewTestCoverage builds a CoverageRequirement for the given (shift,
// day-type) pair with no minimums set until opts apply them.
func NewTestCoverage(shiftTypeID string, dayType domain.DayType, opts ...CoverageOption) solver.CoverageInput {
	c := solver.CoverageInput{ShiftTypeID: shiftTypeID, DayType: string(dayType)}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// NewTestAbsence builds an AbsenceInput covering [dateStart, dateEnd].
func NewTestAbsence(employeeID, dateStart, dateEnd string) solver.AbsenceInput {
	return solver.AbsenceInput{
		EmployeeID: employeeID,
		DateStart:  dateStart,
		DateEnd:    dateEnd,
		Kind:       "conge",
	}
}

// NewTestLock builds a LockedAssignmentInput.
func NewTestLock(employeeID, shiftTypeID, date string) solver.LockedAssignmentInput {
	return solver.LockedAssignmentInput{
		EmployeeID:  employeeID,
		ShiftTypeID: shiftTypeID,
		Date:        date,
	}
}

// NewTestConstraintRule builds an active ConstraintRule with the given
// parameter map.
func NewTestConstraintRule(name string, parameter map[string]any) domain.ConstraintRule {
	return domain.ConstraintRule{Name: name, Parameter: parameter, IsActive: true}
}
