package solver

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carerota/roster/internal/domain"
)

func validInput() Input {
	return Input{
		Employees: []EmployeeInput{
			{ID: "e1", Role: "infirmier", ActivityRate: 100, WorkingDays: []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi"}},
		},
		ShiftTypes: []ShiftTypeInput{
			{ID: "matin", Name: "Matin", StartTime: "06:30", EndTime: "14:30", DurationHours: 8},
		},
		Coverage: []CoverageInput{
			{ShiftTypeID: "matin", DayType: "weekday", MinInfirmier: 1},
		},
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-08",
	}
}

func TestNormalize_ValidInput(t *testing.T) {
	n, err := normalize(validInput())
	require.NoError(t, err)
	assert.Len(t, n.employees, 1)
	assert.Len(t, n.shiftTypes, 1)
	assert.Len(t, n.days, 7)
	assert.NotNil(t, n.coverageFor("matin", domain.DayWeekday))
	assert.Nil(t, n.coverageFor("matin", domain.DaySaturday))
}

func TestNormalize_RejectsDuplicateEmployeeID(t *testing.T) {
	in := validInput()
	in.Employees = append(in.Employees, in.Employees[0])
	_, err := normalize(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestNormalize_RejectsDanglingCoverageReference(t *testing.T) {
	in := validInput()
	in.Coverage[0].ShiftTypeID = "unknown-shift"
	_, err := normalize(in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInput))
}

func TestNormalize_RejectsDanglingAbsenceReference(t *testing.T) {
	in := validInput()
	in.Absences = []AbsenceInput{{EmployeeID: "unknown-emp", DateStart: "2026-03-02", DateEnd: "2026-03-03", Kind: "conge"}}
	_, err := normalize(in)
	require.Error(t, err)
}

func TestNormalize_RejectsDanglingLockReference(t *testing.T) {
	in := validInput()
	in.LockedAssignments = []LockedAssignmentInput{{EmployeeID: "e1", ShiftTypeID: "unknown-shift", Date: "2026-03-02"}}
	_, err := normalize(in)
	require.Error(t, err)
}

func TestNormalize_RejectsInvertedPeriod(t *testing.T) {
	in := validInput()
	in.PeriodStart, in.PeriodEnd = in.PeriodEnd, in.PeriodStart
	_, err := normalize(in)
	require.Error(t, err)
}

func TestNormalize_AcceptsValidLock(t *testing.T) {
	in := validInput()
	in.LockedAssignments = []LockedAssignmentInput{{EmployeeID: "e1", ShiftTypeID: "matin", Date: "2026-03-02"}}
	n, err := normalize(in)
	require.NoError(t, err)
	require.Len(t, n.locks, 1)
	assert.True(t, n.lockedKeys[n.locks[0].Key()])
}
