package solver_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carerota/roster/internal/domain"
	"github.com/carerota/roster/internal/solver"
	"github.com/carerota/roster/internal/testutil"
)

// oneWeekScenario builds the one-week, ten-employee, three-shift pilot
// scenario from the seed examples: enough headcount to clear coverage
// minima on every day without any absence or lock interaction. Coverage
// is set for weekdays only; the default test employees work Monday to
// Friday, so weekends carry no minimum.
func oneWeekScenario(t *testing.T) solver.Input {
	t.Helper()
	shifts := []solver.ShiftTypeInput{
		testutil.NewTestShiftType("veille", "22:00", "06:00", 8),
		testutil.NewTestShiftType("matin", "06:30", "14:30", 8),
		testutil.NewTestShiftType("soir", "14:30", "22:00", 7.5),
	}
	var employees []solver.EmployeeInput
	for i := 0; i < 10; i++ {
		role := domain.RoleInfirmier
		switch i % 3 {
		case 1:
			role = domain.RoleASSC
		case 2:
			role = domain.RoleAideSoignant
		}
		employees = append(employees, testutil.NewTestEmployee("", role))
	}
	var coverage []solver.CoverageInput
	for _, dt := range []domain.DayType{domain.DayWeekday} {
		for _, s := range shifts {
			coverage = append(coverage, testutil.NewTestCoverage(s.ID, dt,
				testutil.WithMinInfirmier(1), testutil.WithMinASSC(1), testutil.WithMinAideSoignant(1)))
		}
	}
	return solver.Input{
		Employees:        employees,
		ShiftTypes:       shifts,
		Coverage:         coverage,
		PeriodStart:      "2026-03-02",
		PeriodEnd:        "2026-03-08",
		TimeLimitSeconds: 10,
	}
}

func TestSolve_OneWeekPilotIsFeasible(t *testing.T) {
	result, err := solver.Solve(oneWeekScenario(t))
	require.NoError(t, err)
	require.NotNil(t, result, "expected a feasible schedule for the one-week pilot scenario")
	assert.GreaterOrEqual(t, len(result.Assignments), 15)
	assert.Contains(t, []solver.Status{solver.StatusOptimal, solver.StatusFeasible}, result.Stats.Status)
}

func TestSolve_AbsenceIsNeverScheduled(t *testing.T) {
	in := oneWeekScenario(t)
	absentEmployee := in.Employees[0].ID
	in.Absences = []solver.AbsenceInput{testutil.NewTestAbsence(absentEmployee, "2026-03-02", "2026-03-04")}

	result, err := solver.Solve(in)
	require.NoError(t, err)
	require.NotNil(t, result)
	for _, a := range result.Assignments {
		if a.EmployeeID != absentEmployee {
			continue
		}
		assert.NotContains(t, []string{"2026-03-02", "2026-03-03", "2026-03-04"}, a.Date)
	}
}

func TestSolve_UnavailableWeekdayIsNeverScheduled(t *testing.T) {
	in := oneWeekScenario(t)
	restrictedEmployee := in.Employees[0].ID
	in.Employees[0].ActivityRate = 20
	in.Employees[0].WorkingDays = []string{"lundi"}

	result, err := solver.Solve(in)
	require.NoError(t, err)
	require.NotNil(t, result)
	for _, a := range result.Assignments {
		if a.EmployeeID != restrictedEmployee {
			continue
		}
		assert.Equal(t, "2026-03-02", a.Date)
	}
}

func TestSolve_LockedAssignmentIsPreservedAndMarked(t *testing.T) {
	in := oneWeekScenario(t)
	lockedEmployee := in.Employees[0].ID
	in.LockedAssignments = []solver.LockedAssignmentInput{
		testutil.NewTestLock(lockedEmployee, "matin", "2026-03-02"),
	}

	result, err := solver.Solve(in)
	require.NoError(t, err)
	require.NotNil(t, result)

	var found bool
	for _, a := range result.Assignments {
		if a.EmployeeID == lockedEmployee && a.Date == "2026-03-02" {
			found = true
			assert.Equal(t, "matin", a.ShiftTypeID)
			assert.True(t, a.IsLocked)
		}
	}
	assert.True(t, found, "locked assignment should appear in the result")
}

func TestSolve_RejectsMalformedInputBeforeSolving(t *testing.T) {
	in := oneWeekScenario(t)
	in.PeriodEnd = "not-a-date"

	result, err := solver.Solve(in)
	require.Error(t, err)
	assert.Nil(t, result)
	assert.True(t, errors.Is(err, solver.ErrInput))
}

func TestSolve_PilotScaleScenario(t *testing.T) {
	shifts := []solver.ShiftTypeInput{
		testutil.NewTestShiftType("veille", "22:00", "06:00", 8),
		testutil.NewTestShiftType("matin", "06:30", "14:30", 8),
		testutil.NewTestShiftType("soir", "14:30", "22:00", 7.5),
	}
	var employees []solver.EmployeeInput
	for i := 0; i < 25; i++ {
		role := domain.RoleInfirmier
		switch i % 3 {
		case 1:
			role = domain.RoleASSC
		case 2:
			role = domain.RoleAideSoignant
		}
		employees = append(employees, testutil.NewTestEmployee("", role))
	}
	var coverage []solver.CoverageInput
	for _, dt := range []domain.DayType{domain.DayWeekday} {
		for _, s := range shifts {
			coverage = append(coverage, testutil.NewTestCoverage(s.ID, dt,
				testutil.WithMinInfirmier(1), testutil.WithMinASSC(1), testutil.WithMinAideSoignant(1)))
		}
	}
	in := solver.Input{
		Employees:        employees,
		ShiftTypes:       shifts,
		Coverage:         coverage,
		PeriodStart:      "2026-03-02",
		PeriodEnd:        "2026-03-31",
		TimeLimitSeconds: 30,
	}

	result, err := solver.Solve(in)
	require.NoError(t, err)
	require.NotNil(t, result, "expected a feasible schedule for the 25-employee, 30-day pilot")
	assert.Greater(t, len(result.Assignments), 100)
}
