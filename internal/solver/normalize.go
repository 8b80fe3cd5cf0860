package solver

import (
	"github.com/carerota/roster/internal/domain"
)

// normalized is the fully-validated, typed snapshot the model builder
// consumes. Every cross-reference (coverage -> shift, lock -> employee
// and shift) has already been checked against the other input sets.
type normalized struct {
	employees  []*domain.Employee
	shiftTypes []*domain.ShiftType
	coverage   []*domain.CoverageRequirement
	absences   []*domain.Absence
	locks      []*domain.LockedAssignment
	days       []domain.Day

	employeeByID  map[string]*domain.Employee
	shiftByID     map[string]*domain.ShiftType
	coverageByKey map[coverageKey]*domain.CoverageRequirement
	lockedKeys    map[domain.LockKey]bool
}

type coverageKey struct {
	shiftTypeID string
	dayType     domain.DayType
}

// normalize converts raw Input into typed, cross-referenced entities.
// It returns an *InputError (wrapping ErrInput) for any malformed
// record or dangling reference, before any CP-SAT work begins.
func normalize(in Input) (*normalized, error) {
	employees := make([]*domain.Employee, 0, len(in.Employees))
	employeeByID := make(map[string]*domain.Employee, len(in.Employees))
	for _, e := range in.Employees {
		days := make([]domain.Weekday, len(e.WorkingDays))
		for i, d := range e.WorkingDays {
			days[i] = domain.Weekday(d)
		}
		emp, err := domain.NewEmployee(e.ID, domain.Role(e.Role), e.ActivityRate, days, e.PreferredShifts)
		if err != nil {
			return nil, inputErrorf("employees", "%v", err)
		}
		if _, dup := employeeByID[emp.ID]; dup {
			return nil, inputErrorf("employees", "duplicate employee id %q", emp.ID)
		}
		employees = append(employees, emp)
		employeeByID[emp.ID] = emp
	}

	shiftTypes := make([]*domain.ShiftType, 0, len(in.ShiftTypes))
	shiftByID := make(map[string]*domain.ShiftType, len(in.ShiftTypes))
	for _, s := range in.ShiftTypes {
		st, err := domain.NewShiftType(s.ID, s.Name, s.StartTime, s.EndTime, s.DurationHours)
		if err != nil {
			return nil, inputErrorf("shift_types", "%v", err)
		}
		if _, dup := shiftByID[st.ID]; dup {
			return nil, inputErrorf("shift_types", "duplicate shift type id %q", st.ID)
		}
		shiftTypes = append(shiftTypes, st)
		shiftByID[st.ID] = st
	}

	coverage := make([]*domain.CoverageRequirement, 0, len(in.Coverage))
	coverageByKey := make(map[coverageKey]*domain.CoverageRequirement, len(in.Coverage))
	for _, c := range in.Coverage {
		cov, err := domain.NewCoverageRequirement(c.ShiftTypeID, domain.DayType(c.DayType), c.MinInfirmier, c.MinASSC, c.MinAideSoignant)
		if err != nil {
			return nil, inputErrorf("coverage", "%v", err)
		}
		if _, ok := shiftByID[cov.ShiftTypeID]; !ok {
			return nil, inputErrorf("coverage", "shift_type_id %q not found among shift_types", cov.ShiftTypeID)
		}
		key := coverageKey{shiftTypeID: cov.ShiftTypeID, dayType: cov.DayType}
		if _, dup := coverageByKey[key]; dup {
			return nil, inputErrorf("coverage", "duplicate coverage record for shift %q day_type %q", cov.ShiftTypeID, cov.DayType)
		}
		coverage = append(coverage, cov)
		coverageByKey[key] = cov
	}

	absences := make([]*domain.Absence, 0, len(in.Absences))
	for _, a := range in.Absences {
		abs, err := domain.NewAbsence(a.EmployeeID, a.DateStart, a.DateEnd, a.Kind)
		if err != nil {
			return nil, inputErrorf("absences", "%v", err)
		}
		if _, ok := employeeByID[abs.EmployeeID]; !ok {
			return nil, inputErrorf("absences", "employee_id %q not found among employees", abs.EmployeeID)
		}
		absences = append(absences, abs)
	}

	days, err := domain.BuildHorizon(in.PeriodStart, in.PeriodEnd)
	if err != nil {
		return nil, inputErrorf("period", "%v", err)
	}

	locks := make([]*domain.LockedAssignment, 0, len(in.LockedAssignments))
	lockedKeys := make(map[domain.LockKey]bool, len(in.LockedAssignments))
	for _, l := range in.LockedAssignments {
		lock, err := domain.NewLockedAssignment(l.EmployeeID, l.ShiftTypeID, l.Date)
		if err != nil {
			return nil, inputErrorf("locked_assignments", "%v", err)
		}
		if _, ok := employeeByID[lock.EmployeeID]; !ok {
			return nil, inputErrorf("locked_assignments", "employee_id %q not found among employees", lock.EmployeeID)
		}
		if _, ok := shiftByID[lock.ShiftTypeID]; !ok {
			return nil, inputErrorf("locked_assignments", "shift_type_id %q not found among shift_types", lock.ShiftTypeID)
		}
		locks = append(locks, lock)
		lockedKeys[lock.Key()] = true
	}

	return &normalized{
		employees:     employees,
		shiftTypes:    shiftTypes,
		coverage:      coverage,
		absences:      absences,
		locks:         locks,
		days:          days,
		employeeByID:  employeeByID,
		shiftByID:     shiftByID,
		coverageByKey: coverageByKey,
		lockedKeys:    lockedKeys,
	}, nil
}

// coverageFor returns the coverage requirement for a (shift, day-type)
// pair, or nil if there is no minimum for that pair.
func (n *normalized) coverageFor(shiftTypeID string, dt domain.DayType) *domain.CoverageRequirement {
	return n.coverageByKey[coverageKey{shiftTypeID: shiftTypeID, dayType: dt}]
}
