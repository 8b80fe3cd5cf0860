package solver

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/carerota/roster/internal/domain"
)

// extractResult walks x and collects every triple with value 1 into an
// assignments list, marking is_locked by (employee_id, date) membership
// in the locked-input set (spec section 4.6).
func extractResult(m *model, outcome solveOutcome) *Result {
	var assignments []Assignment
	for _, e := range m.n.employees {
		for d, day := range m.n.days {
			for _, s := range m.n.shiftTypes {
				v := m.at(e.ID, d, s.ID)
				if !cpmodel.SolutionBooleanValue(outcome.response, v) {
					continue
				}
				dateStr := day.DateString()
				locked := m.n.lockedKeys[domain.LockKey{EmployeeID: e.ID, Date: dateStr}]
				assignments = append(assignments, Assignment{
					EmployeeID:  e.ID,
					ShiftTypeID: s.ID,
					Date:        dateStr,
					IsLocked:    locked,
				})
			}
		}
	}

	return &Result{
		Assignments: assignments,
		Stats: Stats{
			SolveTimeMS:    outcome.wallTime.Milliseconds(),
			Status:         outcome.status,
			ObjectiveValue: outcome.response.GetObjectiveValue(),
			NumEmployees:   len(m.n.employees),
			NumDays:        len(m.n.days),
			NumAssignments: len(assignments),
		},
	}
}
