package solver

import (
	"fmt"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
)

// model wraps the CP-SAT builder together with the decision-variable
// lattice x[e,d,s] and the index maps needed to walk it in a stable
// order. Variable names are derived from entity ids and the day index
// so that identical inputs always produce an equivalent model (spec
// section 4.2).
type model struct {
	b *cpmodel.Builder
	n *normalized

	x map[xKey]cpmodel.BoolVar

	empIndex   map[string]int
	shiftIndex map[string]int
}

type xKey struct {
	employeeID  string
	dayIndex    int
	shiftTypeID string
}

// buildModel allocates the x[e,d,s] lattice on a fresh Builder. It does
// not post any constraints; see postHardConstraints and
// buildObjectiveTerms.
func buildModel(n *normalized) *model {
	b := cpmodel.NewCpModelBuilder()
	m := &model{
		b:          b,
		n:          n,
		x:          make(map[xKey]cpmodel.BoolVar, len(n.employees)*len(n.days)*len(n.shiftTypes)),
		empIndex:   make(map[string]int, len(n.employees)),
		shiftIndex: make(map[string]int, len(n.shiftTypes)),
	}
	for i, e := range n.employees {
		m.empIndex[e.ID] = i
	}
	for i, s := range n.shiftTypes {
		m.shiftIndex[s.ID] = i
	}
	for _, e := range n.employees {
		for d := range n.days {
			for _, s := range n.shiftTypes {
				v := b.NewBoolVar().WithName(fmt.Sprintf("x[%s,%d,%s]", e.ID, d, s.ID))
				m.x[xKey{employeeID: e.ID, dayIndex: d, shiftTypeID: s.ID}] = v
			}
		}
	}
	return m
}

// at returns the decision variable for (employee, day index, shift).
func (m *model) at(employeeID string, dayIndex int, shiftTypeID string) cpmodel.BoolVar {
	return m.x[xKey{employeeID: employeeID, dayIndex: dayIndex, shiftTypeID: shiftTypeID}]
}

// shiftsForEmployeeDay returns the x variables for every shift on one
// (employee, day) pair, in shift-list order.
func (m *model) shiftsForEmployeeDay(employeeID string, dayIndex int) []cpmodel.BoolVar {
	vars := make([]cpmodel.BoolVar, len(m.n.shiftTypes))
	for i, s := range m.n.shiftTypes {
		vars[i] = m.at(employeeID, dayIndex, s.ID)
	}
	return vars
}
