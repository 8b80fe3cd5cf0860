package solver

import (
	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/carerota/roster/internal/domain"
)

// objectiveTerm is one signed linear term contributing to the maximized
// objective.
type objectiveTerm struct {
	expr   cpmodel.LinearArgument
	weight int64
}

// buildObjectiveTerms collects the terms from all three soft objectives
// (spec section 4.4) and posts their weighted sum as the model's
// maximization objective. No objective is posted if every term list is
// empty.
func buildObjectiveTerms(m *model, cfg SolverConfig) {
	var terms []objectiveTerm
	terms = append(terms, shiftRegularityTerms(m, cfg.Weights.Regularity)...)
	terms = append(terms, preferenceTerms(m, cfg.Weights.Preferences)...)
	terms = append(terms, nightWeekendEquityTerms(m, cfg.Weights.Equity)...)
	if len(terms) == 0 {
		return
	}
	obj := cpmodel.NewLinearExpr()
	for _, t := range terms {
		obj.AddTerm(t.expr, t.weight)
	}
	m.b.Maximize(obj)
}

// shiftRegularityTerms rewards an employee working the identical shift
// on the same weekday the following week: reg[e,d,s] reified to
// x[e,d,s] AND x[e,d+7,s].
func shiftRegularityTerms(m *model, weight int) []objectiveTerm {
	if weight == 0 {
		return nil
	}
	numDays := len(m.n.days)
	var terms []objectiveTerm
	for _, e := range m.n.employees {
		for d := 0; d+7 < numDays; d++ {
			for _, s := range m.n.shiftTypes {
				a := m.at(e.ID, d, s.ID)
				b := m.at(e.ID, d+7, s.ID)
				both := m.b.NewBoolVar()
				m.b.AddBoolAnd(a, b).OnlyEnforceIf(both)
				m.b.AddBoolOr(a.Not(), b.Not()).OnlyEnforceIf(both.Not())
				terms = append(terms, objectiveTerm{expr: both, weight: int64(weight)})
			}
		}
	}
	return terms
}

// preferenceTerms rewards assigning an employee to one of their
// preferred shift types. Contributes nothing if no employee lists any
// preference.
func preferenceTerms(m *model, weight int) []objectiveTerm {
	if weight == 0 {
		return nil
	}
	var terms []objectiveTerm
	for _, e := range m.n.employees {
		if len(e.PreferredShifts) == 0 {
			continue
		}
		for d := range m.n.days {
			for _, s := range m.n.shiftTypes {
				if !e.PrefersShift(s.ID) {
					continue
				}
				terms = append(terms, objectiveTerm{expr: m.at(e.ID, d, s.ID), weight: int64(weight)})
			}
		}
	}
	return terms
}

// nightWeekendEquityTerms penalizes the spread between the most- and
// least-loaded eligible employee's count of weekend-day and night-shift
// assignments. Skipped if fewer than two employees are eligible.
func nightWeekendEquityTerms(m *model, weight int) []objectiveTerm {
	if weight == 0 {
		return nil
	}
	var eligible []*domain.Employee
	for _, e := range m.n.employees {
		if e.WorksOn(domain.Samedi) || e.WorksOn(domain.Dimanche) {
			eligible = append(eligible, e)
		}
	}
	if len(eligible) < 2 {
		return nil
	}

	loads := make([]cpmodel.LinearArgument, len(eligible))
	for i, e := range eligible {
		var terms []cpmodel.LinearArgument
		for d, day := range m.n.days {
			isWeekendDay := day.Weekday == domain.Samedi || day.Weekday == domain.Dimanche
			for _, s := range m.n.shiftTypes {
				if isWeekendDay || s.IsNight() {
					terms = append(terms, m.at(e.ID, d, s.ID))
				}
			}
		}
		loads[i] = sumExpr(terms)
	}

	upperBound := int64(len(m.n.days) * len(m.n.shiftTypes))
	max := m.b.NewIntVar(0, upperBound)
	min := m.b.NewIntVar(0, upperBound)
	m.b.AddMaxEquality(max, loads...)
	m.b.AddMinEquality(min, loads...)
	spread := m.b.NewIntVar(0, upperBound)
	m.b.AddEquality(spread, cpmodel.NewLinearExpr().Add(max).AddTerm(min, -1))

	return []objectiveTerm{{expr: spread, weight: int64(weight)}}
}
