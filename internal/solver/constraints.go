package solver

import (
	"time"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"

	"github.com/carerota/roster/internal/domain"
)

// postHardConstraints posts the eight hard constraints from spec section
// 4.3, in the specified order. Order does not affect correctness, only
// presolve predictability.
func postHardConstraints(m *model, cfg SolverConfig) {
	postOneShiftPerDay(m)
	postCoverageMinima(m)
	postRestBetweenDays(m, cfg.MinRestHours)
	postWeeklyHoursCap(m)
	postAvailability(m)
	postAbsences(m)
	postFreeWeekendQuota(m, cfg.MinFreeWeekendsPer2Weeks)
	postLockedAssignments(m)
}

// 1. At most one shift per day per employee.
func postOneShiftPerDay(m *model) {
	for _, e := range m.n.employees {
		for d := range m.n.days {
			m.b.AddAtMostOne(m.shiftsForEmployeeDay(e.ID, d)...)
		}
	}
}

// 2. Coverage minima: total and per-role sub-sums.
func postCoverageMinima(m *model) {
	for d, day := range m.n.days {
		for _, s := range m.n.shiftTypes {
			c := m.n.coverageFor(s.ID, day.Type)
			if c == nil {
				continue
			}
			var all []cpmodel.LinearArgument
			byRole := map[domain.Role][]cpmodel.LinearArgument{}
			for _, e := range m.n.employees {
				v := m.at(e.ID, d, s.ID)
				all = append(all, v)
				byRole[e.Role] = append(byRole[e.Role], v)
			}
			if total := c.Total(); total > 0 {
				m.b.AddGreaterOrEqual(sumExpr(all), m.b.NewConstant(int64(total)))
			}
			for _, r := range []domain.Role{domain.RoleInfirmier, domain.RoleASSC, domain.RoleAideSoignant} {
				min := c.MinForRole(r)
				if min <= 0 {
					continue
				}
				m.b.AddGreaterOrEqual(sumExpr(byRole[r]), m.b.NewConstant(int64(min)))
			}
		}
	}
}

// 3. Rest between consecutive days, respecting the night/day gap rule.
// Per spec section 9, the forbidden-pair table is precomputed once per
// shift-type pair rather than recomputed inside the (e,d) loop.
func postRestBetweenDays(m *model, minRestHours int) {
	type pair struct{ s1, s2 *domain.ShiftType }
	var forbidden []pair
	for _, s1 := range m.n.shiftTypes {
		for _, s2 := range m.n.shiftTypes {
			gap := restGapHours(s1, s2)
			if gap < float64(minRestHours) {
				forbidden = append(forbidden, pair{s1, s2})
			}
		}
	}
	if len(forbidden) == 0 {
		return
	}
	lastDay := len(m.n.days) - 1
	for _, e := range m.n.employees {
		for d := 0; d < lastDay; d++ {
			for _, p := range forbidden {
				v1 := m.at(e.ID, d, p.s1.ID)
				v2 := m.at(e.ID, d+1, p.s2.ID)
				m.b.AddBoolOr(v1.Not(), v2.Not())
			}
		}
	}
}

// restGapHours computes the rest gap, in hours, between a shift s1 worked
// on day d and a shift s2 worked on day d+1 (spec section 4.3.3).
func restGapHours(s1, s2 *domain.ShiftType) float64 {
	if s1.IsNight() {
		gap := s2.StartHour() - s1.EndHour()
		for gap < 0 {
			gap += 24
		}
		return gap
	}
	return (24 - s1.EndHour()) + s2.StartHour()
}

// 4. Weekly hours cap over ISO-aligned 7-day windows (last truncated).
// Hours are represented in integer deci-hours to keep the constraint
// integer-linear.
func postWeeklyHoursCap(m *model) {
	numDays := len(m.n.days)
	for start := 0; start < numDays; start += 7 {
		end := start + 7
		if end > numDays {
			end = numDays
		}
		for _, e := range m.n.employees {
			var terms []cpmodel.LinearArgument
			var coeffs []int64
			for d := start; d < end; d++ {
				for _, s := range m.n.shiftTypes {
					terms = append(terms, m.at(e.ID, d, s.ID))
					coeffs = append(coeffs, int64(s.DeciHours()))
				}
			}
			expr := cpmodel.NewLinearExpr().AddWeightedSum(terms, coeffs)
			maxDeciHours := int64(e.MaxWeeklyHours()*10 + 0.5)
			m.b.AddLessOrEqual(expr, m.b.NewConstant(maxDeciHours))
		}
	}
}

// 5. Availability by working days: the sole mechanism preventing
// unavailable employees from being scheduled on a given weekday.
func postAvailability(m *model) {
	for _, e := range m.n.employees {
		for d, day := range m.n.days {
			if e.WorksOn(day.Weekday) {
				continue
			}
			forceAllOff(m, e.ID, d)
		}
	}
}

// 6. Absences: every day and shift within an absence window is forced
// off for that employee.
func postAbsences(m *model) {
	for _, a := range m.n.absences {
		for d, day := range m.n.days {
			if !a.Covers(day.Date) {
				continue
			}
			forceAllOff(m, a.EmployeeID, d)
		}
	}
}

func forceAllOff(m *model, employeeID string, dayIndex int) {
	vars := m.shiftsForEmployeeDay(employeeID, dayIndex)
	negated := make([]cpmodel.BoolVar, len(vars))
	for i, v := range vars {
		negated[i] = v.Not()
	}
	m.b.AddBoolAnd(negated...)
}

// 7. Two-week free-weekend quota. Weekend (Sat,Sun) pairs are grouped
// two at a time; within each window, free_w[k] is reified to "employee e
// has no assignment on either day of weekend k". Leftover single
// weekends at the tail are ignored.
func postFreeWeekendQuota(m *model, minFreePerWindow int) {
	weekends := weekendPairs(m.n.days)
	for start := 0; start+1 < len(weekends); start += 2 {
		window := weekends[start : start+2]
		for _, e := range m.n.employees {
			var freeVars []cpmodel.BoolVar
			for _, w := range window {
				var dayVars []cpmodel.BoolVar
				for _, dayIdx := range w {
					dayVars = append(dayVars, m.shiftsForEmployeeDay(e.ID, dayIdx)...)
				}
				free := m.b.NewBoolVar()
				negated := make([]cpmodel.BoolVar, len(dayVars))
				for i, v := range dayVars {
					negated[i] = v.Not()
				}
				m.b.AddBoolAnd(negated...).OnlyEnforceIf(free)
				m.b.AddBoolOr(dayVars...).OnlyEnforceIf(free.Not())
				freeVars = append(freeVars, free)
			}
			sum := cpmodel.NewLinearExpr()
			for _, f := range freeVars {
				sum.Add(f)
			}
			m.b.AddGreaterOrEqual(sum, m.b.NewConstant(int64(minFreePerWindow)))
		}
	}
}

// weekendPairs returns, for each Saturday immediately followed by a
// Sunday in the horizon, the pair of day indices [saturday, sunday].
func weekendPairs(days []domain.Day) [][2]int {
	var out [][2]int
	for i := 0; i+1 < len(days); i++ {
		if days[i].Weekday == domain.Samedi && days[i+1].Weekday == domain.Dimanche {
			out = append(out, [2]int{i, i + 1})
		}
	}
	return out
}

// 8. Locked assignments force x[e,d,s]=1. A lock that conflicts with an
// earlier hard constraint legitimately makes the model infeasible.
func postLockedAssignments(m *model) {
	for _, l := range m.n.locks {
		d := dayIndexOf(m.n.days, l.Date)
		if d < 0 {
			continue
		}
		v := m.at(l.EmployeeID, d, l.ShiftTypeID)
		m.b.AddBoolAnd(v)
	}
}

func dayIndexOf(days []domain.Day, target time.Time) int {
	for i, d := range days {
		if d.Date.Equal(target) {
			return i
		}
	}
	return -1
}

func sumExpr(terms []cpmodel.LinearArgument) *cpmodel.LinearExpr {
	e := cpmodel.NewLinearExpr()
	for _, t := range terms {
		e.Add(t)
	}
	return e
}
