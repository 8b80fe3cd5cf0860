package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func modelFixture(t *testing.T, periodStart, periodEnd string) *model {
	t.Helper()
	in := Input{
		Employees: []EmployeeInput{
			{ID: "e1", Role: "infirmier", ActivityRate: 100, WorkingDays: []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi"}, PreferredShifts: []string{"matin"}},
			{ID: "e2", Role: "assc", ActivityRate: 100, WorkingDays: []string{"lundi", "mardi", "mercredi", "jeudi", "samedi"}},
			{ID: "e3", Role: "aide-soignant", ActivityRate: 40, WorkingDays: []string{"samedi", "dimanche"}},
		},
		ShiftTypes: []ShiftTypeInput{
			{ID: "matin", Name: "Matin", StartTime: "06:30", EndTime: "14:30", DurationHours: 8},
			{ID: "veille", Name: "Veille", StartTime: "22:00", EndTime: "06:00", DurationHours: 8},
		},
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
	}
	n, err := normalize(in)
	require.NoError(t, err)
	return buildModel(n)
}

func TestShiftRegularityTerms_SkippedWhenZeroWeight(t *testing.T) {
	m := modelFixture(t, "2026-03-02", "2026-03-15")
	assert.Nil(t, shiftRegularityTerms(m, 0))
}

func TestShiftRegularityTerms_OnePairPerEligibleDay(t *testing.T) {
	m := modelFixture(t, "2026-03-02", "2026-03-15")
	terms := shiftRegularityTerms(m, 10)
	// 14-day horizon: days 0..6 each pair with d+7, 3 employees, 2 shifts.
	assert.Len(t, terms, 7*3*2)
	for _, term := range terms {
		assert.EqualValues(t, 10, term.weight)
	}
}

func TestPreferenceTerms_OnlyForEmployeesWithPreferences(t *testing.T) {
	m := modelFixture(t, "2026-03-02", "2026-03-08")
	terms := preferenceTerms(m, 5)
	// Only e1 prefers "matin", across all 7 days.
	assert.Len(t, terms, 7)
	for _, term := range terms {
		assert.EqualValues(t, 5, term.weight)
	}
}

func TestPreferenceTerms_SkippedWhenZeroWeight(t *testing.T) {
	m := modelFixture(t, "2026-03-02", "2026-03-08")
	assert.Nil(t, preferenceTerms(m, 0))
}

func TestNightWeekendEquityTerms_SkippedWithFewerThanTwoEligible(t *testing.T) {
	in := Input{
		Employees: []EmployeeInput{
			{ID: "e1", Role: "infirmier", ActivityRate: 100, WorkingDays: []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi"}},
		},
		ShiftTypes: []ShiftTypeInput{
			{ID: "matin", Name: "Matin", StartTime: "06:30", EndTime: "14:30", DurationHours: 8},
		},
		PeriodStart: "2026-03-02",
		PeriodEnd:   "2026-03-08",
	}
	n, err := normalize(in)
	require.NoError(t, err)
	m := buildModel(n)
	assert.Nil(t, nightWeekendEquityTerms(m, -8))
}

func TestNightWeekendEquityTerms_PostsOneSpreadTermWhenEligible(t *testing.T) {
	m := modelFixture(t, "2026-03-02", "2026-03-15")
	terms := nightWeekendEquityTerms(m, -8)
	require.Len(t, terms, 1)
	assert.EqualValues(t, -8, terms[0].weight)
}
