package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carerota/roster/internal/domain"
)

func shiftFixture(t *testing.T, id, start, end string, hours float64) *domain.ShiftType {
	t.Helper()
	s, err := domain.NewShiftType(id, id, start, end, hours)
	require.NoError(t, err)
	return s
}

func TestRestGapHours_NightShiftWrapsToNextMorning(t *testing.T) {
	veille := shiftFixture(t, "veille", "22:00", "06:00", 8)
	matin := shiftFixture(t, "matin", "06:30", "14:30", 8)
	gap := restGapHours(veille, matin)
	assert.InDelta(t, 0.5, gap, 0.001)
}

func TestRestGapHours_DayShiftToDayShift(t *testing.T) {
	matin := shiftFixture(t, "matin", "06:30", "14:30", 8)
	soir := shiftFixture(t, "soir", "14:30", "22:00", 7.5)
	gap := restGapHours(matin, soir)
	assert.InDelta(t, (24-14.5)+14.5, gap, 0.001)
}

func TestRestGapHours_BelowMinimumIsDetected(t *testing.T) {
	soir := shiftFixture(t, "soir", "14:30", "22:00", 7.5)
	matin := shiftFixture(t, "matin", "06:30", "14:30", 8)
	gap := restGapHours(soir, matin)
	assert.Less(t, gap, 11.0)
}

func TestWeekendPairs_FindsConsecutiveSaturdaySunday(t *testing.T) {
	days, err := domain.BuildHorizon("2026-03-02", "2026-03-15")
	require.NoError(t, err)
	pairs := weekendPairs(days)
	require.Len(t, pairs, 2)
	assert.Equal(t, domain.Samedi, days[pairs[0][0]].Weekday)
	assert.Equal(t, domain.Dimanche, days[pairs[0][1]].Weekday)
}

func TestDayIndexOf_FindsExactDate(t *testing.T) {
	days, err := domain.BuildHorizon("2026-03-02", "2026-03-08")
	require.NoError(t, err)
	assert.Equal(t, 0, dayIndexOf(days, days[0].Date))
	assert.Equal(t, 6, dayIndexOf(days, days[6].Date))
}

func TestDayIndexOf_ReturnsNegativeOneWhenOutOfRange(t *testing.T) {
	days, err := domain.BuildHorizon("2026-03-02", "2026-03-08")
	require.NoError(t, err)
	future, err := domain.BuildHorizon("2030-01-01", "2030-01-01")
	require.NoError(t, err)
	assert.Equal(t, -1, dayIndexOf(days, future[0].Date))
}
