package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carerota/roster/internal/domain"
)

func TestShiftType_IsNight(t *testing.T) {
	cases := []struct {
		name      string
		start     string
		end       string
		wantNight bool
	}{
		{"Veille", "22:00", "06:00", true},
		{"Matin", "06:30", "14:30", false},
		{"Soir+", "20:00", "23:59", true},
	}
	for _, c := range cases {
		s, err := domain.NewShiftType(c.name, c.name, c.start, c.end, 8)
		require.NoError(t, err)
		assert.Equal(t, c.wantNight, s.IsNight(), c.name)
	}
}

func TestShiftType_DeciHours(t *testing.T) {
	s, err := domain.NewShiftType("matin", "Matin", "06:30", "14:30", 8)
	require.NoError(t, err)
	assert.Equal(t, 80, s.DeciHours())
}

func TestNewShiftType_RejectsMalformedTime(t *testing.T) {
	_, err := domain.NewShiftType("bad", "Bad", "25:00", "06:00", 8)
	require.Error(t, err)
}
