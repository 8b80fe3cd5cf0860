package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ShiftType is a named daily duty with a clock start/end and a duration.
type ShiftType struct {
	ID             string
	Name           string
	StartTime      string // "HH:MM"
	EndTime        string // "HH:MM"
	DurationHours  float64

	startHour float64
	endHour   float64
}

// NewShiftType parses start_time/end_time and constructs a ShiftType.
// Times must be "HH:MM" with 0<=HH<=23 and 0<=MM<=59; malformed times
// are reported per spec section 7.1.
func NewShiftType(id, name, startTime, endTime string, durationHours float64) (*ShiftType, error) {
	if id == "" {
		return nil, fmt.Errorf("shift type: %w: empty id", ErrInvalidInput)
	}
	start, err := parseClock(startTime)
	if err != nil {
		return nil, fmt.Errorf("shift type %s: %w: start_time %q: %v", id, ErrInvalidInput, startTime, err)
	}
	end, err := parseClock(endTime)
	if err != nil {
		return nil, fmt.Errorf("shift type %s: %w: end_time %q: %v", id, ErrInvalidInput, endTime, err)
	}
	return &ShiftType{
		ID:            id,
		Name:          name,
		StartTime:     startTime,
		EndTime:       endTime,
		DurationHours: durationHours,
		startHour:     start,
		endHour:       end,
	}, nil
}

// parseClock parses "HH:MM" into fractional hours.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("expected HH:MM")
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil || hh < 0 || hh > 23 {
		return 0, fmt.Errorf("invalid hour")
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid minute")
	}
	return float64(hh) + float64(mm)/60.0, nil
}

// StartHour returns the shift's start time in fractional hours.
func (s *ShiftType) StartHour() float64 { return s.startHour }

// EndHour returns the shift's end time in fractional hours.
func (s *ShiftType) EndHour() float64 { return s.endHour }

// IsNight reports whether the shift starts at or after 20:00 or crosses
// midnight (end strictly before start).
func (s *ShiftType) IsNight() bool {
	return s.startHour >= 20 || s.endHour < s.startHour
}

// DeciHours returns duration_hours scaled by 10 and rounded to the
// nearest integer, for use in integer-linear weekly-hours constraints.
func (s *ShiftType) DeciHours() int {
	return int(s.DurationHours*10 + 0.5)
}
