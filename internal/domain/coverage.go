package domain

import "fmt"

// CoverageRequirement is the minimum caregiver count per role required
// on a given (shift type, day type) pair.
type CoverageRequirement struct {
	ShiftTypeID     string
	DayType         DayType
	MinInfirmier    int
	MinASSC         int
	MinAideSoignant int
}

// NewCoverageRequirement validates and constructs a CoverageRequirement.
func NewCoverageRequirement(shiftTypeID string, dayType DayType, minInfirmier, minASSC, minAideSoignant int) (*CoverageRequirement, error) {
	if shiftTypeID == "" {
		return nil, fmt.Errorf("coverage requirement: %w: empty shift_type_id", ErrInvalidInput)
	}
	switch dayType {
	case DayWeekday, DaySaturday, DaySunday:
	default:
		return nil, fmt.Errorf("coverage requirement %s: %w: unknown day_type %q", shiftTypeID, ErrInvalidInput, dayType)
	}
	if minInfirmier < 0 || minASSC < 0 || minAideSoignant < 0 {
		return nil, fmt.Errorf("coverage requirement %s/%s: %w: negative minimum", shiftTypeID, dayType, ErrInvalidInput)
	}
	return &CoverageRequirement{
		ShiftTypeID:     shiftTypeID,
		DayType:         dayType,
		MinInfirmier:    minInfirmier,
		MinASSC:         minASSC,
		MinAideSoignant: minAideSoignant,
	}, nil
}

// Total returns the sum of all per-role minimums.
func (c *CoverageRequirement) Total() int {
	return c.MinInfirmier + c.MinASSC + c.MinAideSoignant
}

// MinForRole returns the minimum headcount for the given role, or 0 if
// the role is unrecognized.
func (c *CoverageRequirement) MinForRole(r Role) int {
	switch r {
	case RoleInfirmier:
		return c.MinInfirmier
	case RoleASSC:
		return c.MinASSC
	case RoleAideSoignant:
		return c.MinAideSoignant
	default:
		return 0
	}
}
