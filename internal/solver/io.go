package solver

import "github.com/carerota/roster/internal/domain"

// Input is the JSON-compatible wire shape consumed by Solve, matching
// spec section 6 exactly. Every nested record here is raw and
// unvalidated; normalize() turns it into typed domain entities.
type Input struct {
	Employees         []EmployeeInput         `json:"employees"`
	ShiftTypes        []ShiftTypeInput        `json:"shift_types"`
	Coverage          []CoverageInput         `json:"coverage"`
	Absences          []AbsenceInput          `json:"absences"`
	ConstraintRules   []domain.ConstraintRule `json:"constraint_rules"`
	PeriodStart       string                  `json:"period_start"`
	PeriodEnd         string                  `json:"period_end"`
	LockedAssignments []LockedAssignmentInput `json:"locked_assignments"`
	TimeLimitSeconds  int                     `json:"time_limit_seconds"`
}

// EmployeeInput is the wire shape of one Employee record.
type EmployeeInput struct {
	ID              string   `json:"id"`
	Role            string   `json:"role"`
	ActivityRate    int      `json:"activity_rate"`
	WorkingDays     []string `json:"working_days"`
	PreferredShifts []string `json:"preferred_shifts,omitempty"`
}

// ShiftTypeInput is the wire shape of one ShiftType record.
type ShiftTypeInput struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	DurationHours float64 `json:"duration_hours"`
}

// CoverageInput is the wire shape of one CoverageRequirement record.
type CoverageInput struct {
	ShiftTypeID     string `json:"shift_type_id"`
	DayType         string `json:"day_type"`
	MinInfirmier    int    `json:"min_infirmier"`
	MinASSC         int    `json:"min_assc"`
	MinAideSoignant int    `json:"min_aide_soignant"`
}

// AbsenceInput is the wire shape of one Absence record.
type AbsenceInput struct {
	EmployeeID string `json:"employee_id"`
	DateStart  string `json:"date_start"`
	DateEnd    string `json:"date_end"`
	Kind       string `json:"kind"`
}

// LockedAssignmentInput is the wire shape of one LockedAssignment record.
type LockedAssignmentInput struct {
	EmployeeID  string `json:"employee_id"`
	ShiftTypeID string `json:"shift_type_id"`
	Date        string `json:"date"`
}

// Assignment is one (employee, shift, date) triple in a solved roster.
type Assignment struct {
	EmployeeID  string `json:"employee_id"`
	ShiftTypeID string `json:"shift_type_id"`
	Date        string `json:"date"`
	IsLocked    bool   `json:"is_locked"`
}

// Status is the coarse solver outcome reported in Stats. Solve never
// returns a Result for any other CP-SAT status; see spec section 7.2.
type Status string

const (
	StatusOptimal  Status = "optimal"
	StatusFeasible Status = "feasible"
)

// Stats summarizes one solve.
type Stats struct {
	SolveTimeMS     int64   `json:"solve_time_ms"`
	Status          Status  `json:"status"`
	ObjectiveValue  float64 `json:"objective_value"`
	NumEmployees    int     `json:"num_employees"`
	NumDays         int     `json:"num_days"`
	NumAssignments  int     `json:"num_assignments"`
}

// Result is Solve's success return value. A nil *Result with a nil
// error means "no feasible schedule within budget" (spec section 6).
type Result struct {
	Assignments []Assignment `json:"assignments"`
	Stats       Stats        `json:"stats"`
}
