package domain

// ConstraintRule is the wire-format externalized-tuning record: a named
// rule with a free-form parameter map and an active flag. The solver
// package folds a list of these onto SolverConfig defaults at the
// boundary; the free-form map never reaches the constraint or objective
// builders themselves.
type ConstraintRule struct {
	Name      string         `json:"name"`
	Parameter map[string]any `json:"parameter"`
	IsActive  bool           `json:"is_active"`
}

// Recognized rule names and their parameter keys (spec section 6).
const (
	RuleMinRestHours       = "min_rest_hours"
	RuleWeekendRest        = "weekend_rest"
	RuleShiftRegularity    = "shift_regularity"
	RuleRespectPreferences = "respect_preferences"
	RuleNightWeekendEquity = "night_weekend_equity"
)

const (
	ParamHours                    = "hours"
	ParamMinFreeWeekendsPer2Weeks = "min_free_weekends_per_2weeks"
	ParamWeight                   = "weight"
)
