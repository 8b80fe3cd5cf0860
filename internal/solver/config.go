package solver

import (
	"time"

	"github.com/carerota/roster/internal/domain"
)

// SolverConfig is the typed, boundary-normalized form of the dynamic
// ConstraintRule list (spec section 9, "dynamic parameter maps"). Once
// parsed, the free-form maps never reach the constraint or objective
// builders.
type SolverConfig struct {
	MinRestHours             int
	MinFreeWeekendsPer2Weeks int
	Weights                  ObjectiveWeights
	TimeLimit                time.Duration
	NumWorkers               int
}

// ObjectiveWeights holds the signed weight for each soft objective term.
// Negative weights express penalties.
type ObjectiveWeights struct {
	Regularity  int
	Preferences int
	Equity      int
}

// DefaultSolverConfig returns the spec's published defaults: 11-hour
// minimum rest, 1 free weekend per 2-week window, weights +10/+5/-8, a
// 30-second time limit and 4 solver workers.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MinRestHours:             11,
		MinFreeWeekendsPer2Weeks: 1,
		Weights: ObjectiveWeights{
			Regularity:  10,
			Preferences: 5,
			Equity:      -8,
		},
		TimeLimit:  30 * time.Second,
		NumWorkers: 4,
	}
}

// ParseConstraintRules folds an externalized ConstraintRule list onto
// DefaultSolverConfig's defaults. Inactive rules and unrecognized names
// are ignored; unrecognized parameter keys within a recognized rule are
// also ignored, matching the source's permissive rule_params.get(...)
// lookup. This is the single place free-form maps are accepted, because
// the external interface (spec section 6) defines them as the wire
// format.
func ParseConstraintRules(rules []domain.ConstraintRule) (SolverConfig, error) {
	cfg := DefaultSolverConfig()
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		switch r.Name {
		case domain.RuleMinRestHours:
			v, err := intParam(r, domain.ParamHours)
			if err != nil {
				return SolverConfig{}, err
			}
			if v != nil {
				cfg.MinRestHours = *v
			}
		case domain.RuleWeekendRest:
			v, err := intParam(r, domain.ParamMinFreeWeekendsPer2Weeks)
			if err != nil {
				return SolverConfig{}, err
			}
			if v != nil {
				cfg.MinFreeWeekendsPer2Weeks = *v
			}
		case domain.RuleShiftRegularity:
			v, err := intParam(r, domain.ParamWeight)
			if err != nil {
				return SolverConfig{}, err
			}
			if v != nil {
				cfg.Weights.Regularity = *v
			}
		case domain.RuleRespectPreferences:
			v, err := intParam(r, domain.ParamWeight)
			if err != nil {
				return SolverConfig{}, err
			}
			if v != nil {
				cfg.Weights.Preferences = *v
			}
		case domain.RuleNightWeekendEquity:
			v, err := intParam(r, domain.ParamWeight)
			if err != nil {
				return SolverConfig{}, err
			}
			if v != nil {
				cfg.Weights.Equity = -absInt(*v)
			}
		}
	}
	return cfg, nil
}

// intParam extracts an integer parameter, accepting both int and
// float64 (as produced by JSON decoding into map[string]any).
func intParam(r domain.ConstraintRule, key string) (*int, error) {
	raw, ok := r.Parameter[key]
	if !ok {
		return nil, nil
	}
	switch v := raw.(type) {
	case int:
		return &v, nil
	case float64:
		n := int(v)
		return &n, nil
	default:
		return nil, inputErrorf("constraint_rules."+r.Name+"."+key, "expected a number, got %T", raw)
	}
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
