package solver

import "time"

// Solve is the core's one external operation (spec section 6). It runs
// input normalization, model building, constraint/objective posting,
// the CP-SAT driver, and result extraction, in that order.
//
// It returns (nil, nil) when the backend reports neither OPTIMAL nor
// FEASIBLE — "no feasible schedule within budget" is a legitimate
// outcome, not an error. It returns a non-nil error for malformed or
// internally inconsistent input, before any solver work starts, and
// when the CP-SAT backend fails to build or run the model.
//
// Solve is a pure function of its arguments: it holds no package-level
// state and is safe to call concurrently with independent inputs (spec
// section 5).
func Solve(in Input) (*Result, error) {
	n, err := normalize(in)
	if err != nil {
		return nil, err
	}

	cfg, err := ParseConstraintRules(in.ConstraintRules)
	if err != nil {
		return nil, err
	}
	if in.TimeLimitSeconds > 0 {
		cfg.TimeLimit = time.Duration(in.TimeLimitSeconds) * time.Second
	}

	m := buildModel(n)
	postHardConstraints(m, cfg)
	buildObjectiveTerms(m, cfg)

	outcome, err := runSolver(m, cfg)
	if err != nil {
		return nil, err
	}
	if !outcome.hasResult {
		return nil, nil
	}

	return extractResult(m, outcome), nil
}
