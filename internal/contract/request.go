// Package contract defines the request/result DTOs at the service
// boundary. These alias the solver package's wire-compatible types
// directly rather than re-declaring them, since spec section 6 already
// specifies the JSON shape the core consumes and returns.
package contract

import "github.com/carerota/roster/internal/solver"

// SolveRequest is the JSON body accepted by the roster-solve use case.
type SolveRequest = solver.Input

// SolveResult is the JSON body returned by the roster-solve use case.
type SolveResult = solver.Result

// DefaultTimeLimitSeconds is used when a request omits time_limit_seconds.
const DefaultTimeLimitSeconds = 30

// NewSolveRequest builds a SolveRequest for the given horizon, applying
// DefaultTimeLimitSeconds when timeLimitSeconds is zero or negative.
func NewSolveRequest(periodStart, periodEnd string, timeLimitSeconds int) SolveRequest {
	if timeLimitSeconds <= 0 {
		timeLimitSeconds = DefaultTimeLimitSeconds
	}
	return SolveRequest{
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		TimeLimitSeconds: timeLimitSeconds,
	}
}
