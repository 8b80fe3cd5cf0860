package service

import (
	"context"
	"time"

	"github.com/carerota/roster/internal/solver"
)

// RosterService is the thin orchestration layer around the solver core:
// it times the call and reports a UseCaseEvent, but does not touch the
// model itself.
type RosterService struct {
	Observer UseCaseObserver
}

// NewRosterService constructs a RosterService. A nil observer is
// replaced with NoopUseCaseObserver.
func NewRosterService(observer UseCaseObserver) *RosterService {
	if observer == nil {
		observer = NoopUseCaseObserver{}
	}
	return &RosterService{Observer: observer}
}

// SolveRoster runs one solve, observing its outcome. It returns the
// same (result, error) contract as solver.Solve: a nil result with a
// nil error means no feasible schedule was found within budget.
func (s *RosterService) SolveRoster(ctx context.Context, in solver.Input) (*solver.Result, error) {
	start := time.Now()
	result, err := solver.Solve(in)
	duration := time.Since(start)

	attrs := map[string]any{
		"num_employees": len(in.Employees),
		"num_shifts":    len(in.ShiftTypes),
	}
	if result != nil {
		attrs["status"] = string(result.Stats.Status)
		attrs["num_assignments"] = result.Stats.NumAssignments
	} else if err == nil {
		attrs["status"] = "no_solution"
	}
	s.Observer.ObserveUseCase(ctx, UseCaseEvent{
		UseCase:  "solve_roster",
		RunID:    newRunID(),
		Duration: duration,
		Err:      err,
		Attrs:    attrs,
	})

	return result, err
}
