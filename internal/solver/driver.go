package solver

import (
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/google/or-tools/ortools/sat/go/cpmodel"
	cmpb "github.com/google/or-tools/ortools/sat/proto/cpmodel"
	sppb "github.com/google/or-tools/ortools/sat/proto/satparameters"
)

// solveOutcome is the driver's internal result: either a CP-SAT response
// worth extracting, or "no solution" (spec section 4.5/7.2).
type solveOutcome struct {
	response  *cmpb.CpSolverResponse
	status    Status
	wallTime  time.Duration
	hasResult bool
}

// runSolver hands the composed model to the CP-SAT backend with the
// configured wall-clock limit and worker count, and classifies the
// response status. It blocks until the backend returns; this is the
// single suspension point in the whole pipeline (spec section 5).
func runSolver(m *model, cfg SolverConfig) (solveOutcome, error) {
	proto_, err := m.b.Model()
	if err != nil {
		return solveOutcome{}, err
	}

	params := &sppb.SatParameters{
		MaxTimeInSeconds: proto.Float64(cfg.TimeLimit.Seconds()),
		NumSearchWorkers: proto.Int32(int32(cfg.NumWorkers)),
	}

	start := time.Now()
	response, err := cpmodel.SolveCpModelWithParameters(proto_, params)
	elapsed := time.Since(start)
	if err != nil {
		return solveOutcome{}, err
	}

	switch response.GetStatus() {
	case cmpb.CpSolverStatus_OPTIMAL:
		return solveOutcome{response: response, status: StatusOptimal, wallTime: elapsed, hasResult: true}, nil
	case cmpb.CpSolverStatus_FEASIBLE:
		return solveOutcome{response: response, status: StatusFeasible, wallTime: elapsed, hasResult: true}, nil
	default:
		return solveOutcome{wallTime: elapsed, hasResult: false}, nil
	}
}
