// Package loader converts a scenario file on disk into the solver
// package's wire-compatible Input, the one ingestion path the cli
// package needs (the solve use case itself takes plain records, per
// spec section 1's "out of scope" list for persistence and transport).
package loader

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/carerota/roster/internal/solver"
)

// LoadScenario reads a JSON scenario file and decodes it into a
// solver.Input. It performs no semantic validation; normalize() inside
// solver.Solve is the single source of truth for that.
func LoadScenario(path string) (solver.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return solver.Input{}, fmt.Errorf("loader: reading scenario file %s: %w", path, err)
	}
	var in solver.Input
	if err := json.Unmarshal(data, &in); err != nil {
		return solver.Input{}, fmt.Errorf("loader: parsing scenario file %s: %w", path, err)
	}
	return in, nil
}

// WriteResult writes a solve result to disk as indented JSON.
func WriteResult(path string, result *solver.Result) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("loader: encoding result: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("loader: writing result file %s: %w", path, err)
	}
	return nil
}
