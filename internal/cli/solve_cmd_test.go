package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carerota/roster/internal/loader"
	"github.com/carerota/roster/internal/service"
	"github.com/carerota/roster/internal/solver"
)

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt(""))
	assert.NoError(t, validatePositiveInt("30"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-5"))
	assert.Error(t, validatePositiveInt("abc"))
}

func TestRunSolve_WritesResultFile(t *testing.T) {
	dir := t.TempDir()
	scenarioPath := filepath.Join(dir, "scenario.json")
	outputPath := filepath.Join(dir, "result.json")

	in := solver.Input{
		Employees: []solver.EmployeeInput{
			{ID: "e1", Role: "infirmier", ActivityRate: 100, WorkingDays: []string{"lundi", "mardi", "mercredi", "jeudi", "vendredi"}},
		},
		ShiftTypes: []solver.ShiftTypeInput{
			{ID: "matin", Name: "Matin", StartTime: "06:30", EndTime: "14:30", DurationHours: 8},
		},
		PeriodStart:      "2026-03-02",
		PeriodEnd:        "2026-03-02",
		TimeLimitSeconds: 5,
	}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(scenarioPath, data, 0o644))

	app := &App{Roster: service.NewRosterService(nil), IsInteractive: false}
	err = runSolve(app, scenarioPath, outputPath, 0, 0)
	require.NoError(t, err)

	_, err = loader.LoadScenario(outputPath)
	require.NoError(t, err)
}

func TestRunSolve_ReportsLoadErrorForMissingScenario(t *testing.T) {
	app := &App{Roster: service.NewRosterService(nil), IsInteractive: false}
	err := runSolve(app, filepath.Join(t.TempDir(), "missing.json"), filepath.Join(t.TempDir(), "out.json"), 0, 0)
	require.Error(t, err)
}
