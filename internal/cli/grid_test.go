package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carerota/roster/internal/solver"
	"github.com/carerota/roster/internal/teatest"
)

func sampleResult() *solver.Result {
	return &solver.Result{
		Assignments: []solver.Assignment{
			{EmployeeID: "e2", ShiftTypeID: "soir", Date: "2026-03-03", IsLocked: false},
			{EmployeeID: "e1", ShiftTypeID: "matin", Date: "2026-03-02", IsLocked: true},
		},
		Stats: solver.Stats{Status: solver.StatusOptimal, NumAssignments: 2, SolveTimeMS: 120},
	}
}

func TestGridModel_ShowsHeaderSummary(t *testing.T) {
	m := newGridModel(sampleResult())
	d := teatest.New(t, m)

	view := d.View()
	assert.Contains(t, view, "optimal")
	assert.Contains(t, view, "2 assignments")
}

func TestGridModel_SortsRowsByDateThenEmployee(t *testing.T) {
	m := newGridModel(sampleResult())
	d := teatest.New(t, m)

	lines := d.Lines()
	var firstRow, secondRow string
	firstIdx, secondIdx := -1, -1
	for i, l := range lines {
		if firstRow == "" && containsAll(l, "2026-03-02", "e1") {
			firstRow, firstIdx = l, i
		}
		if secondRow == "" && containsAll(l, "2026-03-03", "e2") {
			secondRow, secondIdx = l, i
		}
	}
	assert.NotEmpty(t, firstRow, "expected the 2026-03-02/e1 row to be rendered")
	assert.NotEmpty(t, secondRow, "expected the 2026-03-03/e2 row to be rendered")
	assert.Less(t, firstIdx, secondIdx, "expected the earlier date to be rendered first")
}

func TestGridModel_QuitsOnQ(t *testing.T) {
	m := newGridModel(sampleResult())
	d := teatest.New(t, m)

	d.PressKey('q')

	assert.True(t, d.Quitting)
	assert.Empty(t, d.View())
}

func TestRenderStaticGrid_ListsLockedAssignment(t *testing.T) {
	out := renderStaticGrid(sampleResult())
	assert.Contains(t, out, "e1")
	assert.Contains(t, out, "matin")
	assert.Contains(t, out, "yes")
}

func containsAll(s string, substrs ...string) bool {
	for _, sub := range substrs {
		if !strings.Contains(s, sub) {
			return false
		}
	}
	return true
}
