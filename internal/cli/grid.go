package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/carerota/roster/internal/solver"
)

// gridModel is the bubbletea Model for "roster view". It lays the
// solved assignments out as a table.Model with one row per assignment
// (date, employee, shift, locked),
// gated by go-isatty at the call site the same way the teacher gates
// appModel (root.go's App.IsInteractive).
type gridModel struct {
	result *solver.Result
	table  table.Model
	quit   bool
}

func newGridModel(result *solver.Result) gridModel {
	columns, rows := gridColumnsAndRows(result)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 20)),
	)
	style := table.DefaultStyles()
	style.Header = style.Header.Bold(true).Foreground(colorHeader)
	style.Selected = style.Selected.Foreground(colorOK)
	t.SetStyles(style)

	return gridModel{result: result, table: t}
}

func (m gridModel) Init() tea.Cmd { return nil }

func (m gridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.quit = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m gridModel) View() string {
	if m.quit {
		return ""
	}
	header := styleHeader.Render(fmt.Sprintf("roster — %s, %d assignments, %dms",
		m.result.Stats.Status, m.result.Stats.NumAssignments, m.result.Stats.SolveTimeMS))
	footer := styleDim.Render("↑↓ navigate · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.table.View(), footer)
}

// gridColumnsAndRows turns the flat assignments list into one table row
// per assignment, sorted by date then employee id for deterministic
// display.
func gridColumnsAndRows(result *solver.Result) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Date", Width: 12},
		{Title: "Employee", Width: 14},
		{Title: "Shift", Width: 14},
		{Title: "Locked", Width: 8},
	}

	assignments := append([]solver.Assignment(nil), result.Assignments...)
	sort.Slice(assignments, func(i, j int) bool {
		if assignments[i].Date != assignments[j].Date {
			return assignments[i].Date < assignments[j].Date
		}
		return assignments[i].EmployeeID < assignments[j].EmployeeID
	})

	rows := make([]table.Row, 0, len(assignments))
	for _, a := range assignments {
		locked := ""
		if a.IsLocked {
			locked = styleLocked.Render("yes")
		}
		rows = append(rows, table.Row{a.Date, a.EmployeeID, a.ShiftTypeID, locked})
	}
	return columns, rows
}

// renderStaticGrid degrades to a lipgloss-styled, non-interactive table
// dump when the terminal is not a TTY (go-isatty gated at the call
// site), mirroring the teacher's non-interactive fallback.
func renderStaticGrid(result *solver.Result) string {
	_, rows := gridColumnsAndRows(result)
	var b strings.Builder
	b.WriteString(styleHeader.Render(fmt.Sprintf("roster — %s, %d assignments, %dms\n",
		result.Stats.Status, result.Stats.NumAssignments, result.Stats.SolveTimeMS)))
	b.WriteString(fmt.Sprintf("%-12s %-14s %-14s %s\n", "Date", "Employee", "Shift", "Locked"))
	for _, r := range rows {
		locked := ""
		if r[3] != "" {
			locked = "yes"
		}
		fmt.Fprintf(&b, "%-12s %-14s %-14s %s\n", r[0], r[1], r[2], locked)
	}
	return b.String()
}
