// Package cli wires the roster binary's subcommands against an App
// holding the service layer, following the teacher's App-struct and
// cobra.Command registration pattern.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/carerota/roster/internal/service"
)

// App holds references to the service layer used by CLI commands and
// the terminal capability flags that gate interactive behavior.
type App struct {
	Roster        *service.RosterService
	IsInteractive bool
}

// NewRootCmd creates the top-level "roster" command and registers its
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "roster",
		Short: "Hospital unit staff roster solver",
		Long: `Hospital unit staff roster solver.

Builds a constraint-optimization model from a scenario of employees,
shift types, coverage requirements, absences, and rules, then solves
it within a wall-clock budget to produce a day-by-day roster.`,
	}

	root.AddCommand(
		newSolveCmd(app),
		newViewCmd(app),
	)

	return root
}
