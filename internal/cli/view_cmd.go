package cli

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/carerota/roster/internal/solver"
)

func newViewCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <result.json>",
		Short: "Render a solved roster as a terminal grid",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := loadResult(args[0])
			if err != nil {
				return err
			}
			if app.IsInteractive {
				p := tea.NewProgram(newGridModel(result))
				_, err := p.Run()
				return err
			}
			fmt.Print(renderStaticGrid(result))
			return nil
		},
	}
}

func loadResult(path string) (*solver.Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("view: reading result file %s: %w", path, err)
	}
	var result solver.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("view: parsing result file %s: %w", path, err)
	}
	return &result, nil
}
