package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorHeader = lipgloss.Color("12")
	colorDim    = lipgloss.Color("240")
	colorLocked = lipgloss.Color("11")
	colorOK     = lipgloss.Color("10")

	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorHeader)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleLocked = lipgloss.NewStyle().Foreground(colorLocked)
	styleOK     = lipgloss.NewStyle().Foreground(colorOK)
)
