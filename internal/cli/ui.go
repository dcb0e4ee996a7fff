package cli

import "github.com/charmbracelet/lipgloss"

// Color palette shared by the CLI's styled output.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - headings
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleLabel for row labels.
	styleLabel = lipgloss.NewStyle().Foreground(colorDim).Width(10)

	// styleValue for data values.
	styleValue = lipgloss.NewStyle().Foreground(colorWhite)
)
