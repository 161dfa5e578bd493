// Package tui implements the interactive completion prompt.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

const (
	ColorCyan   = lipgloss.Color("12") // prompt
	ColorYellow = lipgloss.Color("11") // selected suggestion
	ColorGray   = lipgloss.Color("8")  // dim/secondary (counts, hints)
)

var (
	// PromptStyle is used for the input prompt marker.
	PromptStyle = lipgloss.NewStyle().Foreground(ColorCyan)

	// SelectedStyle highlights the suggestion the cursor is on.
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// ItemStyle is used for unselected suggestions.
	ItemStyle = lipgloss.NewStyle()

	// DimStyle is used for secondary information like match counts.
	DimStyle = lipgloss.NewStyle().Foreground(ColorGray)
)
