package iostreams

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for terminal output. ANSI 16-color palette indices
// keep rendering stable across light and dark themes.
var (
	// ErrorStyle is red, for failures.
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	// WarningStyle is yellow, for degraded conditions.
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))

	// SuccessStyle is green, for completed work and final percentages.
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))

	// InfoStyle is cyan, for counters and informational emphasis.
	InfoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))

	// HighlightStyle is magenta, for rare callouts.
	HighlightStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("13"))

	// TitleStyle is bold blue, for section headers.
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)

	// MutedStyle is bright black, for separators and timestamps.
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
