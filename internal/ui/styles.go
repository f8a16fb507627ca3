package ui

import "github.com/charmbracelet/lipgloss"

// Colors used by the terminal output.
var (
	ColorIndigo = lipgloss.Color("#6366F1")
	ColorGray   = lipgloss.Color("#6B7280")
	ColorWhite  = lipgloss.Color("#F9FAFB")
	ColorRed    = lipgloss.Color("#DC2626")
	ColorGreen  = lipgloss.Color("#16A34A")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorIndigo)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorGray).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorWhite)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorRed).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorGreen)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorIndigo).
			Padding(0, 1)
)
