package ui

import "github.com/charmbracelet/lipgloss"

// Semantic color palette.
var (
	colorAccent   = lipgloss.Color("#00BFFF") // cyan — headers/labels
	colorCritical = lipgloss.Color("#FF5252") // red — critical path
	colorOK       = lipgloss.Color("#00E676") // green — healthy metrics
	colorWarn     = lipgloss.Color("#FFD700") // gold — warnings
	colorMuted    = lipgloss.Color("#8C8C8C") // gray — de-emphasized
)

var (
	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	styleCritical = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCritical)

	styleOK = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorOK)

	styleWarn = lipgloss.NewStyle().
			Foreground(colorWarn)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent).
			Underline(true)
)
