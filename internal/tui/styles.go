// Package tui provides the terminal user interface for Tally.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the TUI dashboard.
var (
	ColorPrimary  = lipgloss.Color("#7C3AED") // Purple
	ColorPositive = lipgloss.Color("#10B981") // Green
	ColorNegative = lipgloss.Color("#EF4444") // Red
	ColorMuted    = lipgloss.Color("#6B7280") // Gray
	ColorWarning  = lipgloss.Color("#F59E0B") // Yellow
	ColorBorder   = lipgloss.Color("#4B5563") // Dark gray
)

// Base styles for the TUI.
var (
	// StyleTitle is used for the dashboard header.
	StyleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// StyleSubtitle is used for secondary header information.
	StyleSubtitle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleValuePositive renders the big counter value above zero.
	StyleValuePositive = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPositive)

	// StyleValueNegative renders the big counter value below zero.
	StyleValueNegative = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorNegative)

	// StyleValueZero renders the counter value at zero.
	StyleValueZero = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMuted)

	// StyleMessage is used for the narrative band line.
	StyleMessage = lipgloss.NewStyle().
			Italic(true)

	// StyleLabel is used for field labels in the stats section.
	StyleLabel = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleWarning is used for transient messages.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleHelp is used for the help bar at the bottom.
	StyleHelp = lipgloss.NewStyle().
			Foreground(ColorMuted).
			MarginTop(1)

	// StyleHelpKey is used for keyboard shortcut keys.
	StyleHelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPositive)
)

// Box styles for the dashboard sections.
var (
	// StyleCounterBox frames the value and narrative section.
	StyleCounterBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2).
			MarginBottom(1)

	// StyleStatsBox frames the analytics section.
	StyleStatsBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 2).
			MarginBottom(1)

	// StylePromptBox frames the amount entry prompt.
	StylePromptBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorWarning).
			Padding(0, 2).
			MarginBottom(1)
)

// HelpBar renders the standard keybinding help line.
func HelpBar() string {
	entries := []struct{ key, desc string }{
		{"+/-", "step"},
		{"i/d", "by amount"},
		{"s", "set step"},
		{"v", "set value"},
		{"u", "undo"},
		{"r", "reset"},
		{"q", "quit"},
	}

	out := ""
	for i, e := range entries {
		if i > 0 {
			out += "  "
		}
		out += StyleHelpKey.Render(e.key) + " " + e.desc
	}
	return StyleHelp.Render(out)
}
