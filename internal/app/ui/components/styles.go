package components

import "github.com/charmbracelet/lipgloss"

// Common styles shared across UI components
var (
	// TitleStyle for the application name in the header
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// SeparatorStyle for horizontal rules
	SeparatorStyle = lipgloss.NewStyle().
			Foreground(SeparatorColor)

	// HeaderStyle wraps the header line
	HeaderStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// FooterStyle wraps the counters and help block
	FooterStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// HelpStyle for help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(FgBorder)

	// MutedStyle for secondary information
	MutedStyle = lipgloss.NewStyle().
			Foreground(FgMuted)

	// ErrorStyle for error messages
	ErrorStyle = lipgloss.NewStyle().
			Foreground(LevelErrorColor)

	// EmptyStateStyle for empty state messages
	EmptyStateStyle = lipgloss.NewStyle().
			Foreground(FgMuted).
			Padding(1, 2)

	// SelectedRowStyle for the cursor row
	SelectedRowStyle = lipgloss.NewStyle().
				Background(BgSelection)

	// PromptStyle for the search prompt
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// ToggleOnStyle marks an enabled toggle
	ToggleOnStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(FgPrimary)

	// ToggleOffStyle marks a disabled toggle
	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(FgBorder).
			Strikethrough(true)

	// PulseStyle for the activity indicator
	PulseStyle = lipgloss.NewStyle().
			Foreground(LevelInfoColor)
)

// Toggle renders label in the on or off style
func Toggle(label string, on bool) string {
	if on {
		return ToggleOnStyle.Render(label)
	}

	return ToggleOffStyle.Render(label)
}
