package cli

import (
	"github.com/charmbracelet/lipgloss"

	"logdeck/internal/app/ui/components"
	"logdeck/internal/config"
)

var (
	appNameStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary)
	appVersionStyle = lipgloss.NewStyle().Foreground(components.FgMuted)
	sectionStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.FgPrimary).MarginTop(1)
	commandStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.LevelInfoColor)
	exampleStyle    = lipgloss.NewStyle().Bold(true).Foreground(components.LevelWarnColor)
	bodyStyle       = lipgloss.NewStyle().Foreground(components.FgMuted)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(components.LevelErrorColor)
	valueStyle      = lipgloss.NewStyle().Bold(true)
)

// RenderTitle renders the app name, version and description
func RenderTitle() string {
	title := appNameStyle.Render(config.AppName) + appVersionStyle.Render(" v"+config.Version)

	return lipgloss.JoinVertical(lipgloss.Left, title, bodyStyle.Render(config.AppDesc))
}
