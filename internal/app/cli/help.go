package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type usageLine struct {
	command string
	summary string
}

var usage = []usageLine{
	{command: "logdeck", summary: "Open the log viewer"},
	{command: "logdeck --no-ui", summary: "Print logs to the console"},
	{command: "logdeck init", summary: "Write logdeck.yaml with the defaults"},
	{command: "logdeck bench", summary: "Measure the per-frame refresh cost"},
	{command: "logdeck version", summary: "Show version"},
}

var examples = []usageLine{
	{command: "logdeck -c dev.toml", summary: "Use a TOML configuration"},
	{command: "logdeck init --format toml", summary: "Generate logdeck.toml"},
	{command: "LOGDECK_VIEW_MAX_LOG_LENGTH=5000 logdeck", summary: "Override one setting"},
}

// RenderHelp renders the usage screen
func RenderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		RenderTitle(),
		sectionStyle.Render("Usage:"),
		renderLines(usage, commandStyle),
		sectionStyle.Render("Examples:"),
		renderLines(examples, exampleStyle),
	) + "\n"
}

func renderLines(lines []usageLine, style lipgloss.Style) string {
	width := 0
	for _, l := range lines {
		width = max(width, len(l.command))
	}

	rendered := make([]string, 0, len(lines))
	for _, l := range lines {
		rendered = append(rendered, fmt.Sprintf("  %s  %s", style.Render(fmt.Sprintf("%-*s", width, l.command)), bodyStyle.Render(l.summary)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rendered...)
}
