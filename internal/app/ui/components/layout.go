package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"logdeck/internal/config"
)

// RenderLine renders a horizontal line of the specified width with separator style
func RenderLine(width int) string {
	if width < 0 {
		width = 0
	}

	return SeparatorStyle.Render(strings.Repeat("─", width))
}

// RenderHeader renders the header with format: ─── <title> ─────── <info> ───
func RenderHeader(width int, title, info string) string {
	infoWidth := lipgloss.Width(info)

	maxTitleWidth := width - infoWidth - HeaderSeparatorMinWidth - HeaderFixedChars
	if maxTitleWidth > 0 {
		title = Truncate(title, maxTitleWidth)
	}

	separatorWidth := width - lipgloss.Width(title) - infoWidth - HeaderFixedChars
	if separatorWidth < HeaderSeparatorMinWidth {
		separatorWidth = HeaderSeparatorMinWidth
	}

	return HeaderStyle.Render(RenderLine(3) + " " + title + " " + RenderLine(separatorWidth) + " " + info + " " + RenderLine(3))
}

// RenderFooter renders a status line ending in the version, then the help text
func RenderFooter(width int, status, helpText string) string {
	version := MutedStyle.Render(fmt.Sprintf("v%s", config.Version))
	used := lipgloss.Width(status) + lipgloss.Width(version)

	separatorWidth := width - used - FooterFixedChars
	if separatorWidth < FooterSeparatorMinWidth {
		separatorWidth = FooterSeparatorMinWidth
	}

	statusLine := status + " " + RenderLine(separatorWidth) + " " + version

	return FooterStyle.Render(lipgloss.JoinVertical(lipgloss.Left, statusLine, HelpStyle.Render(helpText)))
}

// Truncate shortens s to maxWidth cells, keeping ANSI styling intact
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}

	return ansi.Truncate(s, maxWidth, "…")
}
