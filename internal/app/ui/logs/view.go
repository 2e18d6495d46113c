package logs

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	applogs "logdeck/internal/app/logs"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/config"
)

// View renders the log view
func (m Model) View() string {
	parts := []string{m.renderHeader()}

	if m.showSearchBar() {
		parts = append(parts, m.renderSearch())
	}

	parts = append(parts, m.renderBody(), m.renderFooter())

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderHeader renders the title, activity pulse, level toggles and selected category
func (m Model) renderHeader() string {
	title := components.TitleStyle.Render(config.AppName) + " " + m.ui.pulse.Render(components.PulseStyle)

	return components.RenderHeader(m.ui.width, title, m.renderToggles())
}

// renderToggles renders one badge per level plus the category selector
func (m Model) renderToggles() string {
	filter := m.viewer.Filter()
	badges := make([]string, 0, len(applogs.Levels)+1)

	for _, level := range applogs.Levels {
		badges = append(badges, components.Toggle(level.Short(), filter.LevelEnabled(level)))
	}

	if category, ok := m.selectedCategory(); ok {
		badges = append(badges, "["+components.Toggle(category.Name, category.Enabled)+"]")
	}

	return strings.Join(badges, " ")
}

// renderSearch renders the search field with its case and regex flags
func (m Model) renderSearch() string {
	filter := m.viewer.Filter()

	field := m.ui.search.View()
	if !m.state.searching {
		field = components.PromptStyle.Render(searchPrompt) + filter.Term()
	}

	flags := components.Toggle("Aa", filter.CaseSensitive())
	if filter.RegexAllowed() {
		flags += " " + components.Toggle(".*", filter.UseRegex())
	}

	if !filter.Valid() {
		flags += " " + components.ErrorStyle.Render("invalid pattern")
	}

	return " " + field + "  " + flags
}

// renderBody renders only the rows inside the window
func (m Model) renderBody() string {
	height := m.bodyHeight()
	style := lipgloss.NewStyle().Height(height).MaxHeight(height)

	if m.state.err != nil {
		return style.Render(components.EmptyStateStyle.Render(placeholderText))
	}

	visible := m.viewer.Visible()
	if visible == 0 {
		return style.Render(components.EmptyStateStyle.Render(emptyText))
	}

	end := min(m.state.offset+height, visible)
	lines := make([]string, 0, end-m.state.offset)

	for i := m.state.offset; i < end; i++ {
		lines = append(lines, components.Truncate(m.viewer.Formatted(i).Text, m.ui.width))
	}

	return style.Render(strings.Join(lines, "\n"))
}

// renderFooter renders counters, resource usage and help
func (m Model) renderFooter() string {
	return components.RenderFooter(m.ui.width, m.renderStatus(), m.ui.help.View(m.ui.keys))
}

// renderStatus renders the retained, displayed and dropped counters
func (m Model) renderStatus() string {
	counters := m.viewer.Stats()

	parts := []string{
		fmt.Sprintf("Log size %d/%d", counters.Retained, m.viewer.Filter().MaxLogLength()),
		fmt.Sprintf("Displayed %d", counters.Displayed),
	}

	if counters.Dropped > 0 {
		parts = append(parts, components.ErrorStyle.Render(fmt.Sprintf("Dropped %d", counters.Dropped)))
	}

	if m.state.stats.MEM > 0 {
		parts = append(parts, fmt.Sprintf("cpu %.1f%% mem %.1fMB", m.state.stats.CPU, m.state.stats.MEM))
	}

	parts = append(parts, components.Toggle("follow", m.state.follow))

	if m.state.notice != "" {
		parts = append(parts, components.MutedStyle.Render(m.state.notice))
	}

	return strings.Join(parts, " • ")
}
