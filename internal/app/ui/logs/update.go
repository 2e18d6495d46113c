package logs

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"logdeck/internal/app/errors"
	applogs "logdeck/internal/app/logs"
	"logdeck/internal/app/monitor"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.ui.width = msg.Width
		m.ui.height = msg.Height
		m.ui.help.Width = msg.Width
		m.ui.search.Width = msg.Width - len(searchPrompt) - 1
		m.clampOffset()

		return m, nil

	case frameMsg:
		m.refresh()
		m.ui.pulse.Update()

		return m, frameCmd(m.interval)

	case statsMsg:
		m.state.stats = monitor.Stats(msg)

		return m, statsCmd(m.ctx, m.monitor)

	case ReloadMsg:
		m.applyReload(msg)

		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("Failed to copy to clipboard")
			m.state.notice = "copy failed"
		} else {
			m.state.notice = fmt.Sprintf("copied %d lines", msg.lines)
		}

		return m, nil

	case tea.KeyMsg:
		if m.state.searching {
			return m.handleSearchKey(msg)
		}

		return m.handleKeyPress(msg)
	}

	return m, nil
}

// refresh runs one viewer frame. A busy store keeps the previous frame on screen
func (m *Model) refresh() {
	if err := m.viewer.Refresh(); err != nil {
		if !errors.Is(err, errors.ErrStoreBusy) {
			m.state.err = err
		}

		return
	}

	m.state.err = nil

	if counters := m.viewer.Stats(); counters != m.state.counters {
		m.state.counters = counters
		m.ui.pulse.Kick()
	}

	m.clampOffset()
}

// applyReload adopts the live-reloadable settings of a new configuration
func (m *Model) applyReload(msg ReloadMsg) {
	if msg.Config == nil {
		return
	}

	if err := m.viewer.SetMaxRetained(msg.Config.View.MaxLogLength); err != nil {
		m.log.Warn().Err(err).Msg("Ignoring reloaded max log length")
		return
	}

	m.state.notice = fmt.Sprintf("max log length %d", msg.Config.View.MaxLogLength)
	m.refresh()
}

// handleKeyPress processes keyboard input outside the search field
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys
	filter := m.viewer.Filter()

	switch {
	case key.Matches(msg, keys.ForceQuit), key.Matches(msg, keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		m.scroll(-1)
	case key.Matches(msg, keys.Down):
		m.scroll(1)
	case key.Matches(msg, keys.PageUp):
		m.scroll(-m.bodyHeight())
	case key.Matches(msg, keys.PageDown):
		m.scroll(m.bodyHeight())
	case key.Matches(msg, keys.Top):
		m.state.follow = false
		m.state.offset = 0
	case key.Matches(msg, keys.Bottom):
		m.state.follow = true
		m.clampOffset()
	case key.Matches(msg, keys.Follow):
		m.state.follow = !m.state.follow
		m.clampOffset()

	case key.Matches(msg, keys.Search):
		m.state.searching = true
		m.ui.search.SetValue(filter.Term())
		m.ui.search.CursorEnd()

		return m, m.ui.search.Focus()

	case key.Matches(msg, keys.ToggleCase):
		m.viewer.SetSearch(filter.Term(), !filter.CaseSensitive(), filter.UseRegex())
		m.refresh()
	case key.Matches(msg, keys.ToggleRegex):
		if !filter.RegexAllowed() {
			m.state.notice = "regex search is disabled"
			return m, nil
		}

		m.viewer.SetSearch(filter.Term(), filter.CaseSensitive(), !filter.UseRegex())
		m.refresh()

	case key.Matches(msg, keys.ToggleLevel):
		m.toggleLevel(msg.String())
	case key.Matches(msg, keys.PrevCategory):
		m.moveCategory(-1)
	case key.Matches(msg, keys.NextCategory):
		m.moveCategory(1)
	case key.Matches(msg, keys.ToggleCategory):
		m.toggleCategory()

	case key.Matches(msg, keys.Clear):
		m.report(m.viewer.Clear(), "cleared")
	case key.Matches(msg, keys.Sort):
		m.report(m.viewer.Sort(), "sorted by level")
	case key.Matches(msg, keys.Grow):
		m.resize(filter.MaxLogLength() + m.step)
	case key.Matches(msg, keys.Shrink):
		m.resize(filter.MaxLogLength() - m.step)

	case key.Matches(msg, keys.Copy):
		return m, copyCmd(m.copy, m.viewer.CopyText(), m.viewer.Visible())

	case key.Matches(msg, keys.Help):
		m.ui.help.ShowAll = !m.ui.help.ShowAll
		m.clampOffset()
	}

	return m, nil
}

// handleSearchKey routes keys to the search field and applies the term as it is typed
func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.ui.keys
	filter := m.viewer.Filter()

	switch {
	case key.Matches(msg, keys.ForceQuit):
		return m, tea.Quit

	case key.Matches(msg, keys.Accept):
		m.state.searching = false
		m.ui.search.Blur()

		return m, nil

	case key.Matches(msg, keys.Cancel):
		m.state.searching = false
		m.ui.search.Blur()
		m.ui.search.SetValue("")
		m.viewer.SetSearch("", filter.CaseSensitive(), filter.UseRegex())
		m.refresh()

		return m, nil
	}

	var cmd tea.Cmd

	m.ui.search, cmd = m.ui.search.Update(msg)

	if term := m.ui.search.Value(); term != filter.Term() {
		m.viewer.SetSearch(term, filter.CaseSensitive(), filter.UseRegex())
		m.refresh()
	}

	return m, cmd
}

// toggleLevel flips the level bound to a digit key, 1 being Error
func (m *Model) toggleLevel(digit string) {
	if len(digit) != 1 {
		return
	}

	idx := int(digit[0] - '1')
	if idx < 0 || idx >= len(applogs.Levels) {
		return
	}

	m.viewer.ToggleLevel(applogs.Levels[idx])
	m.refresh()
}

// moveCategory selects the previous or next known category
func (m *Model) moveCategory(delta int) {
	n := len(m.viewer.Categories())
	if n == 0 {
		m.state.category = 0
		return
	}

	m.state.category = ((m.state.category+delta)%n + n) % n
}

// selectedCategory returns the category under the selector
func (m Model) selectedCategory() (applogs.Category, bool) {
	categories := m.viewer.Categories()
	if len(categories) == 0 {
		return applogs.Category{}, false
	}

	return categories[min(m.state.category, len(categories)-1)], true
}

// toggleCategory shows or hides the selected category
func (m *Model) toggleCategory() {
	category, ok := m.selectedCategory()
	if !ok {
		return
	}

	m.report(m.viewer.SetCategoryEnabled(category.Name, !category.Enabled), "")
}

// resize changes the retention cap; the change applies at the next refresh
func (m *Model) resize(n int) {
	if err := m.viewer.SetMaxRetained(n); err != nil {
		m.state.notice = err.Error()
		return
	}

	m.state.notice = fmt.Sprintf("max log length %d", n)
	m.refresh()
}

// report shows the outcome of a store operation in the footer
func (m *Model) report(err error, done string) {
	switch {
	case err != nil:
		m.log.Warn().Err(err).Msg("Log operation failed")
		m.state.notice = err.Error()

		if errors.Is(err, errors.ErrStorePoisoned) {
			m.state.err = err
		}
	case done != "":
		m.state.notice = done
	}

	m.clampOffset()
}
