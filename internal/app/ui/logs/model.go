package logs

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"logdeck/internal/app/monitor"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/app/view"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// ReloadMsg carries a configuration reloaded from disk
type ReloadMsg struct {
	Config *config.Config
}

// Model is the Bubble Tea model rendering one viewer
type Model struct {
	ctx      context.Context
	viewer   view.Viewer
	monitor  monitor.Monitor
	interval time.Duration
	step     int
	copy     func(text string) error
	log      logger.Logger

	state struct {
		offset    int
		follow    bool
		searching bool
		category  int
		err       error
		notice    string
		stats     monitor.Stats
		counters  view.Stats
	}

	ui struct {
		width  int
		height int
		keys   KeyMap
		help   help.Model
		search textinput.Model
		pulse  *components.Pulse
	}
}

// NewModel creates the log view model in follow mode
func NewModel(ctx context.Context, cfg *config.Config, viewer view.Viewer, monitor monitor.Monitor, log logger.Logger) Model {
	m := Model{
		ctx:      ctx,
		viewer:   viewer,
		monitor:  monitor,
		interval: cfg.View.FrameInterval,
		step:     config.DefaultMaxLogLengthStep,
		copy:     clipboard.WriteAll,
		log:      log.WithComponent(uiComponent),
	}

	search := textinput.New()
	search.Prompt = searchPrompt
	search.Placeholder = searchPlaceholder
	search.CharLimit = searchCharLimit
	search.PromptStyle = components.PromptStyle

	m.state.follow = true

	m.ui.width = components.DefaultViewportWidth
	m.ui.keys = DefaultKeyMap()
	m.ui.help = help.New()
	m.ui.search = search
	m.ui.pulse = components.NewPulse()

	return m
}

// Init starts the frame and stats loops
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		frameCmd(m.interval),
		statsCmd(m.ctx, m.monitor),
	)
}

// bodyHeight is the number of log rows that fit on screen
func (m Model) bodyHeight() int {
	h := m.ui.height - components.HeaderHeight - components.FooterHeight
	if m.showSearchBar() {
		h--
	}

	if m.ui.help.ShowAll {
		h -= len(m.ui.keys.FullHelp()) - 1
	}

	if h < components.MinBodyHeight {
		h = components.MinBodyHeight
	}

	return h
}

// maxOffset is the offset showing the last page
func (m Model) maxOffset() int {
	maxOffset := m.viewer.Visible() - m.bodyHeight()
	if maxOffset < 0 {
		return 0
	}

	return maxOffset
}

// clampOffset keeps the window inside the visible rows, pinned to the bottom when following
func (m *Model) clampOffset() {
	maxOffset := m.maxOffset()

	switch {
	case m.state.follow || m.state.offset > maxOffset:
		m.state.offset = maxOffset
	case m.state.offset < 0:
		m.state.offset = 0
	}
}

// scroll moves the window by delta rows; reaching the bottom resumes following
func (m *Model) scroll(delta int) {
	m.state.offset += delta
	m.state.follow = false
	m.clampOffset()

	m.state.follow = m.state.offset >= m.maxOffset()
}

// showSearchBar reports whether the search line is drawn
func (m Model) showSearchBar() bool {
	return m.state.searching || m.viewer.Filter().Term() != ""
}

// frameMsg drives one viewer refresh
type frameMsg time.Time

// statsMsg carries the latest resource sample of this process
type statsMsg monitor.Stats

// copiedMsg reports the outcome of a clipboard write
type copiedMsg struct {
	lines int
	err   error
}

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func statsCmd(ctx context.Context, mon monitor.Monitor) tea.Cmd {
	return tea.Tick(components.StatsPollingInterval, func(time.Time) tea.Msg {
		sampleCtx, cancel := context.WithTimeout(ctx, components.StatsTimeout)
		defer cancel()

		return statsMsg(mon.Self(sampleCtx))
	})
}

func copyCmd(write func(string) error, text string, lines int) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{lines: lines, err: write(text)}
	}
}
