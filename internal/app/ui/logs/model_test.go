package logs

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"logdeck/internal/app/layout"
	applogs "logdeck/internal/app/logs"
	"logdeck/internal/app/monitor"
	"logdeck/internal/app/view"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

type stubMonitor struct {
	stats monitor.Stats
}

func (s stubMonitor) GetStats(_ context.Context, _ int) (monitor.Stats, error) {
	return s.stats, nil
}

func (s stubMonitor) Self(_ context.Context) monitor.Stats {
	return s.stats
}

var baseTime = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

func appendRecords(t *testing.T, store applogs.Store, from, n int, category string) {
	t.Helper()

	for i := from; i < from+n; i++ {
		record := applogs.Record{
			Level:    applogs.Info,
			Message:  fmt.Sprintf("message %d", i),
			Category: category,
			Time:     baseTime.Add(time.Duration(i) * time.Millisecond),
		}
		require.NoError(t, store.Append(record, true, time.Second))
	}
}

func newTestModel(t *testing.T, ctrl *gomock.Controller, store applogs.Store) Model {
	t.Helper()

	cfg := config.DefaultConfig()
	viewer := view.NewViewer(cfg, store, layout.NewFormatter(cfg))

	mockLog := logger.NewMockLogger(ctrl)
	componentLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent(uiComponent).Return(componentLog).AnyTimes()
	componentLog.EXPECT().Info().Return(nil).AnyTimes()
	componentLog.EXPECT().Warn().Return(nil).AnyTimes()

	m := NewModel(context.Background(), cfg, viewer, stubMonitor{stats: monitor.Stats{CPU: 1.5, MEM: 12}}, mockLog)
	m.copy = func(string) error { return nil }

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 20})

	return update(t, m, frameMsg(time.Now()))
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)

	model, ok := updated.(Model)
	require.True(t, ok)

	return model
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()

	for _, k := range keys {
		m = update(t, m, keyMsg(k))
	}

	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()

	for _, r := range text {
		m = press(t, m, string(r))
	}

	return m
}

func Test_NewModel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestModel(t, ctrl, applogs.NewStore())

	assert.True(t, m.state.follow)
	assert.False(t, m.state.searching)
	assert.Equal(t, 0, m.state.offset)
	assert.NotNil(t, m.Init())
}

func Test_Model_FrameFollowsBottom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 50, "app")

	m := newTestModel(t, ctrl, store)
	body := m.bodyHeight()

	assert.Equal(t, 50, m.viewer.Visible())
	assert.Equal(t, 50-body, m.state.offset)

	out := ansi.Strip(m.View())
	assert.Contains(t, out, "message 49")
	assert.NotContains(t, out, "message 0 ")
	assert.Contains(t, out, "Log size 50/1000")
	assert.Contains(t, out, "Displayed 50")

	appendRecords(t, store, 50, 5, "app")
	m = update(t, m, frameMsg(time.Now()))

	assert.Equal(t, 55-body, m.state.offset)
	assert.Contains(t, ansi.Strip(m.View()), "message 54")
}

func Test_Model_ScrollingLeavesFollowMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 50, "app")

	m := newTestModel(t, ctrl, store)
	bottom := m.state.offset

	m = press(t, m, "k")
	assert.False(t, m.state.follow)
	assert.Equal(t, bottom-1, m.state.offset)

	appendRecords(t, store, 50, 5, "app")
	m = update(t, m, frameMsg(time.Now()))
	assert.Equal(t, bottom-1, m.state.offset)

	m = press(t, m, "g")
	assert.Equal(t, 0, m.state.offset)

	m = press(t, m, "G")
	assert.True(t, m.state.follow)
	assert.Equal(t, m.maxOffset(), m.state.offset)

	m = press(t, m, "k", "j")
	assert.True(t, m.state.follow)
}

func Test_Model_LevelKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 10, "app")

	m := newTestModel(t, ctrl, store)

	m = press(t, m, "1")
	assert.False(t, m.viewer.Filter().LevelEnabled(applogs.Error))
	assert.Equal(t, 10, m.viewer.Visible())

	m = press(t, m, "3")
	assert.False(t, m.viewer.Filter().LevelEnabled(applogs.Info))
	assert.Equal(t, 0, m.viewer.Visible())
	assert.Contains(t, ansi.Strip(m.View()), emptyText)

	m = press(t, m, "3")
	assert.Equal(t, 10, m.viewer.Visible())
}

func Test_Model_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 50, "app")

	m := newTestModel(t, ctrl, store)

	m = press(t, m, "/")
	assert.True(t, m.state.searching)

	m = typeText(t, m, "message 4")
	assert.Equal(t, "message 4", m.viewer.Filter().Term())
	assert.Equal(t, 11, m.viewer.Visible())

	m = press(t, m, "enter")
	assert.False(t, m.state.searching)
	assert.Equal(t, 11, m.viewer.Visible())
	assert.Contains(t, ansi.Strip(m.View()), "/ message 4")

	m = press(t, m, "/", "esc")
	assert.False(t, m.state.searching)
	assert.Empty(t, m.viewer.Filter().Term())
	assert.Equal(t, 50, m.viewer.Visible())
}

func Test_Model_SearchFlags(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestModel(t, ctrl, applogs.NewStore())

	m = press(t, m, "i")
	assert.True(t, m.viewer.Filter().CaseSensitive())

	m = press(t, m, "x")
	assert.True(t, m.viewer.Filter().UseRegex())

	m = press(t, m, "/")
	m = typeText(t, m, "[")
	m = press(t, m, "enter")

	assert.False(t, m.viewer.Filter().Valid())
	assert.Contains(t, ansi.Strip(m.View()), "invalid pattern")
}

func Test_Model_Categories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 6, "app")
	appendRecords(t, store, 6, 4, "db::pool")

	m := newTestModel(t, ctrl, store)

	category, ok := m.selectedCategory()
	require.True(t, ok)
	assert.Equal(t, "app", category.Name)

	m = press(t, m, "]")
	category, _ = m.selectedCategory()
	assert.Equal(t, "db::pool", category.Name)

	m = press(t, m, " ")
	assert.Equal(t, 6, m.viewer.Visible())

	m = press(t, m, "]")
	category, _ = m.selectedCategory()
	assert.Equal(t, "app", category.Name)

	m = press(t, m, "[", " ")
	assert.Equal(t, 10, m.viewer.Visible())
}

func Test_Model_ClearAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 5, "app")

	m := newTestModel(t, ctrl, store)

	m = press(t, m, "o")
	assert.Equal(t, "sorted by level", m.state.notice)
	assert.Equal(t, 5, m.viewer.Visible())

	m = press(t, m, "c")
	assert.Equal(t, "cleared", m.state.notice)
	assert.Equal(t, 0, m.viewer.Visible())
	assert.Equal(t, 0, m.viewer.Stats().Retained)
}

func Test_Model_MaxLogLengthKeys(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestModel(t, ctrl, applogs.NewStore())

	m = press(t, m, "-")
	assert.Equal(t, config.DefaultMaxLogLength-config.DefaultMaxLogLengthStep, m.viewer.Filter().MaxLogLength())

	m = press(t, m, "+")
	assert.Equal(t, config.DefaultMaxLogLength, m.viewer.Filter().MaxLogLength())

	for i := 0; i < 10; i++ {
		m = press(t, m, "-")
	}

	assert.Equal(t, config.DefaultMaxLogLengthStep, m.viewer.Filter().MaxLogLength())
	assert.Contains(t, m.state.notice, "positive")
}

func Test_Model_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 3, "app")

	m := newTestModel(t, ctrl, store)

	var copied string

	m.copy = func(text string) error {
		copied = text
		return nil
	}

	_, cmd := m.Update(keyMsg("y"))
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, copiedMsg{lines: 3}, msg)
	assert.Len(t, strings.Split(strings.TrimSuffix(copied, "\n"), "\n"), 3)
	assert.Contains(t, copied, "message 2")

	m = update(t, m, msg)
	assert.Equal(t, "copied 3 lines", m.state.notice)

	m = update(t, m, copiedMsg{err: assert.AnError})
	assert.Equal(t, "copy failed", m.state.notice)
}

func Test_Model_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 30, "app")

	m := newTestModel(t, ctrl, store)

	cfg := config.DefaultConfig()
	cfg.View.MaxLogLength = 10

	m = update(t, m, ReloadMsg{Config: cfg})

	assert.Equal(t, 10, m.viewer.Filter().MaxLogLength())
	assert.Equal(t, 10, m.viewer.Stats().Retained)
	assert.Contains(t, ansi.Strip(m.View()), "message 29")

	m = update(t, m, ReloadMsg{})
	assert.Equal(t, 10, m.viewer.Filter().MaxLogLength())
}

func Test_Model_PoisonedStoreShowsPlaceholder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := applogs.NewStore()
	appendRecords(t, store, 0, 3, "app")

	m := newTestModel(t, ctrl, store)

	assert.Panics(t, func() {
		_ = store.Do(time.Second, func(*applogs.Tx) { panic("boom") })
	})

	m = update(t, m, frameMsg(time.Now()))

	assert.Error(t, m.state.err)
	assert.Contains(t, ansi.Strip(m.View()), placeholderText)
}

func Test_Model_Stats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newTestModel(t, ctrl, applogs.NewStore())

	m = update(t, m, statsMsg(monitor.Stats{CPU: 2.5, MEM: 64}))

	assert.Contains(t, ansi.Strip(m.View()), "cpu 2.5% mem 64.0MB")
}

func Test_Model_Quit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name string
		keys []string
	}{
		{name: "Quit key", keys: []string{"q"}},
		{name: "Force quit", keys: []string{"ctrl+c"}},
		{name: "Force quit while searching", keys: []string{"/", "ctrl+c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, ctrl, applogs.NewStore())

			var cmd tea.Cmd

			for _, k := range tt.keys {
				var updated tea.Model

				updated, cmd = m.Update(keyMsg(k))
				m = updated.(Model)
			}

			require.NotNil(t, cmd)
			assert.Equal(t, tea.QuitMsg{}, cmd())
		})
	}
}

func Test_Sender(t *testing.T) {
	s := NewSender()

	assert.NotPanics(t, func() { s.Send(ReloadMsg{}) })

	var received []tea.Msg

	s.Set(func(msg tea.Msg) { received = append(received, msg) })
	s.Send(ReloadMsg{})

	assert.Equal(t, []tea.Msg{ReloadMsg{}}, received)
}
