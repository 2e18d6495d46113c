package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"logdeck/internal/app/layout"
	"logdeck/internal/app/logs"
	"logdeck/internal/app/monitor"
	uilogs "logdeck/internal/app/ui/logs"
	"logdeck/internal/app/view"
	"logdeck/internal/app/watcher"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// blockingProducer runs until its context is cancelled
type blockingProducer struct {
	stopped chan struct{}
}

func (p *blockingProducer) Run(ctx context.Context) error {
	<-ctx.Done()
	close(p.stopped)

	return nil
}

func Test_TUI_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent(gomock.Any()).Return(mockLog).AnyTimes()
	mockLog.EXPECT().Debug().Return(nil).AnyTimes()
	mockLog.EXPECT().Info().Return(nil).AnyTimes()
	mockLog.EXPECT().Warn().Return(nil).AnyTimes()
	mockLog.EXPECT().Error().Return(nil).AnyTimes()

	mockWatcher := watcher.NewMockWatcher(ctrl)
	mockWatcher.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)

	cfg := config.DefaultConfig()
	store := logs.NewStore()
	viewer := view.NewViewer(cfg, store, layout.NewFormatter(cfg))
	producer := &blockingProducer{stopped: make(chan struct{})}
	sender := uilogs.NewSender()

	ui := NewTUI(cfg, viewer, monitor.NewMonitor(), producer, mockWatcher, sender, mockLog).(*tui)
	ui.options = []tea.ProgramOption{
		tea.WithInput(strings.NewReader("q")),
		tea.WithOutput(io.Discard),
	}

	assert.NoError(t, ui.Run(context.Background()))

	<-producer.stopped
	assert.NotPanics(t, func() { sender.Send(uilogs.ReloadMsg{Config: cfg}) })
}
