package cli

//go:generate mockgen -source=tui.go -destination=tui_mock.go -package=cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"logdeck/internal/app/demo"
	"logdeck/internal/app/monitor"
	uilogs "logdeck/internal/app/ui/logs"
	"logdeck/internal/app/view"
	"logdeck/internal/app/watcher"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// TUI runs the interactive log viewer
type TUI interface {
	Run(ctx context.Context) error
}

type tui struct {
	cfg      *config.Config
	viewer   view.Viewer
	monitor  monitor.Monitor
	producer demo.Producer
	watcher  watcher.Watcher
	sender   *uilogs.Sender
	log      logger.Logger
	options  []tea.ProgramOption
}

// NewTUI creates a TUI running the viewer full screen
func NewTUI(
	cfg *config.Config,
	viewer view.Viewer,
	monitor monitor.Monitor,
	producer demo.Producer,
	watcher watcher.Watcher,
	sender *uilogs.Sender,
	log logger.Logger,
) TUI {
	return &tui{
		cfg:      cfg,
		viewer:   viewer,
		monitor:  monitor,
		producer: producer,
		watcher:  watcher,
		sender:   sender,
		log:      log,
		options:  []tea.ProgramOption{tea.WithAltScreen()},
	}
}

// Run starts the demo producer and the config watcher, then blocks until the program quits
func (t *tui) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := uilogs.NewModel(ctx, t.cfg, t.viewer, t.monitor, t.log)
	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithContext(ctx)}, t.options...)...)

	t.sender.Set(p.Send)
	defer t.sender.Set(nil)

	if err := t.watcher.Start(ctx, func(cfg *config.Config) {
		t.sender.Send(uilogs.ReloadMsg{Config: cfg})
	}); err != nil {
		t.log.Warn().Err(err).Msg("Configuration changes will not be applied live")
	}

	go func() {
		if err := t.producer.Run(ctx); err != nil {
			t.log.Error().Err(err).Msg("Demo producer stopped")
		}
	}()

	_, err := p.Run()

	return err
}
