package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"logdeck/internal/app/demo"
	"logdeck/internal/app/errors"
	"logdeck/internal/app/generator"
	"logdeck/internal/app/watcher"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

type testCLI struct {
	cli       *cli
	tui       *MockTUI
	bench     *MockBench
	generator *generator.MockGenerator
	producer  *demo.MockProducer
	watcher   *watcher.MockWatcher
	out       *bytes.Buffer
	errOut    *bytes.Buffer
}

func newTestCLI(ctrl *gomock.Controller, opts *Options) testCLI {
	mockLog := logger.NewMockLogger(ctrl)
	componentLog := logger.NewMockLogger(ctrl)
	mockLog.EXPECT().WithComponent("CLI").Return(componentLog).AnyTimes()
	componentLog.EXPECT().Info().Return(nil).AnyTimes()
	componentLog.EXPECT().Warn().Return(nil).AnyTimes()

	tc := testCLI{
		tui:       NewMockTUI(ctrl),
		bench:     NewMockBench(ctrl),
		generator: generator.NewMockGenerator(ctrl),
		producer:  demo.NewMockProducer(ctrl),
		watcher:   watcher.NewMockWatcher(ctrl),
		out:       &bytes.Buffer{},
		errOut:    &bytes.Buffer{},
	}

	c := NewCLI(opts, config.DefaultConfig(), tc.tui, tc.bench, tc.generator, tc.producer, tc.watcher, mockLog).(*cli)
	c.out = tc.out
	c.errOut = tc.errOut
	tc.cli = c

	return tc
}

func Test_CLI_Execute(t *testing.T) {
	tests := []struct {
		name     string
		opts     Options
		before   func(tc testCLI)
		exitCode int
		error    error
		output   string
	}{
		{
			name: "Run opens the TUI",
			opts: Options{Type: CommandRun},
			before: func(tc testCLI) {
				tc.tui.EXPECT().Run(gomock.Any()).Return(nil)
			},
		},
		{
			name: "TUI failure",
			opts: Options{Type: CommandRun},
			before: func(tc testCLI) {
				tc.tui.EXPECT().Run(gomock.Any()).Return(assert.AnError)
			},
			exitCode: 1,
			error:    assert.AnError,
		},
		{
			name: "Run without UI",
			opts: Options{Type: CommandRun, NoUI: true},
			before: func(tc testCLI) {
				tc.watcher.EXPECT().Start(gomock.Any(), gomock.Any()).Return(nil)
				tc.producer.EXPECT().Run(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Run without UI keeps going when watching fails",
			opts: Options{Type: CommandRun, NoUI: true},
			before: func(tc testCLI) {
				tc.watcher.EXPECT().Start(gomock.Any(), gomock.Any()).Return(assert.AnError)
				tc.producer.EXPECT().Run(gomock.Any()).Return(nil)
			},
		},
		{
			name: "Init",
			opts: Options{Type: CommandInit, Force: true, Format: "toml"},
			before: func(tc testCLI) {
				tc.generator.EXPECT().Generate(generator.Options{
					Path:   config.FileName,
					Format: "toml",
					Force:  true,
				}).Return(nil)
			},
		},
		{
			name: "Init failure",
			opts: Options{Type: CommandInit},
			before: func(tc testCLI) {
				tc.generator.EXPECT().Generate(gomock.Any()).Return(errors.ErrConfigFileExists)
			},
			exitCode: 1,
			error:    errors.ErrConfigFileExists,
		},
		{
			name: "Bench",
			opts: Options{Type: CommandBench, Frames: 42},
			before: func(tc testCLI) {
				tc.bench.EXPECT().Run(gomock.Any(), 42, tc.out).Return(nil)
			},
		},
		{
			name:   "Version",
			opts:   Options{Type: CommandVersion},
			before: func(tc testCLI) {},
			output: "logdeck v" + config.Version,
		},
		{
			name:   "Help",
			opts:   Options{Type: CommandHelp},
			before: func(tc testCLI) {},
			output: "Usage:",
		},
		{
			name:     "Unknown command",
			opts:     Options{Type: CommandType(99)},
			before:   func(tc testCLI) {},
			exitCode: 1,
			error:    errors.ErrUnknownCommand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			opts := tt.opts
			tc := newTestCLI(ctrl, &opts)
			tt.before(tc)

			exitCode, err := tc.cli.Execute()

			assert.Equal(t, tt.exitCode, exitCode)

			if tt.error != nil {
				assert.ErrorIs(t, err, tt.error)
				assert.Contains(t, ansi.Strip(tc.errOut.String()), "Error:")
			} else {
				assert.NoError(t, err)
			}

			if tt.output != "" {
				assert.Contains(t, ansi.Strip(tc.out.String()), tt.output)
			}
		})
	}
}

func Test_CLI_RunHeadlessForwardsReloads(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tc := newTestCLI(ctrl, &Options{Type: CommandRun, NoUI: true})

	tc.watcher.EXPECT().Start(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, onReload watcher.ReloadFunc) error {
		cfg := config.DefaultConfig()
		cfg.View.MaxLogLength = 5
		onReload(cfg)

		return nil
	})
	tc.producer.EXPECT().Run(gomock.Any()).Return(nil)

	assert.NoError(t, tc.cli.runHeadless(context.Background()))
}
