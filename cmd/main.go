package main

import (
	"fmt"
	"os"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"

	"logdeck/internal/app"
	"logdeck/internal/app/cli"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// main is the entry point for the application
func main() {
	runApp()
}

// runApp parses the arguments, loads the configuration and runs the fx application
func runApp() {
	opts, err := cli.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	application := createApp(cfg, opts)
	application.Run()
}

// createApp creates the FX application with the given config and options
func createApp(cfg *config.Config, opts *cli.Options) *fx.App {
	return fx.New(
		fx.WithLogger(createFxLogger(cfg, opts)),
		fx.Supply(cfg, opts),
		app.Module,
	)
}

// createFxLogger returns an FX logger based on the config. The viewer owns the
// terminal, so fx only logs to stdout in console mode
func createFxLogger(cfg *config.Config, opts *cli.Options) func() fxevent.Logger {
	return func() fxevent.Logger {
		if cfg.Logging.Level == logger.TraceLevel && (opts.NoUI || opts.Type != cli.CommandRun) {
			return &fxevent.ConsoleLogger{W: os.Stdout}
		}

		return fxevent.NopLogger
	}
}
