//go:generate mockgen -source=cli.go -destination=cli_mock.go -package=cli
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"logdeck/internal/app/demo"
	"logdeck/internal/app/errors"
	"logdeck/internal/app/generator"
	"logdeck/internal/app/watcher"
	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// CLI defines the interface for cli operations
type CLI interface {
	Execute() (int, error)
}

// cli dispatches the parsed command
type cli struct {
	opts      *Options
	cfg       *config.Config
	tui       TUI
	bench     Bench
	generator generator.Generator
	producer  demo.Producer
	watcher   watcher.Watcher
	log       logger.Logger
	out       io.Writer
	errOut    io.Writer
}

// NewCLI creates a new cli instance
func NewCLI(
	opts *Options,
	cfg *config.Config,
	tui TUI,
	bench Bench,
	generator generator.Generator,
	producer demo.Producer,
	watcher watcher.Watcher,
	log logger.Logger,
) CLI {
	return &cli{
		opts:      opts,
		cfg:       cfg,
		tui:       tui,
		bench:     bench,
		generator: generator,
		producer:  producer,
		watcher:   watcher,
		log:       log.WithComponent("CLI"),
		out:       os.Stdout,
		errOut:    os.Stderr,
	}
}

// Execute runs the command and returns the process exit code
func (c *cli) Execute() (int, error) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := c.dispatch(ctx); err != nil {
		fmt.Fprintf(c.errOut, "%s %v\n", errorStyle.Render("Error:"), err)
		return 1, err
	}

	return 0, nil
}

func (c *cli) dispatch(ctx context.Context) error {
	switch c.opts.Type {
	case CommandRun:
		if c.opts.NoUI {
			return c.runHeadless(ctx)
		}

		return c.tui.Run(ctx)
	case CommandInit:
		return c.generator.Generate(generator.Options{
			Path:   c.cfg.Path(),
			Format: c.opts.Format,
			Force:  c.opts.Force,
			DryRun: c.opts.DryRun,
		})
	case CommandBench:
		return c.bench.Run(ctx, c.opts.Frames, c.out)
	case CommandVersion:
		fmt.Fprintln(c.out, RenderTitle())
		return nil
	case CommandHelp:
		fmt.Fprint(c.out, RenderHelp())
		return nil
	default:
		return errors.ErrUnknownCommand
	}
}

// runHeadless streams the demo records to the console until interrupted
func (c *cli) runHeadless(ctx context.Context) error {
	c.log.Info().Msgf("Running without UI, configuration from %s", c.cfg.Path())

	if err := c.watcher.Start(ctx, func(cfg *config.Config) {
		c.log.Info().Msgf("Reloaded configuration, max log length %d", cfg.View.MaxLogLength)
	}); err != nil {
		c.log.Warn().Err(err).Msg("Configuration changes will not be watched")
	}

	return c.producer.Run(ctx)
}
