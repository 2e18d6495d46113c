package cli

//go:generate mockgen -source=bench.go -destination=bench_mock.go -package=cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/x/term"

	"logdeck/internal/app/layout"
	"logdeck/internal/app/logs"
	"logdeck/internal/app/ui/components"
	"logdeck/internal/app/view"
	"logdeck/internal/config"
)

// Benchmark workload
const (
	benchSeedPerLevel  = 250
	benchPerFrame      = 100
	benchAveragedOver  = 60
	benchFallbackWidth = 60
)

var benchLevels = []logs.Level{logs.Error, logs.Warn, logs.Info, logs.Debug}

var benchCategories = []string{"http::server", "db::pool", "scheduler", "auth"}

// BenchResult summarizes a benchmark run
type BenchResult struct {
	Frames    int
	Averaged  int
	Average   time.Duration
	Slowest   time.Duration
	Retained  int
	Displayed int
}

// Bench measures the viewer refresh cost under a steady append load
type Bench interface {
	Run(ctx context.Context, frames int, out io.Writer) error
	Measure(ctx context.Context, frames int) (BenchResult, error)
}

type bench struct {
	cfg *config.Config
}

// NewBench creates a bench using the view settings of cfg
func NewBench(cfg *config.Config) Bench {
	return &bench{cfg: cfg}
}

// Run measures and prints the result
func (b *bench) Run(ctx context.Context, frames int, out io.Writer) error {
	result, err := b.Measure(ctx, frames)
	if err != nil {
		return err
	}

	rule := components.RenderLine(terminalWidth(out))

	fmt.Fprintln(out, RenderTitle())
	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "frames        %s\n", valueStyle.Render(fmt.Sprintf("%d", result.Frames)))
	fmt.Fprintf(out, "retained      %s\n", valueStyle.Render(fmt.Sprintf("%d", result.Retained)))
	fmt.Fprintf(out, "displayed     %s\n", valueStyle.Render(fmt.Sprintf("%d", result.Displayed)))
	fmt.Fprintf(out, "avg refresh   %s %s\n", valueStyle.Render(result.Average.String()), bodyStyle.Render(fmt.Sprintf("(last %d frames)", result.Averaged)))
	fmt.Fprintf(out, "slowest       %s\n", valueStyle.Render(result.Slowest.String()))
	fmt.Fprintln(out, rule)

	return nil
}

// Measure seeds the store, then appends a batch and refreshes once per frame
func (b *bench) Measure(ctx context.Context, frames int) (BenchResult, error) {
	store := logs.NewStore()
	viewer := view.NewViewer(b.cfg, store, layout.NewFormatter(b.cfg))
	start := time.Now()
	seq := 0

	for _, level := range benchLevels {
		for i := 0; i < benchSeedPerLevel; i++ {
			if err := store.Append(benchRecord(level, seq, start), true, b.cfg.Sink.LockTimeout); err != nil {
				return BenchResult{}, err
			}

			seq++
		}
	}

	durations := make([]time.Duration, 0, frames)

	for f := 0; f < frames; f++ {
		if err := ctx.Err(); err != nil {
			return BenchResult{}, err
		}

		for i := 0; i < benchPerFrame; i++ {
			level := benchLevels[seq%len(benchLevels)]
			if err := store.Append(benchRecord(level, seq, start), true, b.cfg.Sink.LockTimeout); err != nil {
				return BenchResult{}, err
			}

			seq++
		}

		frameStart := time.Now()

		if err := viewer.Refresh(); err != nil {
			return BenchResult{}, err
		}

		durations = append(durations, time.Since(frameStart))
	}

	stats := viewer.Stats()
	result := BenchResult{
		Frames:    frames,
		Retained:  stats.Retained,
		Displayed: stats.Displayed,
	}

	tail := durations[max(len(durations)-benchAveragedOver, 0):]
	if len(tail) == 0 {
		return result, nil
	}

	var total time.Duration

	for _, d := range tail {
		total += d
		result.Slowest = max(result.Slowest, d)
	}

	result.Averaged = len(tail)
	result.Average = total / time.Duration(len(tail))

	return result, nil
}

func benchRecord(level logs.Level, seq int, start time.Time) logs.Record {
	return logs.Record{
		Level:    level,
		Message:  fmt.Sprintf("bench record %d", seq),
		Category: benchCategories[seq%len(benchCategories)],
		Time:     start.Add(time.Duration(seq) * time.Microsecond),
	}
}

// terminalWidth returns the width of out when it is a terminal
func terminalWidth(out io.Writer) int {
	f, ok := out.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return benchFallbackWidth
	}

	width, _, err := term.GetSize(f.Fd())
	if err != nil || width <= 0 {
		return benchFallbackWidth
	}

	return width
}
