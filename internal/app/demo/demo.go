package demo

//go:generate mockgen -source=demo.go -destination=demo_mock.go -package=demo

import (
	"context"
	"math/rand/v2"
	"time"

	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// Components that emit demo records; the last one is on the default blacklist
var Components = []string{"http::server", "db::pool", "scheduler", "auth", "tracing::span"}

var messages = map[string][]string{
	"http::server":  {"GET /api/items 200", "POST /api/items 201", "GET /healthz 200", "request timed out", "upstream returned 502"},
	"db::pool":      {"acquired connection", "released connection", "pool exhausted, waiting", "slow query detected", "connection reset by peer"},
	"scheduler":     {"job queued", "job started", "job finished", "job retry scheduled", "job failed permanently"},
	"auth":          {"token issued", "token refreshed", "invalid signature", "session expired", "login rate limited"},
	"tracing::span": {"enter", "exit", "close"},
}

// Producer emits synthetic records through the application logger
type Producer interface {
	Run(ctx context.Context) error
}

type producer struct {
	rate    int
	burst   int
	loggers map[string]logger.Logger
	rand    *rand.Rand
}

// NewProducer creates a producer using the demo rate and burst settings
func NewProducer(cfg *config.Config, log logger.Logger) Producer {
	loggers := make(map[string]logger.Logger, len(Components))
	for _, name := range Components {
		loggers[name] = log.WithComponent(name)
	}

	return &producer{
		rate:    cfg.Demo.Rate,
		burst:   cfg.Demo.Burst,
		loggers: loggers,
		rand:    rand.New(rand.NewPCG(1, 2)), //nolint:gosec // demo data only
	}
}

// Run writes the initial burst, then Rate records per second until ctx is done
func (p *producer) Run(ctx context.Context) error {
	for i := 0; i < p.burst; i++ {
		p.emit(i)
	}

	if p.rate <= 0 {
		<-ctx.Done()
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(p.rate))
	defer ticker.Stop()

	for seq := p.burst; ; seq++ {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.emit(seq)
		}
	}
}

// emit writes one record from a random component at a weighted random level
func (p *producer) emit(seq int) {
	name := Components[p.rand.IntN(len(Components))]
	options := messages[name]
	log := p.loggers[name]
	message := options[p.rand.IntN(len(options))]

	switch roll := p.rand.IntN(100); {
	case roll < 5:
		log.Error().Int("seq", seq).Msg(message)
	case roll < 15:
		log.Warn().Int("seq", seq).Msg(message)
	case roll < 55:
		log.Info().Int("seq", seq).Msg(message)
	case roll < 85:
		log.Debug().Int("seq", seq).Msg(message)
	default:
		log.Trace().Int("seq", seq).Msg(message)
	}
}
