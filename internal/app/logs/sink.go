package logs

//go:generate mockgen -source=sink.go -destination=sink_mock.go -package=logs

import (
	"fmt"
	"time"

	"github.com/gobwas/glob"

	"logdeck/internal/app/errors"
	"logdeck/internal/config"
)

// Sink receives every event from the logging facade
type Sink interface {
	Enabled(level Level, category string) bool
	Emit(level Level, category, message string, ts time.Time)
	Flush()
}

type storeSink struct {
	store     Store
	maxLevel  Level
	showAll   bool
	blacklist []glob.Glob
	timeout   time.Duration
}

// NewSink creates a sink appending into store with the configured level and category filters
func NewSink(cfg *config.Config, store Store) (Sink, error) {
	maxLevel, err := ParseLevel(cfg.Sink.MaxLevel)
	if err != nil {
		return nil, err
	}

	patterns := cfg.Blacklist()
	blacklist := make([]glob.Glob, 0, len(patterns))

	for _, pattern := range patterns {
		g, err := glob.Compile(pattern, ':')
		if err != nil {
			return nil, fmt.Errorf("%w: '%s'", errors.ErrInvalidBlacklistEntry, pattern)
		}

		blacklist = append(blacklist, g)
	}

	return &storeSink{
		store:     store,
		maxLevel:  maxLevel,
		showAll:   cfg.Sink.ShowAllCategories,
		blacklist: blacklist,
		timeout:   cfg.Sink.LockTimeout,
	}, nil
}

// Enabled reports whether an event would be kept, without touching the store lock
func (s *storeSink) Enabled(level Level, category string) bool {
	if !s.maxLevel.Allows(level) {
		return false
	}

	for _, g := range s.blacklist {
		if g.Match(category) {
			return false
		}
	}

	return true
}

// Emit appends the event, counting it as dropped when the store is busy or poisoned
func (s *storeSink) Emit(level Level, category, message string, ts time.Time) {
	if !s.Enabled(level, category) {
		return
	}

	record := Record{
		Level:    level,
		Message:  message,
		Category: category,
		Time:     ts,
	}

	if err := s.store.Append(record, s.showAll, s.timeout); err != nil {
		s.store.AddDropped()
	}
}

// Flush is a no-op, records are visible as soon as Emit returns
func (s *storeSink) Flush() {}
