package watcher

//go:generate mockgen -source=watcher.go -destination=watcher_mock.go -package=watcher

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"logdeck/internal/config"
	"logdeck/internal/config/logger"
)

// ReloadFunc receives a freshly loaded and validated configuration
type ReloadFunc func(cfg *config.Config)

// Watcher reloads the configuration file whenever it changes on disk
type Watcher interface {
	Start(ctx context.Context, onReload ReloadFunc) error
	Close()
}

type manager struct {
	mu        sync.Mutex
	path      string
	matcher   Matcher
	fsWatcher *fsnotify.Watcher
	debouncer Debouncer
	log       logger.Logger
	closed    bool
}

// NewWatcher creates a Watcher for the file cfg was loaded from
func NewWatcher(cfg *config.Config, log logger.Logger) (Watcher, error) {
	path, err := filepath.Abs(cfg.Path())
	if err != nil {
		return nil, err
	}

	matcher, err := NewMatcher(filepath.Base(path), config.EnvFile)
	if err != nil {
		return nil, err
	}

	return &manager{
		path:    path,
		matcher: matcher,
		log:     log.WithComponent("WATCHER"),
	}, nil
}

// Start watches the configuration directory until ctx is done. Editors replace files by
// renaming, so the directory is watched rather than the file
func (m *manager) Start(ctx context.Context, onReload ReloadFunc) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed || m.fsWatcher != nil {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	if err := fsw.Add(filepath.Dir(m.path)); err != nil {
		fsw.Close()
		return err
	}

	m.fsWatcher = fsw
	m.debouncer = NewDebouncer(config.WatchDebounce, func(files []string) {
		m.reload(onReload, files)
	})

	m.log.Info().Msgf("Watching %s for changes", m.path)

	go m.processEvents(fsw)

	go func() {
		<-ctx.Done()
		m.Close()
	}()

	return nil
}

// Close stops watching and cancels any pending reload
func (m *manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return
	}

	m.closed = true

	if m.debouncer != nil {
		m.debouncer.Stop()
	}

	if m.fsWatcher != nil {
		m.fsWatcher.Close()
	}
}

// processEvents routes fsnotify events into the debouncer
func (m *manager) processEvents(fsw *fsnotify.Watcher) {
	for {
		select {
		case event, ok := <-fsw.Events:
			if !ok {
				return
			}

			if isRelevantEvent(event) && m.matcher.Match(event.Name) {
				m.debouncer.Trigger(event.Name)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}

			m.log.Error().Err(err).Msg("Watcher error")
		}
	}
}

// reload loads the configuration again, keeping the running one when it is invalid
func (m *manager) reload(onReload ReloadFunc, files []string) {
	cfg, err := config.Load(m.path)
	if err != nil {
		m.log.Warn().Err(err).Msgf("Ignoring invalid configuration change in %v", files)
		return
	}

	m.log.Info().Msgf("Configuration reloaded from %s", m.path)
	onReload(cfg)
}

// isRelevantEvent reports whether an event may have changed file contents
func isRelevantEvent(event fsnotify.Event) bool {
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
