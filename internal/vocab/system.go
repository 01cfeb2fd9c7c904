package vocab

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"

	"github.com/vitalwave/mediguide/internal/config"
)

// System serves the active vocabulary. Snapshots are immutable; Reload
// swaps in a fresh vocabulary atomically so readers never see a partial
// update.
type System struct {
	cfg     *config.VocabularyConfig
	logger  *slog.Logger
	current atomic.Pointer[Config]
}

// New builds a vocabulary system from configuration. Without a configured
// path the compiled-in defaults are used.
func New(cfg *config.VocabularyConfig, logger *slog.Logger) (*System, error) {
	s := &System{
		cfg:    cfg,
		logger: logger,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Snapshot returns the active vocabulary.
func (s *System) Snapshot() *Config {
	return s.current.Load()
}

// Reload loads the vocabulary from the configured path, or the defaults
// when no path is set, and swaps it in.
func (s *System) Reload() error {
	if s.cfg.Path == "" {
		defaults := Defaults()
		defaults.normalize()
		s.current.Store(defaults)
		return nil
	}

	loaded, err := Load(s.cfg.Path)
	if err != nil {
		return err
	}

	s.current.Store(loaded)
	s.logger.Info("vocabulary loaded", "path", s.cfg.Path)
	return nil
}

// Watch reloads the vocabulary whenever the configured file changes.
// It is a no-op when watching is disabled or no path is configured.
func (s *System) Watch(ctx context.Context, wg *sync.WaitGroup) error {
	if !s.cfg.Watch || s.cfg.Path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("vocabulary watcher: %w", err)
	}

	// Watch the parent directory so atomic rename-replace writes are seen.
	if err := watcher.Add(filepath.Dir(s.cfg.Path)); err != nil {
		watcher.Close()
		return fmt.Errorf("vocabulary watcher: %w", err)
	}

	target := filepath.Clean(s.cfg.Path)

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				if err := s.Reload(); err != nil {
					s.logger.Error("vocabulary reload failed", "error", err)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Error("vocabulary watcher error", "error", err)
			}
		}
	}()

	return nil
}
