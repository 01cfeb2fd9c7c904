// Package server provides HTTP server lifecycle management with graceful shutdown.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/vitalwave/mediguide/internal/config"
)

// System manages the HTTP server lifecycle including startup and shutdown.
type System interface {
	Start(ctx context.Context, wg *sync.WaitGroup) error
}

type server struct {
	http   *http.Server
	logger *slog.Logger
}

// New creates a server system with the specified configuration, handler, and logger.
func New(cfg *config.ServerConfig, handler http.Handler, logger *slog.Logger) System {
	return &server{
		http: &http.Server{
			Addr:         cfg.Addr(),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeoutDuration(),
			WriteTimeout: cfg.WriteTimeoutDuration(),
		},
		logger: logger,
	}
}

// Start begins listening for HTTP requests and shuts the server down when the
// provided context is cancelled. The wait group is released once shutdown completes.
func (s *server) Start(ctx context.Context, wg *sync.WaitGroup) error {
	go func() {
		s.logger.Info("server listening", "addr", s.http.Addr)
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		s.logger.Info("shutting down server")

		if err := s.http.Shutdown(context.Background()); err != nil {
			s.logger.Error("server shutdown error", "error", err)
		} else {
			s.logger.Info("server shutdown complete")
		}
	}()

	return nil
}
