package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync"

	"github.com/vitalwave/mediguide/internal/chat"
	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/database"
	"github.com/vitalwave/mediguide/internal/documents"
	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/gate"
	"github.com/vitalwave/mediguide/internal/identity"
	"github.com/vitalwave/mediguide/internal/logger"
	"github.com/vitalwave/mediguide/internal/ocr"
	"github.com/vitalwave/mediguide/internal/ratelimit"
	"github.com/vitalwave/mediguide/internal/routes"
	"github.com/vitalwave/mediguide/internal/server"
	"github.com/vitalwave/mediguide/internal/storage"
	"github.com/vitalwave/mediguide/internal/vocab"
)

// Service coordinates the lifecycle of all subsystems.
type Service struct {
	ctx        context.Context
	cancel     context.CancelFunc
	shutdownWg sync.WaitGroup

	logger     logger.System
	db         *sql.DB
	vocabulary *vocab.System
	server     server.System
}

// NewService creates and initializes the service with all subsystems.
func NewService(cfg *config.Config) (*Service, error) {
	ctx, cancel := context.WithCancel(context.Background())

	loggerSys := logger.New(&cfg.Logging)
	log := loggerSys.Logger()

	db, err := database.Open(&cfg.Database)
	if err != nil {
		cancel()
		return nil, err
	}

	if err := database.Migrate(db, log); err != nil {
		cancel()
		db.Close()
		return nil, err
	}

	vocabulary, err := vocab.New(&cfg.Vocabulary, log)
	if err != nil {
		cancel()
		db.Close()
		return nil, err
	}

	blobs, err := storage.New(&cfg.Uploads, log)
	if err != nil {
		cancel()
		db.Close()
		return nil, err
	}

	enricher := buildEnricher(ctx, cfg, log)
	resolver := identity.NewHeaderResolver()
	topicGate := gate.New(vocabulary)

	documentSys := documents.New(
		documents.NewStore(db, log, cfg.Pagination),
		blobs,
		ocr.NewPlain(),
		vocabulary,
		enricher,
		log,
		&cfg.Uploads,
		&cfg.Enrichment,
	)

	limiter := ratelimit.New(ratelimit.NewMemoryStore(), cfg.Chat.MinIntervalDuration())

	chatSys := chat.New(
		chat.NewStore(db, log, cfg.Pagination),
		documentSys,
		topicGate,
		chat.NewAssembler(&cfg.Chat),
		limiter,
		enricher,
		log,
		&cfg.Chat,
	)

	routeSys := routes.New(log)
	registerRoutes(routeSys,
		documents.NewHandler(documentSys, resolver, log, cfg.Pagination, cfg.Uploads.MaxUploadSizeBytes()),
		chat.NewHandler(chatSys, resolver, log, cfg.Pagination),
	)

	middlewareSys := buildMiddleware(loggerSys, cfg)
	handler := middlewareSys.Apply(routeSys.Build())

	serverSys := server.New(&cfg.Server, handler, log)

	return &Service{
		ctx:        ctx,
		cancel:     cancel,
		logger:     loggerSys,
		db:         db,
		vocabulary: vocabulary,
		server:     serverSys,
	}, nil
}

// buildEnricher selects the enrichment client. Without an API key, or if
// client construction fails, ingestion degrades to heuristics and chat
// surfaces service-unavailable.
func buildEnricher(ctx context.Context, cfg *config.Config, log *slog.Logger) enrich.Client {
	if cfg.Enrichment.APIKey == "" {
		log.Warn("no enrichment api key configured, running heuristic-only")
		return enrich.NewUnavailableClient()
	}

	client, err := enrich.NewGeminiClient(ctx, &cfg.Enrichment)
	if err != nil {
		log.Error("enrichment client init failed, running heuristic-only", "error", err)
		return enrich.NewUnavailableClient()
	}
	return client
}

// Start begins all subsystems and returns when they are ready.
func (s *Service) Start() error {
	s.logger.Logger().Info("starting service")

	if err := s.vocabulary.Watch(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("vocabulary watch failed: %w", err)
	}

	if err := s.server.Start(s.ctx, &s.shutdownWg); err != nil {
		return fmt.Errorf("server start failed: %w", err)
	}

	s.logger.Logger().Info("service started")
	return nil
}

// Shutdown gracefully stops all subsystems within the provided context deadline.
func (s *Service) Shutdown(ctx context.Context) error {
	s.logger.Logger().Info("initiating shutdown")

	s.cancel()

	done := make(chan struct{})
	go func() {
		s.shutdownWg.Wait()
		close(done)
	}()

	select {
	case <-done:
		if err := s.db.Close(); err != nil {
			s.logger.Logger().Error("database close failed", "error", err)
		}
		s.logger.Logger().Info("all subsystems shut down successfully")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
