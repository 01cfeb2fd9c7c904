package chat

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/documents"
	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/gate"
	"github.com/vitalwave/mediguide/internal/identity"
	applog "github.com/vitalwave/mediguide/internal/logger"
	"github.com/vitalwave/mediguide/internal/ratelimit"
	"github.com/vitalwave/mediguide/pkg/pagination"
)

// System orchestrates one chat turn: topic gate, context assembly,
// enrichment call, and turn recording.
type System struct {
	store     Store
	docs      *documents.System
	gate      *gate.System
	assembler *Assembler
	limiter   *ratelimit.Limiter
	enricher  enrich.Client
	logger    *slog.Logger
	cfg       *config.ChatConfig
}

// New wires the chat system from its collaborators.
func New(
	store Store,
	docs *documents.System,
	topicGate *gate.System,
	assembler *Assembler,
	limiter *ratelimit.Limiter,
	enricher enrich.Client,
	logger *slog.Logger,
	cfg *config.ChatConfig,
) *System {
	return &System{
		store:     store,
		docs:      docs,
		gate:      topicGate,
		assembler: assembler,
		limiter:   limiter,
		enricher:  enricher,
		logger:    applog.ForSystem(logger, "chat"),
		cfg:       cfg,
	}
}

// Send processes one message. Out-of-domain messages are refused in the
// caller's language without any enrichment call; in-domain messages are
// throttled per user, answered via enrichment, and recorded. A failed
// enrichment call records nothing.
func (s *System) Send(ctx context.Context, principal identity.Principal, cmd SendCommand) (*Reply, error) {
	if strings.TrimSpace(cmd.Message) == "" {
		return nil, ErrEmptyMessage
	}

	if !s.gate.InDomain(cmd.Message) {
		refusal := s.gate.Refusal(principal.Language)

		turn := &Turn{
			ID:        uuid.New(),
			OwnerID:   principal.ID,
			Message:   cmd.Message,
			Response:  refusal,
			IsMedical: false,
		}
		if _, err := s.store.Record(ctx, turn); err != nil {
			return nil, err
		}

		return &Reply{Response: refusal, IsMedical: false}, nil
	}

	if err := s.limiter.Allow(principal.ID.String()); err != nil {
		return nil, err
	}

	doc := s.contextDocument(ctx, principal.ID, cmd.ContextID)

	// Persist the pinned reference only when it resolved to a document
	// the caller can read.
	contextID := cmd.ContextID
	if doc == nil {
		contextID = nil
	}

	history, err := s.store.Recent(ctx, principal.ID, s.cfg.HistoryLimit)
	if err != nil {
		s.logger.Warn("history lookup failed, continuing without", "owner", principal.ID, "error", err)
		history = nil
	}

	instruction := s.assembler.Build(principal, doc, history)

	response, err := s.enricher.Generate(ctx, instruction, cmd.Message, nil)
	if err != nil {
		return nil, err
	}

	turn := &Turn{
		ID:        uuid.New(),
		OwnerID:   principal.ID,
		Message:   cmd.Message,
		Response:  response,
		IsMedical: true,
		ContextID: contextID,
	}
	if _, err := s.store.Record(ctx, turn); err != nil {
		return nil, err
	}

	return &Reply{Response: response, IsMedical: true}, nil
}

// History returns one page of the caller's turns, oldest to newest
// within the page.
func (s *System) History(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Turn], error) {
	return s.store.List(ctx, owner, page)
}

// Delete removes one of the caller's turns.
func (s *System) Delete(ctx context.Context, owner, id uuid.UUID) error {
	return s.store.Delete(ctx, owner, id)
}

// Clear removes all of the caller's turns.
func (s *System) Clear(ctx context.Context, owner uuid.UUID) error {
	return s.store.Clear(ctx, owner)
}

// contextDocument picks the conversation context: the explicitly pinned
// document when given, otherwise the caller's most recent one. Missing
// documents are not an error; the turn proceeds without context.
func (s *System) contextDocument(ctx context.Context, owner uuid.UUID, contextID *uuid.UUID) *documents.Document {
	var (
		doc *documents.Document
		err error
	)

	if contextID != nil {
		doc, err = s.docs.Find(ctx, owner, *contextID)
	} else {
		doc, err = s.docs.Latest(ctx, owner)
	}

	if err != nil {
		if !errors.Is(err, documents.ErrNotFound) {
			s.logger.Warn("context document lookup failed", "owner", owner, "error", err)
		}
		return nil
	}
	return doc
}
