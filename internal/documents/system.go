package documents

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/extract"
	applog "github.com/vitalwave/mediguide/internal/logger"
	"github.com/vitalwave/mediguide/internal/ocr"
	"github.com/vitalwave/mediguide/internal/storage"
	"github.com/vitalwave/mediguide/internal/vocab"
	"github.com/vitalwave/mediguide/pkg/pagination"
)

var imageMIMETypes = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

// System orchestrates document ingestion and retrieval. Ingestion never
// fails on degraded extraction or enrichment; a Document record is always
// produced.
type System struct {
	store     Store
	blobs     storage.System
	extractor ocr.System
	vocabLoad func() *vocab.Config
	enricher  enrich.Client
	logger    *slog.Logger
	uploads   *config.UploadsConfig
	excerpt   int
}

// New wires the document system from its collaborators.
func New(
	store Store,
	blobs storage.System,
	extractor ocr.System,
	vocabulary *vocab.System,
	enricher enrich.Client,
	logger *slog.Logger,
	uploads *config.UploadsConfig,
	enrichment *config.EnrichmentConfig,
) *System {
	return &System{
		store:     store,
		blobs:     blobs,
		extractor: extractor,
		vocabLoad: vocabulary.Snapshot,
		enricher:  enricher,
		logger:    applog.ForSystem(logger, "documents"),
		uploads:   uploads,
		excerpt:   enrichment.ExcerptLimit,
	}
}

// IngestFile stores the uploaded file, runs the extraction baseline and
// best-effort enrichment, and persists the resulting document.
func (s *System) IngestFile(ctx context.Context, owner uuid.UUID, cmd IngestFileCommand) (*Document, error) {
	if cmd.Filename == "" || len(cmd.Data) == 0 {
		return nil, ErrInvalidFile
	}

	id := uuid.New()
	ext := strings.ToLower(filepath.Ext(cmd.Filename))

	storageKey := fmt.Sprintf("uploads/%s%s", id, ext)
	if err := s.blobs.Store(ctx, storageKey, cmd.Data); err != nil {
		return nil, fmt.Errorf("store file: %w", err)
	}

	text, err := s.extractor.ExtractText(ctx, cmd.Data, ext)
	if err != nil {
		if !errors.Is(err, ocr.ErrUnsupported) {
			s.logger.Warn("text extraction degraded", "id", id, "error", err)
		}
		text = ""
	}
	text = capText(text, s.uploads.TextCap)

	var image *enrich.Image
	if mime, ok := imageMIMETypes[ext]; ok {
		image = &enrich.Image{MIMEType: mime, Data: cmd.Data}
	}

	outcome := s.enrichDocument(ctx, id, text, cmd.Filename, image)

	doc := &Document{
		ID:              id,
		OwnerID:         owner,
		Filename:        cmd.Filename,
		FileKind:        ext,
		DocType:         outcome.DocType,
		StorageKey:      &storageKey,
		PageCount:       cmd.PageCount,
		ExtractedText:   text,
		Medicines:       outcome.Medicines,
		LabValues:       outcome.LabValues,
		SummaryShort:    outcome.SummaryShort,
		SummaryDetailed: outcome.SummaryDetailed,
		Suggestions:     outcome.Suggestions,
	}

	created, err := s.store.Insert(ctx, doc)
	if err != nil {
		if delErr := s.blobs.Delete(ctx, storageKey); delErr != nil {
			s.logger.Error("cleanup failed after db error", "storage_key", storageKey, "error", delErr)
		}
		return nil, err
	}
	return created, nil
}

// IngestText runs the baseline and best-effort enrichment over pasted
// text and persists the resulting document.
func (s *System) IngestText(ctx context.Context, owner uuid.UUID, cmd IngestTextCommand) (*Document, error) {
	if strings.TrimSpace(cmd.Text) == "" {
		return nil, ErrEmptyText
	}

	id := uuid.New()
	text := capText(cmd.Text, s.uploads.TextCap)

	outcome := s.enrichDocument(ctx, id, text, "", nil)

	doc := &Document{
		ID:              id,
		OwnerID:         owner,
		Filename:        "text_input.txt",
		FileKind:        ".txt",
		DocType:         outcome.DocType,
		ExtractedText:   text,
		Medicines:       outcome.Medicines,
		LabValues:       outcome.LabValues,
		SummaryShort:    outcome.SummaryShort,
		SummaryDetailed: outcome.SummaryDetailed,
		Suggestions:     outcome.Suggestions,
	}

	return s.store.Insert(ctx, doc)
}

// IngestLink saves an external URL as a reference document. Links are
// never extracted or enriched.
func (s *System) IngestLink(ctx context.Context, owner uuid.UUID, cmd IngestLinkCommand) (*Document, error) {
	parsed, err := url.Parse(cmd.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, ErrInvalidURL
	}

	doc := &Document{
		ID:              uuid.New(),
		OwnerID:         owner,
		Filename:        cmd.URL,
		FileKind:        FileKindLink,
		DocType:         classify.DocTypeLink,
		Medicines:       []extract.Medicine{},
		LabValues:       []extract.LabValue{},
		SummaryShort:    []string{"Link saved for reference"},
		SummaryDetailed: fmt.Sprintf("External link: %s", cmd.URL),
		Suggestions:     []string{},
	}

	return s.store.Insert(ctx, doc)
}

// List returns the owner's documents, newest first.
func (s *System) List(ctx context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[Document], error) {
	return s.store.List(ctx, owner, page)
}

// Find returns the owner's document by id.
func (s *System) Find(ctx context.Context, owner, id uuid.UUID) (*Document, error) {
	return s.store.Find(ctx, owner, id)
}

// Latest returns the owner's most recent document, or ErrNotFound when
// the owner has none.
func (s *System) Latest(ctx context.Context, owner uuid.UUID) (*Document, error) {
	return s.store.Latest(ctx, owner)
}

// HasContent reports whether the owner has at least one document.
func (s *System) HasContent(ctx context.Context, owner uuid.UUID) (bool, error) {
	return s.store.HasContent(ctx, owner)
}

// Delete removes the owner's document and its stored file.
func (s *System) Delete(ctx context.Context, owner, id uuid.UUID) error {
	doc, err := s.store.Find(ctx, owner, id)
	if err != nil {
		return err
	}

	if err := s.store.Delete(ctx, owner, id); err != nil {
		return err
	}

	if doc.StorageKey != nil {
		if err := s.blobs.Delete(ctx, *doc.StorageKey); err != nil {
			s.logger.Error("storage cleanup failed", "storage_key", *doc.StorageKey, "error", err)
		}
	}
	return nil
}

// enrichDocument runs the heuristic baseline, layers enrichment on top
// when available, and merges the two. Enrichment failures degrade to the
// baseline; they never fail ingestion.
func (s *System) enrichDocument(ctx context.Context, id uuid.UUID, text, filename string, image *enrich.Image) enrich.Outcome {
	vocabulary := s.vocabLoad()

	baseline := enrich.Baseline{
		DocType:   classify.Classify(&vocabulary.Classifier, text, filename),
		Medicines: extract.Medicines(text),
		LabValues: extract.LabValues(text),
	}

	raw, err := s.enricher.Generate(ctx, enrich.DocumentInstruction, enrich.DocumentPrompt(text, s.excerpt), image)
	if err != nil {
		s.logger.Warn("enrichment unavailable, using heuristics", "id", id, "error", err)
		return enrich.Merge(nil, baseline)
	}

	payload, err := enrich.Parse(raw)
	if err != nil {
		s.logger.Warn("enrichment malformed, using heuristics", "id", id, "error", err)
		return enrich.Merge(nil, baseline)
	}

	return enrich.Merge(payload, baseline)
}

// capText truncates text to at most limit bytes, cutting only on a rune
// boundary so capped text stays valid UTF-8.
func capText(text string, limit int) string {
	if limit <= 0 || len(text) <= limit {
		return text
	}
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit]
}
