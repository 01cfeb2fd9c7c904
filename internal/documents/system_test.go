package documents_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/documents"
	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/ocr"
	"github.com/vitalwave/mediguide/internal/vocab"
	"github.com/vitalwave/mediguide/pkg/pagination"
)

type fakeStore struct {
	docs map[uuid.UUID]documents.Document
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: make(map[uuid.UUID]documents.Document)}
}

func (f *fakeStore) Insert(_ context.Context, doc *documents.Document) (*documents.Document, error) {
	stored := *doc
	stored.CreatedAt = time.Now()
	f.docs[stored.ID] = stored
	return &stored, nil
}

func (f *fakeStore) List(_ context.Context, owner uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[documents.Document], error) {
	page.Normalize(pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})

	var owned []documents.Document
	for _, doc := range f.docs {
		if doc.OwnerID == owner {
			owned = append(owned, doc)
		}
	}
	sort.Slice(owned, func(i, j int) bool { return owned[i].CreatedAt.After(owned[j].CreatedAt) })

	result := pagination.NewPageResult(owned, len(owned), page.Page, page.PageSize)
	return &result, nil
}

func (f *fakeStore) Find(_ context.Context, owner, id uuid.UUID) (*documents.Document, error) {
	doc, ok := f.docs[id]
	if !ok || doc.OwnerID != owner {
		return nil, documents.ErrNotFound
	}
	return &doc, nil
}

func (f *fakeStore) Latest(_ context.Context, owner uuid.UUID) (*documents.Document, error) {
	var latest *documents.Document
	for id := range f.docs {
		doc := f.docs[id]
		if doc.OwnerID != owner {
			continue
		}
		if latest == nil || doc.CreatedAt.After(latest.CreatedAt) {
			latest = &doc
		}
	}
	if latest == nil {
		return nil, documents.ErrNotFound
	}
	return latest, nil
}

func (f *fakeStore) HasContent(_ context.Context, owner uuid.UUID) (bool, error) {
	for _, doc := range f.docs {
		if doc.OwnerID == owner {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Delete(_ context.Context, owner, id uuid.UUID) error {
	doc, ok := f.docs[id]
	if !ok || doc.OwnerID != owner {
		return documents.ErrNotFound
	}
	delete(f.docs, doc.ID)
	return nil
}

type fakeBlobs struct {
	blobs map[string][]byte
}

func newFakeBlobs() *fakeBlobs {
	return &fakeBlobs{blobs: make(map[string][]byte)}
}

func (f *fakeBlobs) Store(_ context.Context, key string, data []byte) error {
	f.blobs[key] = data
	return nil
}

func (f *fakeBlobs) Retrieve(_ context.Context, key string) ([]byte, error) {
	data, ok := f.blobs[key]
	if !ok {
		return nil, errors.New("not found")
	}
	return data, nil
}

func (f *fakeBlobs) Delete(_ context.Context, key string) error {
	delete(f.blobs, key)
	return nil
}

type stubEnricher struct {
	response string
	err      error
	calls    int
}

func (s *stubEnricher) Generate(_ context.Context, _, _ string, _ *enrich.Image) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newSystem(t *testing.T, store documents.Store, blobs *fakeBlobs, enricher enrich.Client) *documents.System {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	vocabulary, err := vocab.New(&config.VocabularyConfig{}, log)
	if err != nil {
		t.Fatalf("vocab.New() error = %v", err)
	}

	uploads := &config.UploadsConfig{TextCap: 5000}
	enrichment := &config.EnrichmentConfig{ExcerptLimit: 2000}

	return documents.New(store, blobs, ocr.NewPlain(), vocabulary, enricher, log, uploads, enrichment)
}

func TestIngestText_EnrichmentUnavailableFallsBackToHeuristics(t *testing.T) {
	store := newFakeStore()
	sys := newSystem(t, store, newFakeBlobs(), enrich.NewUnavailableClient())
	owner := uuid.New()

	doc, err := sys.IngestText(context.Background(), owner, documents.IngestTextCommand{
		Text: "Rx: Tab Metformin 500mg, Glucose 140 mg/dL",
	})
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}

	if doc.DocType != classify.DocTypePrescription {
		t.Errorf("DocType = %q, want prescription", doc.DocType)
	}

	foundMedicine := false
	for _, m := range doc.Medicines {
		if strings.Contains(m.Name, "Metformin") {
			foundMedicine = true
		}
	}
	if !foundMedicine {
		t.Errorf("Medicines = %v, want entry containing Metformin", doc.Medicines)
	}

	foundLab := false
	for _, lv := range doc.LabValues {
		if lv.Name == "Glucose" && lv.Value == "140" && lv.Unit == "mg/dL" {
			foundLab = true
		}
	}
	if !foundLab {
		t.Errorf("LabValues = %v, want {Glucose 140 mg/dL}", doc.LabValues)
	}

	if doc.SummaryShort == nil || doc.Suggestions == nil {
		t.Error("summary fields must never be nil")
	}
}

func TestIngestText_EnrichmentOverrides(t *testing.T) {
	store := newFakeStore()
	enricher := &stubEnricher{response: `{"doc_type": "lab_report", "summary_detailed": "Routine panel, all normal."}`}
	sys := newSystem(t, store, newFakeBlobs(), enricher)

	doc, err := sys.IngestText(context.Background(), uuid.New(), documents.IngestTextCommand{
		Text: "Rx: Tab Metformin 500mg",
	})
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}

	if doc.DocType != classify.DocTypeLabReport {
		t.Errorf("DocType = %q, want enrichment override lab_report", doc.DocType)
	}
	if doc.SummaryDetailed != "Routine panel, all normal." {
		t.Errorf("SummaryDetailed = %q, want enrichment value", doc.SummaryDetailed)
	}
	if len(doc.Medicines) == 0 {
		t.Error("Medicines empty, want heuristic baseline preserved")
	}
}

func TestIngestText_MalformedEnrichmentFallsBack(t *testing.T) {
	store := newFakeStore()
	enricher := &stubEnricher{response: "I could not produce JSON, sorry."}
	sys := newSystem(t, store, newFakeBlobs(), enricher)

	doc, err := sys.IngestText(context.Background(), uuid.New(), documents.IngestTextCommand{
		Text: "Rx: Tab Metformin 500mg",
	})
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}

	if doc.DocType != classify.DocTypePrescription {
		t.Errorf("DocType = %q, want heuristic prescription", doc.DocType)
	}
}

func TestIngestText_MultibyteTextCappedOnRuneBoundary(t *testing.T) {
	store := newFakeStore()
	sys := newSystem(t, store, newFakeBlobs(), enrich.NewUnavailableClient())

	// 2000 Devanagari runes are 6000 bytes, beyond the 5000-byte cap.
	text := strings.Repeat("म", 2000)

	doc, err := sys.IngestText(context.Background(), uuid.New(), documents.IngestTextCommand{Text: text})
	if err != nil {
		t.Fatalf("IngestText() error = %v", err)
	}

	if !utf8.ValidString(doc.ExtractedText) {
		t.Error("ExtractedText is invalid UTF-8 after cap")
	}
	if len(doc.ExtractedText) == 0 || len(doc.ExtractedText) > 5000 {
		t.Errorf("ExtractedText length = %d, want capped within (0, 5000]", len(doc.ExtractedText))
	}
}

func TestIngestText_Empty(t *testing.T) {
	sys := newSystem(t, newFakeStore(), newFakeBlobs(), enrich.NewUnavailableClient())

	_, err := sys.IngestText(context.Background(), uuid.New(), documents.IngestTextCommand{Text: "   "})
	if !errors.Is(err, documents.ErrEmptyText) {
		t.Errorf("IngestText() error = %v, want ErrEmptyText", err)
	}
}

func TestIngestFile_StoresBlobAndExtractsText(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	sys := newSystem(t, store, blobs, enrich.NewUnavailableClient())

	doc, err := sys.IngestFile(context.Background(), uuid.New(), documents.IngestFileCommand{
		Filename: "prescription.txt",
		Data:     []byte("Tab. Paracetamol 500 mg twice daily"),
	})
	if err != nil {
		t.Fatalf("IngestFile() error = %v", err)
	}

	if doc.DocType != classify.DocTypePrescription {
		t.Errorf("DocType = %q, want prescription", doc.DocType)
	}
	if !strings.Contains(doc.ExtractedText, "Paracetamol") {
		t.Errorf("ExtractedText = %q, want original content", doc.ExtractedText)
	}
	if doc.StorageKey == nil {
		t.Fatal("StorageKey = nil, want stored blob key")
	}
	if _, ok := blobs.blobs[*doc.StorageKey]; !ok {
		t.Errorf("blob missing under key %q", *doc.StorageKey)
	}
}

func TestIngestFile_UnsupportedTypeDegrades(t *testing.T) {
	store := newFakeStore()
	sys := newSystem(t, store, newFakeBlobs(), enrich.NewUnavailableClient())

	doc, err := sys.IngestFile(context.Background(), uuid.New(), documents.IngestFileCommand{
		Filename: "photo.jpg",
		Data:     []byte{0xff, 0xd8, 0xff},
	})
	if err != nil {
		t.Fatalf("IngestFile() error = %v, degraded extraction must not fail ingestion", err)
	}

	if doc.ExtractedText != "" {
		t.Errorf("ExtractedText = %q, want empty", doc.ExtractedText)
	}
	if doc.DocType != classify.DocTypeUnknown {
		t.Errorf("DocType = %q, want unknown", doc.DocType)
	}
}

func TestIngestFile_Invalid(t *testing.T) {
	sys := newSystem(t, newFakeStore(), newFakeBlobs(), enrich.NewUnavailableClient())

	_, err := sys.IngestFile(context.Background(), uuid.New(), documents.IngestFileCommand{})
	if !errors.Is(err, documents.ErrInvalidFile) {
		t.Errorf("IngestFile() error = %v, want ErrInvalidFile", err)
	}
}

func TestIngestLink(t *testing.T) {
	sys := newSystem(t, newFakeStore(), newFakeBlobs(), enrich.NewUnavailableClient())
	owner := uuid.New()

	doc, err := sys.IngestLink(context.Background(), owner, documents.IngestLinkCommand{
		URL: "https://example.org/report",
	})
	if err != nil {
		t.Fatalf("IngestLink() error = %v", err)
	}

	if doc.DocType != classify.DocTypeLink {
		t.Errorf("DocType = %q, want link", doc.DocType)
	}
	if doc.FileKind != documents.FileKindLink {
		t.Errorf("FileKind = %q, want link", doc.FileKind)
	}

	_, err = sys.IngestLink(context.Background(), owner, documents.IngestLinkCommand{URL: "not a url"})
	if !errors.Is(err, documents.ErrInvalidURL) {
		t.Errorf("IngestLink() error = %v, want ErrInvalidURL", err)
	}
}

func TestFind_OwnershipScoped(t *testing.T) {
	store := newFakeStore()
	sys := newSystem(t, store, newFakeBlobs(), enrich.NewUnavailableClient())
	owner := uuid.New()

	doc, err := sys.IngestText(context.Background(), owner, documents.IngestTextCommand{Text: "Tab. Dolo 650 mg"})
	if err != nil {
		t.Fatal(err)
	}

	found, err := sys.Find(context.Background(), owner, doc.ID)
	if err != nil {
		t.Fatalf("Find() by owner error = %v", err)
	}
	if found.ID != doc.ID {
		t.Errorf("Find() = %v, want %v", found.ID, doc.ID)
	}

	if _, err := sys.Find(context.Background(), uuid.New(), doc.ID); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Find() by other owner error = %v, want ErrNotFound", err)
	}
}

func TestHasContent(t *testing.T) {
	store := newFakeStore()
	sys := newSystem(t, store, newFakeBlobs(), enrich.NewUnavailableClient())
	owner := uuid.New()

	has, err := sys.HasContent(context.Background(), owner)
	if err != nil {
		t.Fatalf("HasContent() error = %v", err)
	}
	if has {
		t.Error("HasContent() = true before any ingest")
	}

	doc, err := sys.IngestText(context.Background(), owner, documents.IngestTextCommand{Text: "Tab. Dolo 650 mg"})
	if err != nil {
		t.Fatal(err)
	}

	has, err = sys.HasContent(context.Background(), owner)
	if err != nil {
		t.Fatalf("HasContent() error = %v", err)
	}
	if !has {
		t.Error("HasContent() = false after ingest")
	}

	// Other owners see their own state only.
	has, err = sys.HasContent(context.Background(), uuid.New())
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("HasContent() = true for owner with no documents")
	}

	if err := sys.Delete(context.Background(), owner, doc.ID); err != nil {
		t.Fatal(err)
	}
	has, err = sys.HasContent(context.Background(), owner)
	if err != nil {
		t.Fatal(err)
	}
	if has {
		t.Error("HasContent() = true after deleting the only document")
	}
}

func TestDelete_RemovesBlob(t *testing.T) {
	store := newFakeStore()
	blobs := newFakeBlobs()
	sys := newSystem(t, store, blobs, enrich.NewUnavailableClient())
	owner := uuid.New()

	doc, err := sys.IngestFile(context.Background(), owner, documents.IngestFileCommand{
		Filename: "notes.txt",
		Data:     []byte("wound care instructions"),
	})
	if err != nil {
		t.Fatal(err)
	}

	if err := sys.Delete(context.Background(), owner, doc.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	if _, ok := blobs.blobs[*doc.StorageKey]; ok {
		t.Error("blob still present after delete")
	}
	if _, err := sys.Find(context.Background(), owner, doc.ID); !errors.Is(err, documents.ErrNotFound) {
		t.Errorf("Find() after delete error = %v, want ErrNotFound", err)
	}
}
