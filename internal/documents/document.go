// Package documents provides medical document ingestion and management.
// Every ingestion runs the classification and extraction baseline, layers
// best-effort enrichment on top, and always persists a Document record.
package documents

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/extract"
)

// FileKindLink marks documents ingested from an external URL.
const FileKindLink = "link"

// Document represents one ingested medical document with its
// classification and extracted or enriched fields.
type Document struct {
	ID              uuid.UUID          `json:"id"`
	OwnerID         uuid.UUID          `json:"owner_id"`
	Filename        string             `json:"filename"`
	FileKind        string             `json:"file_kind"`
	DocType         classify.DocType   `json:"doc_type"`
	StorageKey      *string            `json:"-"`
	PageCount       *int               `json:"page_count,omitempty"`
	ExtractedText   string             `json:"extracted_text"`
	Medicines       []extract.Medicine `json:"medicines"`
	LabValues       []extract.LabValue `json:"lab_values"`
	SummaryShort    []string           `json:"summary_short"`
	SummaryDetailed string             `json:"summary_detailed"`
	Suggestions     []string           `json:"suggestions"`
	CreatedAt       time.Time          `json:"created_at"`
}

// IngestFileCommand contains the data required to ingest an uploaded file.
// Data holds the raw file bytes to be stored.
type IngestFileCommand struct {
	Filename  string
	Data      []byte
	PageCount *int
}

// IngestTextCommand contains pasted text to ingest as a document.
type IngestTextCommand struct {
	Text string `json:"text"`
}

// IngestLinkCommand contains an external URL to save as a reference.
type IngestLinkCommand struct {
	URL string `json:"url"`
}
