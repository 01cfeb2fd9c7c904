package enrich

import (
	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/extract"
)

// FallbackSummaryDetailed is the neutral detailed summary used when no
// enrichment summary is available.
const FallbackSummaryDetailed = "Content has been saved for analysis."

// Baseline carries the heuristic classifier and extractor outputs that
// ground the merge when enrichment degrades.
type Baseline struct {
	DocType   classify.DocType
	Medicines []extract.Medicine
	LabValues []extract.LabValue
}

// Outcome is the final set of enriched document fields. Every field is
// always populated, from the payload or from the baseline.
type Outcome struct {
	DocType         classify.DocType
	SummaryShort    []string
	SummaryDetailed string
	Medicines       []extract.Medicine
	LabValues       []extract.LabValue
	Suggestions     []string
}

// Merge reconciles an enrichment payload with the heuristic baseline.
// Payload fields override the baseline only when present; a nil payload
// yields the baseline with neutral summary placeholders.
func Merge(payload *Payload, baseline Baseline) Outcome {
	outcome := Outcome{
		DocType:         baseline.DocType,
		SummaryShort:    []string{},
		SummaryDetailed: FallbackSummaryDetailed,
		Medicines:       baseline.Medicines,
		LabValues:       baseline.LabValues,
		Suggestions:     []string{},
	}

	if payload == nil {
		return outcome
	}

	if docType, ok := normalizeDocType(payload.DocType); ok {
		outcome.DocType = docType
	}
	if len(payload.SummaryShort) > 0 {
		outcome.SummaryShort = payload.SummaryShort
	}
	if payload.SummaryDetailed != "" {
		outcome.SummaryDetailed = payload.SummaryDetailed
	}
	if len(payload.Medicines) > 0 {
		outcome.Medicines = payload.Medicines
	}
	if len(payload.LabValues) > 0 {
		outcome.LabValues = payload.LabValues
	}
	if len(payload.Suggestions) > 0 {
		outcome.Suggestions = payload.Suggestions
	}

	return outcome
}

// normalizeDocType maps the enrichment contract's doc_type values onto
// the classifier's closed set. Unrecognized values are rejected so the
// baseline classification survives.
func normalizeDocType(value string) (classify.DocType, bool) {
	switch value {
	case "discharge_summary":
		return classify.DocTypeDischarge, true
	case "":
		return classify.DocTypeUnknown, false
	}

	docType := classify.DocType(value)
	if docType.Valid() {
		return docType, true
	}
	return classify.DocTypeUnknown, false
}
