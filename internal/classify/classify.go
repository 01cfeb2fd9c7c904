// Package classify assigns a document type from keyword heuristics. Rules
// are evaluated in a fixed precedence order and the first match wins.
package classify

import (
	"strings"

	"github.com/vitalwave/mediguide/internal/vocab"
)

// DocType identifies the kind of medical document.
type DocType string

const (
	DocTypePrescription DocType = "prescription"
	DocTypeLabReport    DocType = "lab_report"
	DocTypeXRay         DocType = "xray"
	DocTypeWound        DocType = "wound"
	DocTypeDischarge    DocType = "discharge"
	DocTypeLink         DocType = "link"
	DocTypeUnknown      DocType = "unknown"
)

// String returns the document type as a string.
func (d DocType) String() string {
	return string(d)
}

// Valid reports whether d is a recognized document type.
func (d DocType) Valid() bool {
	switch d {
	case DocTypePrescription, DocTypeLabReport, DocTypeXRay,
		DocTypeWound, DocTypeDischarge, DocTypeLink, DocTypeUnknown:
		return true
	}
	return false
}

// Classify determines the document type from extracted text and the
// original filename. Text rules take precedence over the filename rule;
// no match yields DocTypeUnknown.
func Classify(terms *vocab.ClassifierTerms, text, filename string) DocType {
	textLower := strings.ToLower(text)
	filenameLower := strings.ToLower(filename)

	if containsAny(textLower, terms.Prescription) {
		return DocTypePrescription
	}
	if containsAny(textLower, terms.LabReport) {
		return DocTypeLabReport
	}
	if containsAny(textLower, terms.XRayText) {
		return DocTypeXRay
	}
	if containsAny(filenameLower, terms.XRayFilename) {
		return DocTypeXRay
	}
	if containsAny(textLower, terms.Wound) {
		return DocTypeWound
	}
	if containsAny(textLower, terms.Discharge) {
		return DocTypeDischarge
	}
	return DocTypeUnknown
}

func containsAny(haystack string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(haystack, term) {
			return true
		}
	}
	return false
}
