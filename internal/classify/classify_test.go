package classify_test

import (
	"testing"

	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/vocab"
)

func TestClassify(t *testing.T) {
	terms := &vocab.Defaults().Classifier

	tests := []struct {
		name     string
		text     string
		filename string
		want     classify.DocType
	}{
		{"prescription keyword", "Rx: Tab Metformin 500mg", "notes.txt", classify.DocTypePrescription},
		{"lab report keyword", "Hemoglobin: 13.2 g/dL", "report.txt", classify.DocTypeLabReport},
		{"xray in text", "Chest PA view radiograph", "image.jpg", classify.DocTypeXRay},
		{"xray from filename only", "no recognizable content", "chest-xray.jpg", classify.DocTypeXRay},
		{"wound keyword", "deep laceration on left forearm", "photo.png", classify.DocTypeWound},
		{"discharge keyword", "patient was admitted on 12 Jan", "doc.pdf", classify.DocTypeDischarge},
		{"no match", "completely unrelated content", "file.txt", classify.DocTypeUnknown},
		{"empty inputs", "", "", classify.DocTypeUnknown},
		{"case insensitive", "PRESCRIPTION for patient", "a.txt", classify.DocTypePrescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classify.Classify(terms, tt.text, tt.filename)
			if got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassify_RulePrecedence(t *testing.T) {
	terms := &vocab.Defaults().Classifier

	// Text matching both prescription and lab vocabulary resolves to the
	// earlier rule.
	text := "Prescription follow-up after lab report: Hemoglobin 12.1"
	if got := classify.Classify(terms, text, ""); got != classify.DocTypePrescription {
		t.Errorf("Classify() = %q, want %q", got, classify.DocTypePrescription)
	}

	// Earlier text rules outrank the filename rule.
	if got := classify.Classify(terms, "Tab. Paracetamol 500 mg", "xray.png"); got != classify.DocTypePrescription {
		t.Errorf("Classify() = %q, want %q", got, classify.DocTypePrescription)
	}

	// The filename rule outranks later text rules.
	if got := classify.Classify(terms, "wound dressing applied", "scan.png"); got != classify.DocTypeXRay {
		t.Errorf("Classify() = %q, want %q", got, classify.DocTypeXRay)
	}
}

func TestDocType_Valid(t *testing.T) {
	valid := []classify.DocType{
		classify.DocTypePrescription,
		classify.DocTypeLabReport,
		classify.DocTypeXRay,
		classify.DocTypeWound,
		classify.DocTypeDischarge,
		classify.DocTypeLink,
		classify.DocTypeUnknown,
	}
	for _, d := range valid {
		if !d.Valid() {
			t.Errorf("DocType(%q).Valid() = false, want true", d)
		}
	}

	for _, d := range []classify.DocType{"invoice", "other", ""} {
		if d.Valid() {
			t.Errorf("DocType(%q).Valid() = true, want false", d)
		}
	}
}
