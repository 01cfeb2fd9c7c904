package enrich_test

import (
	"testing"

	"github.com/vitalwave/mediguide/internal/classify"
	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/extract"
)

func baseline() enrich.Baseline {
	return enrich.Baseline{
		DocType:   classify.DocTypePrescription,
		Medicines: []extract.Medicine{{Name: "Metformin 500mg"}},
		LabValues: []extract.LabValue{{Name: "Glucose", Value: "140", Unit: "mg/dL"}},
	}
}

func TestMerge_NilPayloadFallsBackToBaseline(t *testing.T) {
	got := enrich.Merge(nil, baseline())

	if got.DocType != classify.DocTypePrescription {
		t.Errorf("DocType = %q, want baseline prescription", got.DocType)
	}
	if len(got.Medicines) != 1 || got.Medicines[0].Name != "Metformin 500mg" {
		t.Errorf("Medicines = %v, want baseline preserved", got.Medicines)
	}
	if len(got.LabValues) != 1 || got.LabValues[0].Name != "Glucose" {
		t.Errorf("LabValues = %v, want baseline preserved", got.LabValues)
	}
	if got.SummaryShort == nil || got.Suggestions == nil {
		t.Error("summary fields must never be nil")
	}
	if got.SummaryDetailed == "" {
		t.Error("SummaryDetailed must fall back to a placeholder")
	}
}

func TestMerge_PayloadOverridesFieldByField(t *testing.T) {
	payload := &enrich.Payload{
		DocType:         "lab_report",
		SummaryShort:    []string{"Elevated glucose"},
		SummaryDetailed: "Glucose is above the normal range.",
		LabValues:       []extract.LabValue{{Name: "Glucose", Value: "140", Unit: "mg/dL", Flag: "High"}},
	}

	got := enrich.Merge(payload, baseline())

	if got.DocType != classify.DocTypeLabReport {
		t.Errorf("DocType = %q, want lab_report", got.DocType)
	}
	if got.SummaryDetailed != "Glucose is above the normal range." {
		t.Errorf("SummaryDetailed = %q, want payload value", got.SummaryDetailed)
	}
	if got.LabValues[0].Flag != "High" {
		t.Errorf("LabValues = %v, want payload values", got.LabValues)
	}

	// Fields absent from the payload keep the baseline.
	if len(got.Medicines) != 1 || got.Medicines[0].Name != "Metformin 500mg" {
		t.Errorf("Medicines = %v, want baseline preserved", got.Medicines)
	}
}

func TestMerge_DocTypeNormalization(t *testing.T) {
	tests := []struct {
		name    string
		docType string
		want    classify.DocType
	}{
		{"discharge summary alias", "discharge_summary", classify.DocTypeDischarge},
		{"known type passes through", "xray", classify.DocTypeXRay},
		{"unrecognized keeps baseline", "invoice", classify.DocTypePrescription},
		{"empty keeps baseline", "", classify.DocTypePrescription},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := enrich.Merge(&enrich.Payload{DocType: tt.docType}, baseline())
			if got.DocType != tt.want {
				t.Errorf("Merge().DocType = %q, want %q", got.DocType, tt.want)
			}
		})
	}
}
