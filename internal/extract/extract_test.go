package extract_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/vitalwave/mediguide/internal/extract"
)

func TestMedicines(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		contains string
	}{
		{"tab prefix", "Tab. Paracetamol 500 mg twice daily", "Paracetamol"},
		{"inj prefix", "Inj Insulin before breakfast", "Insulin"},
		{"syrup prefix", "Syrup Benadryl 10ml at night", "Benadryl"},
		{"name with dosage", "Metformin 500 mg after food", "Metformin"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.Medicines(tt.text)
			if len(got) == 0 {
				t.Fatalf("Medicines(%q) = empty, want entry containing %q", tt.text, tt.contains)
			}

			found := false
			for _, m := range got {
				if strings.Contains(m.Name, tt.contains) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Medicines(%q) = %v, want entry containing %q", tt.text, got, tt.contains)
			}
		})
	}
}

func TestMedicines_NoMatches(t *testing.T) {
	if got := extract.Medicines("no medication content here"); len(got) != 0 {
		t.Errorf("Medicines() = %v, want empty", got)
	}
}

func TestMedicines_CappedAtTen(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 25; i++ {
		fmt.Fprintf(&sb, "Tab. Medicine%d 500 mg\n", i)
	}

	got := extract.Medicines(sb.String())
	if len(got) > 10 {
		t.Errorf("Medicines() returned %d entries, want at most 10", len(got))
	}
}

func TestLabValues(t *testing.T) {
	got := extract.LabValues("Hemoglobin: 13.2 g/dL")
	if len(got) != 1 {
		t.Fatalf("LabValues() = %v, want exactly one entry", got)
	}

	want := extract.LabValue{Name: "Hemoglobin", Value: "13.2", Unit: "g/dL"}
	if got[0] != want {
		t.Errorf("LabValues()[0] = %+v, want %+v", got[0], want)
	}
}

func TestLabValues_Analytes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		want  string
		value string
	}{
		{"glucose", "Glucose 140 mg/dL", "Glucose", "140"},
		{"cholesterol with dash", "Cholesterol - 210 mg/dL", "Cholesterol", "210"},
		{"creatinine", "Creatinine: 1.1 mg/dL", "Creatinine", "1.1"},
		{"wbc without unit", "WBC 8000", "WBC", "8000"},
		{"platelet", "Platelet: 2.5 lakh", "Platelet", "2.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extract.LabValues(tt.text)
			if len(got) == 0 {
				t.Fatalf("LabValues(%q) = empty", tt.text)
			}
			if got[0].Name != tt.want || got[0].Value != tt.value {
				t.Errorf("LabValues(%q)[0] = %+v, want name %q value %q", tt.text, got[0], tt.want, tt.value)
			}
		})
	}
}

func TestLabValues_NoMatches(t *testing.T) {
	if got := extract.LabValues("nothing measurable here"); len(got) != 0 {
		t.Errorf("LabValues() = %v, want empty", got)
	}
}
