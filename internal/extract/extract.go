// Package extract pulls structured medicine and lab value entries out of
// free-form document text with regular expressions. It is deliberately
// conservative; richer extraction comes from the enrichment layer.
package extract

import (
	"regexp"
	"strings"
)

// Medicine is a medication reference found in document text.
type Medicine struct {
	Name      string `json:"name"`
	Dosage    string `json:"dosage"`
	Frequency string `json:"frequency,omitempty"`
	Duration  string `json:"duration,omitempty"`
}

// LabValue is a single measured analyte found in document text.
type LabValue struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Unit  string `json:"unit"`
	Flag  string `json:"flag,omitempty"`
}

const maxMedicines = 10

var medicineStopwords = map[string]struct{}{
	"the":  {},
	"and":  {},
	"for":  {},
	"with": {},
}

var medicinePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Tab|Cap|Syrup|Inj)\.?\s+([A-Za-z0-9\-]+(?:\s+\d+\s*mg)?)`),
	regexp.MustCompile(`(?i)(\w+)\s+(\d+\s*mg)`),
}

var labPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(Hemoglobin|Hb|HGB)\s*[:\-]?\s*([\d.]+)\s*(g/dL|gm%)?`),
	regexp.MustCompile(`(?i)(Glucose|Blood Sugar|FBS|RBS)\s*[:\-]?\s*([\d.]+)\s*(mg/dL)?`),
	regexp.MustCompile(`(?i)(Cholesterol|Total Cholesterol)\s*[:\-]?\s*([\d.]+)\s*(mg/dL)?`),
	regexp.MustCompile(`(?i)(Creatinine)\s*[:\-]?\s*([\d.]+)\s*(mg/dL)?`),
	regexp.MustCompile(`(?i)(WBC|White Blood Cell)\s*[:\-]?\s*([\d.]+)\s*(/cumm|cells)?`),
	regexp.MustCompile(`(?i)(RBC|Red Blood Cell)\s*[:\-]?\s*([\d.]+)\s*(million)?`),
	regexp.MustCompile(`(?i)(Platelet|PLT)\s*[:\-]?\s*([\d.]+)\s*(/cumm|lakh)?`),
}

// Medicines extracts medication references from text. Results are capped
// at ten entries; very short names and common stopwords are discarded.
func Medicines(text string) []Medicine {
	medicines := []Medicine{}
	for _, pattern := range medicinePatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			name := strings.TrimSpace(strings.Join(match[1:], " "))
			if len(name) <= 3 {
				continue
			}
			if _, stop := medicineStopwords[strings.ToLower(name)]; stop {
				continue
			}
			medicines = append(medicines, Medicine{Name: name})
			if len(medicines) == maxMedicines {
				return medicines
			}
		}
	}
	return medicines
}

// LabValues extracts measured analytes from text. Each pattern captures
// the analyte name, a numeric value, and an optional unit.
func LabValues(text string) []LabValue {
	values := []LabValue{}
	for _, pattern := range labPatterns {
		for _, match := range pattern.FindAllStringSubmatch(text, -1) {
			value := LabValue{
				Name:  match[1],
				Value: match[2],
			}
			if len(match) > 3 {
				value.Unit = match[3]
			}
			values = append(values, value)
		}
	}
	return values
}
