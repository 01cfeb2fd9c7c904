package enrich

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/vitalwave/mediguide/internal/extract"
)

// Payload is the JSON shape expected back from document analysis. Nil
// slices and empty strings mark fields the response did not provide.
type Payload struct {
	DocType         string             `json:"doc_type"`
	SummaryShort    []string           `json:"summary_short"`
	SummaryDetailed string             `json:"summary_detailed"`
	Medicines       []extract.Medicine `json:"medicines"`
	LabValues       []extract.LabValue `json:"lab_values"`
	Suggestions     []string           `json:"suggestions"`
	PatientName     string             `json:"patient_name"`
	DoctorName      string             `json:"doctor_name"`
	Date            string             `json:"date"`
}

var jsonBlockRegex = regexp.MustCompile(`(?s)` + "```" + `(?:json)?\s*\n?(.*?)\n?` + "```")

// Parse extracts the JSON payload from raw response text, tolerating
// Markdown code fences the model may emit despite instructions.
func Parse(raw string) (*Payload, error) {
	candidate := strings.TrimSpace(raw)
	if match := jsonBlockRegex.FindStringSubmatch(candidate); match != nil {
		candidate = strings.TrimSpace(match[1])
	}

	var payload Payload
	if err := json.Unmarshal([]byte(candidate), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return &payload, nil
}
