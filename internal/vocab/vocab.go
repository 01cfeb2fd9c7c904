// Package vocab holds the keyword vocabulary driving document classification
// and the medical topic gate. The vocabulary ships with compiled-in defaults
// and can be externalized to a TOML file with optional hot reload.
package vocab

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// ClassifierTerms groups the keyword lists consulted by the document
// classifier, one list per rule in precedence order.
type ClassifierTerms struct {
	Prescription  []string `toml:"prescription"`
	LabReport     []string `toml:"lab_report"`
	XRayText      []string `toml:"xray_text"`
	XRayFilename  []string `toml:"xray_filename"`
	Wound         []string `toml:"wound"`
	Discharge     []string `toml:"discharge"`
}

// GateTerms holds the membership list for the medical topic gate.
type GateTerms struct {
	Terms []string `toml:"terms"`
}

// Config is the full keyword vocabulary.
type Config struct {
	Classifier ClassifierTerms   `toml:"classifier"`
	Gate       GateTerms         `toml:"gate"`
	Refusals   map[string]string `toml:"refusals"`
}

// Load reads a vocabulary overlay from path and merges it onto the
// compiled-in defaults. An empty overlay list keeps the default list.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary: %w", err)
	}

	var overlay Config
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse vocabulary: %w", err)
	}

	cfg.merge(&overlay)
	cfg.normalize()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}

	return cfg, nil
}

// Refusal returns the refusal message for lang, falling back to English
// when the language has no entry.
func (c *Config) Refusal(lang string) string {
	if msg, ok := c.Refusals[lang]; ok {
		return msg
	}
	return c.Refusals["en"]
}

func (c *Config) merge(overlay *Config) {
	if len(overlay.Classifier.Prescription) > 0 {
		c.Classifier.Prescription = overlay.Classifier.Prescription
	}
	if len(overlay.Classifier.LabReport) > 0 {
		c.Classifier.LabReport = overlay.Classifier.LabReport
	}
	if len(overlay.Classifier.XRayText) > 0 {
		c.Classifier.XRayText = overlay.Classifier.XRayText
	}
	if len(overlay.Classifier.XRayFilename) > 0 {
		c.Classifier.XRayFilename = overlay.Classifier.XRayFilename
	}
	if len(overlay.Classifier.Wound) > 0 {
		c.Classifier.Wound = overlay.Classifier.Wound
	}
	if len(overlay.Classifier.Discharge) > 0 {
		c.Classifier.Discharge = overlay.Classifier.Discharge
	}
	if len(overlay.Gate.Terms) > 0 {
		c.Gate.Terms = overlay.Gate.Terms
	}
	for lang, msg := range overlay.Refusals {
		if msg != "" {
			c.Refusals[lang] = msg
		}
	}
}

func (c *Config) normalize() {
	c.Classifier.Prescription = lowerAll(c.Classifier.Prescription)
	c.Classifier.LabReport = lowerAll(c.Classifier.LabReport)
	c.Classifier.XRayText = lowerAll(c.Classifier.XRayText)
	c.Classifier.XRayFilename = lowerAll(c.Classifier.XRayFilename)
	c.Classifier.Wound = lowerAll(c.Classifier.Wound)
	c.Classifier.Discharge = lowerAll(c.Classifier.Discharge)
	c.Gate.Terms = lowerAll(c.Gate.Terms)
}

func (c *Config) validate() error {
	groups := map[string][]string{
		"classifier.prescription":  c.Classifier.Prescription,
		"classifier.lab_report":    c.Classifier.LabReport,
		"classifier.xray_text":     c.Classifier.XRayText,
		"classifier.xray_filename": c.Classifier.XRayFilename,
		"classifier.wound":         c.Classifier.Wound,
		"classifier.discharge":     c.Classifier.Discharge,
		"gate.terms":               c.Gate.Terms,
	}
	for name, terms := range groups {
		if len(terms) == 0 {
			return fmt.Errorf("%s: at least one term required", name)
		}
	}
	if c.Refusals["en"] == "" {
		return fmt.Errorf("refusals: english entry required")
	}
	return nil
}

func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term != "" {
			out = append(out, term)
		}
	}
	return out
}
