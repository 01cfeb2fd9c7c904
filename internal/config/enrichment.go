package config

import (
	"fmt"
	"os"
	"time"
)

const (
	// EnvEnrichmentAPIKey overrides the generative service API key.
	EnvEnrichmentAPIKey = "GEMINI_API_KEY"

	// EnvEnrichmentModel overrides the generative model identifier.
	EnvEnrichmentModel = "GEMINI_MODEL"

	// EnvEnrichmentTimeout overrides the per-call enrichment timeout.
	EnvEnrichmentTimeout = "ENRICHMENT_TIMEOUT"
)

// EnrichmentConfig contains configuration for the external generative AI service.
type EnrichmentConfig struct {
	APIKey       string `toml:"api_key"`
	Model        string `toml:"model"`
	Timeout      string `toml:"timeout"`
	ExcerptLimit int    `toml:"excerpt_limit"`
}

// TimeoutDuration parses and returns the enrichment call timeout as a time.Duration.
func (c *EnrichmentConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the enrichment configuration.
// An empty API key is permitted: the service then degrades to heuristic-only ingestion.
func (c *EnrichmentConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *EnrichmentConfig) Merge(overlay *EnrichmentConfig) {
	if overlay.APIKey != "" {
		c.APIKey = overlay.APIKey
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.ExcerptLimit != 0 {
		c.ExcerptLimit = overlay.ExcerptLimit
	}
}

func (c *EnrichmentConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gemini-1.5-flash"
	}
	if c.Timeout == "" {
		c.Timeout = "30s"
	}
	if c.ExcerptLimit == 0 {
		c.ExcerptLimit = 2000
	}
}

func (c *EnrichmentConfig) loadEnv() {
	if v := os.Getenv(EnvEnrichmentAPIKey); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv(EnvEnrichmentModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvEnrichmentTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *EnrichmentConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	if c.ExcerptLimit < 1 {
		return fmt.Errorf("excerpt_limit must be positive: %d", c.ExcerptLimit)
	}
	return nil
}
