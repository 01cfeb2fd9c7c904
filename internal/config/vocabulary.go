package config

import (
	"os"
	"strconv"
)

const (
	// EnvVocabularyPath overrides the vocabulary configuration file path.
	EnvVocabularyPath = "VOCABULARY_PATH"

	// EnvVocabularyWatch overrides the vocabulary hot-reload flag.
	EnvVocabularyWatch = "VOCABULARY_WATCH"
)

// VocabularyConfig points at the externalized keyword vocabulary data.
// An empty path means the compiled-in default vocabulary is used as-is.
type VocabularyConfig struct {
	Path  string `toml:"path"`
	Watch bool   `toml:"watch"`
}

// Finalize applies defaults and loads environment overrides.
func (c *VocabularyConfig) Finalize() error {
	c.loadEnv()
	return nil
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *VocabularyConfig) Merge(overlay *VocabularyConfig) {
	if overlay.Path != "" {
		c.Path = overlay.Path
	}
	c.Watch = overlay.Watch
}

func (c *VocabularyConfig) loadEnv() {
	if v := os.Getenv(EnvVocabularyPath); v != "" {
		c.Path = v
	}
	if v := os.Getenv(EnvVocabularyWatch); v != "" {
		if watch, err := strconv.ParseBool(v); err == nil {
			c.Watch = watch
		}
	}
}
