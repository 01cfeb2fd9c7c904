package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// EnvChatHistoryLimit overrides the number of prior turns included as context.
	EnvChatHistoryLimit = "CHAT_HISTORY_LIMIT"

	// EnvChatMinInterval overrides the per-user minimum interval between messages.
	EnvChatMinInterval = "CHAT_MIN_INTERVAL"
)

// ChatConfig contains conversational assistant configuration.
type ChatConfig struct {
	HistoryLimit   int    `toml:"history_limit"`
	ContextExcerpt int    `toml:"context_excerpt"`
	MinInterval    string `toml:"min_interval"`
}

// MinIntervalDuration parses and returns the per-user message interval as a time.Duration.
func (c *ChatConfig) MinIntervalDuration() time.Duration {
	d, _ := time.ParseDuration(c.MinInterval)
	return d
}

// Finalize applies defaults, loads environment overrides, and validates the chat configuration.
func (c *ChatConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *ChatConfig) Merge(overlay *ChatConfig) {
	if overlay.HistoryLimit != 0 {
		c.HistoryLimit = overlay.HistoryLimit
	}
	if overlay.ContextExcerpt != 0 {
		c.ContextExcerpt = overlay.ContextExcerpt
	}
	if overlay.MinInterval != "" {
		c.MinInterval = overlay.MinInterval
	}
}

func (c *ChatConfig) loadDefaults() {
	if c.HistoryLimit == 0 {
		c.HistoryLimit = 5
	}
	if c.ContextExcerpt == 0 {
		c.ContextExcerpt = 500
	}
	if c.MinInterval == "" {
		c.MinInterval = "2s"
	}
}

func (c *ChatConfig) loadEnv() {
	if v := os.Getenv(EnvChatHistoryLimit); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.HistoryLimit = n
		}
	}
	if v := os.Getenv(EnvChatMinInterval); v != "" {
		c.MinInterval = v
	}
}

func (c *ChatConfig) validate() error {
	if c.HistoryLimit < 0 {
		return fmt.Errorf("history_limit must not be negative")
	}
	if c.ContextExcerpt < 1 {
		return fmt.Errorf("context_excerpt must be positive")
	}
	if _, err := time.ParseDuration(c.MinInterval); err != nil {
		return fmt.Errorf("invalid min_interval: %w", err)
	}
	return nil
}
