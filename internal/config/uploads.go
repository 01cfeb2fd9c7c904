package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/docker/go-units"
)

const (
	// EnvUploadsBasePath overrides the upload storage directory.
	EnvUploadsBasePath = "UPLOADS_BASE_PATH"

	// EnvUploadsMaxUploadSize overrides the maximum accepted upload size.
	EnvUploadsMaxUploadSize = "UPLOADS_MAX_UPLOAD_SIZE"

	// EnvUploadsTextCap overrides the stored extracted-text length cap.
	EnvUploadsTextCap = "UPLOADS_TEXT_CAP"
)

// UploadsConfig contains upload handling configuration.
type UploadsConfig struct {
	// BasePath is the root directory for stored upload files.
	// Default: ".data/uploads"
	BasePath         string `toml:"base_path"`
	MaxUploadSize    string `toml:"max_upload_size"`
	TextCap          int    `toml:"text_cap"`
	maxUploadSizeVal int64
}

// MaxUploadSizeBytes returns the parsed maximum upload size in bytes.
func (c *UploadsConfig) MaxUploadSizeBytes() int64 {
	return c.maxUploadSizeVal
}

// Finalize applies defaults, loads environment overrides, and validates the uploads configuration.
func (c *UploadsConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge applies values from overlay configuration that differ from zero values.
func (c *UploadsConfig) Merge(overlay *UploadsConfig) {
	if overlay.BasePath != "" {
		c.BasePath = overlay.BasePath
	}
	if overlay.MaxUploadSize != "" {
		c.MaxUploadSize = overlay.MaxUploadSize
	}
	if overlay.TextCap != 0 {
		c.TextCap = overlay.TextCap
	}
}

func (c *UploadsConfig) loadDefaults() {
	if c.BasePath == "" {
		c.BasePath = ".data/uploads"
	}
	if c.MaxUploadSize == "" {
		c.MaxUploadSize = "10MB"
	}
	if c.TextCap == 0 {
		c.TextCap = 5000
	}
}

func (c *UploadsConfig) loadEnv() {
	if v := os.Getenv(EnvUploadsBasePath); v != "" {
		c.BasePath = v
	}
	if v := os.Getenv(EnvUploadsMaxUploadSize); v != "" {
		c.MaxUploadSize = v
	}
	if v := os.Getenv(EnvUploadsTextCap); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.TextCap = n
		}
	}
}

func (c *UploadsConfig) validate() error {
	size, err := units.FromHumanSize(c.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("invalid max_upload_size: %w", err)
	}
	if size <= 0 {
		return fmt.Errorf("max_upload_size must be positive")
	}
	c.maxUploadSizeVal = size

	if c.TextCap < 1 {
		return fmt.Errorf("text_cap must be positive")
	}
	return nil
}
