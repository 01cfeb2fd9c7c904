// Package ocr defines the text extraction seam for uploaded files. The
// default implementation handles plain text only; image and PDF OCR plug
// in behind the same interface.
package ocr

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"
)

// ErrUnsupported indicates no extractor is available for the file type.
// Callers treat it as degraded extraction, not a failure.
var ErrUnsupported = errors.New("ocr: unsupported file type")

// System extracts text from raw file bytes. The ext parameter is the
// lowercased filename extension including the dot.
type System interface {
	ExtractText(ctx context.Context, data []byte, ext string) (string, error)
}

// Plain decodes plain-text files and declines everything else.
type Plain struct{}

// NewPlain builds the plain-text extractor.
func NewPlain() *Plain {
	return &Plain{}
}

// ExtractText returns the UTF-8 text of .txt files, replacing invalid
// bytes. Other file types yield ErrUnsupported.
func (p *Plain) ExtractText(_ context.Context, data []byte, ext string) (string, error) {
	if ext != ".txt" {
		return "", ErrUnsupported
	}

	if utf8.Valid(data) {
		return string(data), nil
	}
	return strings.ToValidUTF8(string(data), ""), nil
}
