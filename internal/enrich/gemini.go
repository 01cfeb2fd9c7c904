package enrich

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/vitalwave/mediguide/internal/config"
)

// GeminiClient calls the Gemini API. Failures are wrapped in
// ErrUnavailable so callers can apply the fallback policy uniformly.
type GeminiClient struct {
	client *genai.Client
	cfg    *config.EnrichmentConfig
}

// NewGeminiClient constructs a Gemini-backed enrichment client.
func NewGeminiClient(ctx context.Context, cfg *config.EnrichmentConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		cfg:    cfg,
	}, nil
}

// Generate sends the instruction and prompt to the model and returns the
// raw response text.
func (c *GeminiClient) Generate(ctx context.Context, instruction, prompt string, image *Image) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.TimeoutDuration())
	defer cancel()

	parts := []*genai.Part{{Text: prompt}}
	if image != nil {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{
				MIMEType: image.MIMEType,
				Data:     image.Data,
			},
		})
	}

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.cfg.Model,
		[]*genai.Content{{Parts: parts}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{
				Parts: []*genai.Part{{Text: instruction}},
			},
		},
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	text := sb.String()
	if text == "" {
		return "", fmt.Errorf("%w: empty response", ErrUnavailable)
	}

	return text, nil
}
