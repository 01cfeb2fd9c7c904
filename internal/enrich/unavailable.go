package enrich

import "context"

// UnavailableClient always reports the service as unavailable. It stands
// in when no API key is configured so ingestion degrades to heuristics.
type UnavailableClient struct{}

// NewUnavailableClient returns a client that never generates.
func NewUnavailableClient() *UnavailableClient {
	return &UnavailableClient{}
}

// Generate always fails with ErrUnavailable.
func (c *UnavailableClient) Generate(_ context.Context, _, _ string, _ *Image) (string, error) {
	return "", ErrUnavailable
}
