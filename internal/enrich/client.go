// Package enrich wraps the external generative AI service behind a narrow
// contract and owns the merge policy reconciling its output with the local
// heuristic baseline.
package enrich

import "context"

// Image is an optional inline image payload attached to a generation
// request.
type Image struct {
	MIMEType string
	Data     []byte
}

// Client generates text from a system instruction and a prompt, with an
// optional inline image. The response is opaque text; callers must not
// assume well-formed JSON.
type Client interface {
	Generate(ctx context.Context, instruction, prompt string, image *Image) (string, error)
}
