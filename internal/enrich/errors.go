package enrich

import "errors"

var (
	// ErrUnavailable indicates the enrichment service is unreachable,
	// errored, or timed out.
	ErrUnavailable = errors.New("enrichment unavailable")

	// ErrMalformed indicates the enrichment response did not parse as
	// the expected JSON shape.
	ErrMalformed = errors.New("enrichment response malformed")
)
