package chat

import (
	"errors"
	"net/http"

	"github.com/vitalwave/mediguide/internal/enrich"
	"github.com/vitalwave/mediguide/internal/ratelimit"
)

// Domain errors for chat operations.
var (
	ErrNotFound     = errors.New("chat turn not found")
	ErrEmptyMessage = errors.New("message required")
)

// MapHTTPStatus converts domain errors to appropriate HTTP status codes.
// Enrichment failures surface as service-unavailable: there is no safe
// local substitute for a conversational answer.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrEmptyMessage) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ratelimit.ErrLimited) {
		return http.StatusTooManyRequests
	}
	if errors.Is(err, enrich.ErrUnavailable) || errors.Is(err, enrich.ErrMalformed) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
