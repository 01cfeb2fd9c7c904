// Package identity resolves the calling principal. Authentication is an
// upstream concern; this service trusts identity headers injected by the
// gateway in front of it.
package identity

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
)

// Identity headers set by the upstream gateway.
const (
	HeaderUserID       = "X-User-Id"
	HeaderUserName     = "X-User-Name"
	HeaderUserLanguage = "X-User-Language"
)

// ErrUnauthorized indicates the request carries no resolvable principal.
var ErrUnauthorized = errors.New("unauthorized")

// Principal is the authenticated caller on whose behalf requests run.
type Principal struct {
	ID       uuid.UUID
	Name     string
	Language string
}

// Resolver extracts the calling principal from a request.
type Resolver interface {
	Resolve(r *http.Request) (Principal, error)
}

// HeaderResolver resolves principals from gateway identity headers.
type HeaderResolver struct{}

// NewHeaderResolver builds a header-based resolver.
func NewHeaderResolver() *HeaderResolver {
	return &HeaderResolver{}
}

// Resolve reads the identity headers. A missing or malformed user id
// yields ErrUnauthorized; name and language are optional, with language
// defaulting to English.
func (h *HeaderResolver) Resolve(r *http.Request) (Principal, error) {
	raw := r.Header.Get(HeaderUserID)
	if raw == "" {
		return Principal{}, ErrUnauthorized
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return Principal{}, ErrUnauthorized
	}

	lang := r.Header.Get(HeaderUserLanguage)
	if lang == "" {
		lang = "en"
	}

	return Principal{
		ID:       id,
		Name:     r.Header.Get(HeaderUserName),
		Language: lang,
	}, nil
}
