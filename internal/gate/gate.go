// Package gate restricts the conversational assistant to in-domain
// questions with a deterministic keyword-membership filter. The gate
// decides before any enrichment call is made.
package gate

import (
	"strings"

	"github.com/vitalwave/mediguide/internal/vocab"
)

// System evaluates messages against the active vocabulary.
type System struct {
	vocabulary *vocab.System
}

// New builds a topic gate over the vocabulary system.
func New(vocabulary *vocab.System) *System {
	return &System{vocabulary: vocabulary}
}

// InDomain reports whether message touches a gated topic. Matching is a
// case-insensitive substring membership test; the gate is pure and has
// no side effects.
func (s *System) InDomain(message string) bool {
	lower := strings.ToLower(message)
	for _, term := range s.vocabulary.Snapshot().Gate.Terms {
		if strings.Contains(lower, term) {
			return true
		}
	}
	return false
}

// Refusal returns the localized refusal message for lang, falling back
// to English for unsupported languages.
func (s *System) Refusal(lang string) string {
	return s.vocabulary.Snapshot().Refusal(lang)
}
