package gate_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/gate"
	"github.com/vitalwave/mediguide/internal/vocab"
)

func newGate(t *testing.T) *gate.System {
	t.Helper()

	vocabulary, err := vocab.New(&config.VocabularyConfig{}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("vocab.New() error = %v", err)
	}
	return gate.New(vocabulary)
}

func TestInDomain(t *testing.T) {
	g := newGate(t)

	tests := []struct {
		name    string
		message string
		want    bool
	}{
		{"symptoms question", "What are the symptoms of diabetes?", true},
		{"headache", "I have a headache, what should I do?", true},
		{"diet question", "Suggest a diet plan for weight loss", true},
		{"medicine question", "Can I take this medicine with food?", true},
		{"hindi-english mix keyword", "mujhe fever hai", true},
		{"weather", "What's the weather today?", false},
		{"movie recommendation", "recommend a good movie", false},
		{"empty message", "", false},
		{"case insensitive", "TELL ME ABOUT DIABETES", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.InDomain(tt.message); got != tt.want {
				t.Errorf("InDomain(%q) = %v, want %v", tt.message, got, tt.want)
			}
		})
	}
}

func TestInDomain_Idempotent(t *testing.T) {
	g := newGate(t)

	for i := 0; i < 3; i++ {
		if !g.InDomain("blood sugar levels") {
			t.Fatal("InDomain() changed across identical calls")
		}
		if g.InDomain("recommend a good movie") {
			t.Fatal("InDomain() changed across identical calls")
		}
	}
}

func TestRefusal(t *testing.T) {
	g := newGate(t)

	en := g.Refusal("en")
	if !strings.Contains(en, "health") {
		t.Errorf("Refusal(en) = %q, want health-related message", en)
	}

	for _, lang := range []string{"hi", "te"} {
		if msg := g.Refusal(lang); msg == "" || msg == en {
			t.Errorf("Refusal(%q) = %q, want localized message", lang, msg)
		}
	}

	// Unsupported languages fall back to English.
	if got := g.Refusal("fr"); got != en {
		t.Errorf("Refusal(fr) = %q, want english fallback", got)
	}
}
