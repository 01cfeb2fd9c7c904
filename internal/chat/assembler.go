package chat

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/documents"
	"github.com/vitalwave/mediguide/internal/identity"
)

const responseExcerpt = 200

var languageDirectives = map[string]string{
	"en": "Respond in English.",
	"hi": "हिंदी में उत्तर दें।",
	"te": "తెలుగులో సమాధానం ఇవ్వండి.",
}

// Assembler builds the per-turn system instruction from the caller's
// profile, the most relevant document, and bounded recent history.
type Assembler struct {
	cfg *config.ChatConfig
}

// NewAssembler creates a context assembler.
func NewAssembler(cfg *config.ChatConfig) *Assembler {
	return &Assembler{cfg: cfg}
}

// Build composes the system instruction for one turn. doc may be nil when
// the caller has no documents; history must already be in chronological
// order.
func (a *Assembler) Build(principal identity.Principal, doc *documents.Document, history []Turn) string {
	directive, ok := languageDirectives[principal.Language]
	if !ok {
		directive = languageDirectives["en"]
	}

	var sb strings.Builder
	sb.WriteString("You are MediGuide AI, a helpful medical and wellness assistant.\n")
	sb.WriteString(directive)
	sb.WriteString("\n")
	sb.WriteString(`- Answer medical, health, wellness, and diet-related questions.
- If a question is completely unrelated to health/medicine/wellness (e.g., coding, politics), politely refocus the conversation on health.
- Be concise (use bullet points)
- Use friendly emojis sparingly
- Never diagnose - always recommend consulting a doctor
- Include disclaimer: "This is for awareness only. Please consult a licensed doctor."
`)
	fmt.Fprintf(&sb, "- User: %s\n", principal.Name)

	if doc != nil {
		summary := excerpt(doc.SummaryDetailed, a.cfg.ContextExcerpt)
		fmt.Fprintf(&sb, "\nUser's recent medical document (%s): %s", doc.DocType, summary)
	}

	if len(history) > 0 {
		sb.WriteString("\nRecent conversation:\n")
		lines := make([]string, 0, len(history))
		for _, turn := range history {
			response := excerpt(turn.Response, responseExcerpt)
			lines = append(lines, fmt.Sprintf("User: %s\nAssistant: %s", turn.Message, response))
		}
		sb.WriteString(strings.Join(lines, "\n"))
	}

	return sb.String()
}

// excerpt truncates s to at most limit bytes, cutting only on a rune
// boundary so localized responses stay valid UTF-8.
func excerpt(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
