package chat_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/vitalwave/mediguide/internal/chat"
	"github.com/vitalwave/mediguide/internal/config"
	"github.com/vitalwave/mediguide/internal/documents"
	"github.com/vitalwave/mediguide/internal/identity"
)

func newAssembler() *chat.Assembler {
	return chat.NewAssembler(&config.ChatConfig{HistoryLimit: 5, ContextExcerpt: 500})
}

func TestAssembler_LanguageDirective(t *testing.T) {
	tests := []struct {
		name string
		lang string
		want string
	}{
		{"english", "en", "Respond in English."},
		{"hindi", "hi", "हिंदी में उत्तर दें।"},
		{"telugu", "te", "తెలుగులో సమాధానం ఇవ్వండి."},
		{"unknown falls back to english", "fr", "Respond in English."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := newAssembler().Build(identity.Principal{Name: "Asha", Language: tt.lang}, nil, nil)
			if !strings.Contains(got, tt.want) {
				t.Errorf("Build() missing directive %q", tt.want)
			}
		})
	}
}

func TestAssembler_NoDocumentNoHistory(t *testing.T) {
	got := newAssembler().Build(identity.Principal{Name: "Asha", Language: "en"}, nil, nil)

	if !strings.Contains(got, "MediGuide AI") {
		t.Error("Build() missing persona line")
	}
	if !strings.Contains(got, "User: Asha") {
		t.Error("Build() missing user name")
	}
	if strings.Contains(got, "recent medical document") {
		t.Error("Build() mentions a document when none was given")
	}
	if strings.Contains(got, "Recent conversation") {
		t.Error("Build() mentions history when none was given")
	}
}

func TestAssembler_DocumentExcerptCapped(t *testing.T) {
	assembler := chat.NewAssembler(&config.ChatConfig{HistoryLimit: 5, ContextExcerpt: 20})
	doc := &documents.Document{
		ID:              uuid.New(),
		DocType:         "lab_report",
		SummaryDetailed: strings.Repeat("x", 100),
	}

	got := assembler.Build(identity.Principal{Name: "Asha", Language: "en"}, doc, nil)

	if !strings.Contains(got, "recent medical document (lab_report)") {
		t.Error("Build() missing document section")
	}
	if strings.Contains(got, strings.Repeat("x", 21)) {
		t.Error("Build() document summary not capped")
	}
}

func TestAssembler_MultibyteExcerptsStayValid(t *testing.T) {
	assembler := chat.NewAssembler(&config.ChatConfig{HistoryLimit: 5, ContextExcerpt: 20})
	doc := &documents.Document{
		ID:              uuid.New(),
		DocType:         "lab_report",
		SummaryDetailed: strings.Repeat("म", 50),
	}
	history := []chat.Turn{
		{Message: "बुखार है", Response: strings.Repeat("త", 100)},
	}

	got := assembler.Build(identity.Principal{Name: "Asha", Language: "hi"}, doc, history)

	if !utf8.ValidString(got) {
		t.Error("Build() produced invalid UTF-8 from capped multibyte text")
	}
}

func TestAssembler_HistoryOrderAndResponseCap(t *testing.T) {
	history := []chat.Turn{
		{Message: "first question", Response: strings.Repeat("a", 300)},
		{Message: "second question", Response: "short answer"},
	}

	got := newAssembler().Build(identity.Principal{Name: "Asha", Language: "en"}, nil, history)

	first := strings.Index(got, "first question")
	second := strings.Index(got, "second question")
	if first < 0 || second < 0 || first > second {
		t.Errorf("Build() history out of order: first=%d second=%d", first, second)
	}
	if strings.Contains(got, strings.Repeat("a", 201)) {
		t.Error("Build() history response not capped at 200")
	}
}
