package knowledge_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
	"github.com/akolanti/BrainAPI/internal/knowledge"
)

func TestAssembleDocumentContext_SingleDocument(t *testing.T) {
	docs := []askModel.Document{
		{Title: "Policy A", Content: "Vacation days: 30"},
	}

	got := knowledge.AssembleDocumentContext(docs)
	want := "### Dokument 1: „Policy A\"\nVacation days: 30"

	if got != want {
		t.Errorf("context got %q, want %q", got, want)
	}
}

func TestAssembleDocumentContext_MultipleDocuments(t *testing.T) {
	docs := []askModel.Document{
		{Title: "First", Content: "alpha"},
		{Title: "Second", Content: "beta"},
		{Title: "Third", Content: "gamma"},
	}

	got := knowledge.AssembleDocumentContext(docs)

	parts := strings.Split(got, "\n\n---\n\n")
	if len(parts) != 3 {
		t.Fatalf("got %d separated entries, want 3", len(parts))
	}
	for i, want := range []string{"### Dokument 1: „First\"\nalpha", "### Dokument 2: „Second\"\nbeta", "### Dokument 3: „Third\"\ngamma"} {
		if parts[i] != want {
			t.Errorf("entry %d got %q, want %q", i, parts[i], want)
		}
	}
}

func TestAssembleDocumentContext_TruncatesLongContent(t *testing.T) {
	longContent := strings.Repeat("x", config.MaxCharsPerDocument+500)
	docs := []askModel.Document{
		{Title: "Huge", Content: longContent},
	}

	got := knowledge.AssembleDocumentContext(docs)

	header := "### Dokument 1: „Huge\"\n"
	body := strings.TrimPrefix(got, header)
	if body == got {
		t.Fatal("entry header missing")
	}
	if len(body) != config.MaxCharsPerDocument {
		t.Errorf("content length got %d, want %d", len(body), config.MaxCharsPerDocument)
	}
	if body != longContent[:config.MaxCharsPerDocument] {
		t.Error("truncation did not keep the content prefix")
	}
}

func TestAssembleDocumentContext_TruncatesMultiByteContent(t *testing.T) {
	// 3 bytes per rune, so a byte-offset cut would land mid-rune
	longContent := strings.Repeat("€", config.MaxCharsPerDocument+500)
	got := knowledge.AssembleDocumentContext([]askModel.Document{{Title: "Preise", Content: longContent}})

	header := "### Dokument 1: „Preise\"\n"
	body := strings.TrimPrefix(got, header)
	if body == got {
		t.Fatal("entry header missing")
	}
	if !utf8.ValidString(body) {
		t.Fatal("truncated content is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(body); n != config.MaxCharsPerDocument {
		t.Errorf("content rune count got %d, want %d", n, config.MaxCharsPerDocument)
	}
	if !strings.HasPrefix(longContent, body) {
		t.Error("truncation did not keep the content prefix")
	}
}

func TestAssembleDocumentContext_ShortContentKeptWhole(t *testing.T) {
	content := strings.Repeat("y", config.MaxCharsPerDocument)
	got := knowledge.AssembleDocumentContext([]askModel.Document{{Title: "Exact", Content: content}})

	if !strings.HasSuffix(got, content) {
		t.Error("content at the limit must not be truncated")
	}
}
