package knowledge

import (
	"fmt"
	"strings"

	"github.com/akolanti/BrainAPI/internal/config"
	"github.com/akolanti/BrainAPI/internal/domain/askModel"
)

// contextEntry lives for one request only - it is the truncated, labelled
// view of a document that goes into the prompt.
type contextEntry struct {
	index            int
	title            string
	truncatedContent string
}

const entrySeparator = "\n\n---\n\n"

// AssembleDocumentContext renders the bounded context block appended to the
// prompt contract. Every document is included as-is, in the order given
// (most recent first), there is no relevance filtering. The per-document
// limit counts characters, not tokens.
func AssembleDocumentContext(documents []askModel.Document) string {
	entries := make([]contextEntry, 0, len(documents))
	for i, doc := range documents {
		entries = append(entries, contextEntry{
			index:            i + 1,
			title:            doc.Title,
			truncatedContent: truncateContent(doc.Content),
		})
	}

	parts := make([]string, 0, len(entries))
	for _, entry := range entries {
		parts = append(parts, fmt.Sprintf("### Dokument %d: „%s\"\n%s", entry.index, entry.title, entry.truncatedContent))
	}
	return strings.Join(parts, entrySeparator)
}

// truncateContent cuts at a rune boundary so multi-byte text (umlauts, the
// euro sign) never ends up as invalid UTF-8 in the prompt.
func truncateContent(content string) string {
	count := 0
	for i := range content {
		if count == config.MaxCharsPerDocument {
			return content[:i]
		}
		count++
	}
	return content
}
