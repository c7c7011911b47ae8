package extract

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/BrainAPI/pkg/logger_i"
	"github.com/dslipak/pdf"
	"github.com/lu4p/cat"
)

type DocType string

const (
	PDF         DocType = "PDF"
	Text        DocType = "TEXT"
	Unsupported DocType = "UNSUPPORTED"
)

var logger = logger_i.NewLogger("Extract")

func DocTypeOf(path string) DocType {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return PDF
	case ".docx", ".txt", ".rtf", ".odt":
		return Text
	default:
		return Unsupported
	}
}

// TextFromFile converts an uploaded document into plain text.
// The extracted text is the only thing persisted - the binary never leaves
// the temp directory.
func TextFromFile(path string) (string, error) {
	switch DocTypeOf(path) {
	case PDF:
		return extractPDF(path)
	case Text:
		return extractTextLike(path)
	default:
		return "", fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

func extractPDF(path string) (string, error) {
	logger.Debug("extractPDF", "attempting extraction", path)
	f, err := pdf.Open(path)
	if err != nil {
		logger.Error("failed opening of pdf file")
		return "", fmt.Errorf("failed to open pdf: %w", err)
	}

	var builder strings.Builder
	numPages := f.NumPage()
	logger.Debug("extractPDF", "number of pages", numPages)
	for i := 1; i <= numPages; i++ {
		page := f.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := protectExtract(page)
		if err != nil {
			// keep going, a single broken page should not sink the document
			logger.Error("Error parsing page content", "page", i, "Error", err)
			continue
		}

		if builder.Len() > 0 {
			builder.WriteString("\n")
		}
		builder.WriteString(content)
	}
	return builder.String(), nil
}

func extractTextLike(path string) (string, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc")
		return "", fmt.Errorf("failed to extract document text: %w", err)
	}
	return text, nil
}

// protectExtract guards against the pdf library hanging on malformed pages.
func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(time.Second * 10):
		logger.Error("pageExtract timeout")
		return "", errors.New("timeout")
	}
}

// TitleFromFilename derives the stored document title the same way the
// dashboard shows it: extension stripped, underscores become spaces.
func TitleFromFilename(filename string) string {
	base := filepath.Base(filename)
	ext := filepath.Ext(base)
	title := strings.TrimSuffix(base, ext)
	return strings.ReplaceAll(title, "_", " ")
}
