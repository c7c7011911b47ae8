package extract

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDocTypeOf(t *testing.T) {
	tests := []struct {
		path     string
		expected DocType
	}{
		{"handbook.pdf", PDF},
		{"Handbook.PDF", PDF},
		{"notes.txt", Text},
		{"report.docx", Text},
		{"legacy.rtf", Text},
		{"open.odt", Text},
		{"photo.png", Unsupported},
		{"archive.zip", Unsupported},
		{"noextension", Unsupported},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := DocTypeOf(tt.path); got != tt.expected {
				t.Errorf("DocTypeOf(%s) got %s, want %s", tt.path, got, tt.expected)
			}
		})
	}
}

func TestTextFromFile_PlainText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	content := "Vacation policy: 30 days per year."

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture failed: %v", err)
	}

	text, err := TextFromFile(path)
	if err != nil {
		t.Fatalf("TextFromFile failed: %v", err)
	}
	if text != content {
		t.Errorf("text got %q, want %q", text, content)
	}
}

func TestTextFromFile_UnsupportedExtension(t *testing.T) {
	if _, err := TextFromFile("image.png"); err == nil {
		t.Error("expected an error for an unsupported extension")
	}
}

func TestTitleFromFilename(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"Employee_Handbook_2024.pdf", "Employee Handbook 2024"},
		{"policy.pdf", "policy"},
		{"no_extension_file", "no extension file"},
		{"/tmp/upload/Annual_Report.docx", "Annual Report"},
		{"multiple.dots.in.name.txt", "multiple.dots.in.name"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := TitleFromFilename(tt.filename); got != tt.expected {
				t.Errorf("TitleFromFilename(%s) got %q, want %q", tt.filename, got, tt.expected)
			}
		})
	}
}
