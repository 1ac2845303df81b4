package docreader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/docreader-go/internal/fixtures"
)

func writeSamplePDF(t *testing.T) string {
	t.Helper()
	path, err := fixtures.WritePDF(t.TempDir(), "sample.pdf", fixtures.SamplePages...)
	if err != nil {
		t.Fatalf("Failed to write sample PDF: %v", err)
	}
	return path
}

func TestReadPDF(t *testing.T) {
	text, err := ReadPDF(writeSamplePDF(t))
	if err != nil {
		t.Fatalf("ReadPDF failed: %v", err)
	}

	for _, want := range []string{
		"Claude Code Features Showcase",
		"Text extraction",
		"Page 2: Testing Data",
		"multi-page extraction",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("Expected text to contain %q, got %q", want, text)
		}
	}
}

func TestReadPDFJoinsNonBlankPages(t *testing.T) {
	path, err := fixtures.WritePDF(t.TempDir(), "gaps.pdf", "Alpha", "", "Omega")
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	pages, err := ExtractTextByPage(path)
	if err != nil {
		t.Fatalf("ExtractTextByPage failed: %v", err)
	}
	text, err := ReadPDF(path)
	if err != nil {
		t.Fatalf("ReadPDF failed: %v", err)
	}

	var parts []string
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			parts = append(parts, p.Text)
		}
	}
	if len(parts) != 2 {
		t.Fatalf("Expected 2 non-blank pages, got %d", len(parts))
	}
	if expected := strings.Join(parts, "\n\n"); text != expected {
		t.Errorf("ReadPDF = %q, expected %q", text, expected)
	}
}

func TestReadPDFWithoutText(t *testing.T) {
	path, err := fixtures.WritePDF(t.TempDir(), "blank.pdf", "", "")
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	text, err := ReadPDF(path)
	if err != nil {
		t.Fatalf("ReadPDF failed: %v", err)
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestExtractTextByPage(t *testing.T) {
	pages, err := ExtractTextByPage(writeSamplePDF(t))
	if err != nil {
		t.Fatalf("ExtractTextByPage failed: %v", err)
	}

	if len(pages) != 2 {
		t.Fatalf("Expected 2 pages, got %d", len(pages))
	}

	contains := []string{"Claude Code Features Showcase", "Page 2: Testing Data"}
	for i, p := range pages {
		if p.Page != i+1 {
			t.Errorf("Expected page %d, got %d", i+1, p.Page)
		}
		if !strings.Contains(p.Text, contains[i]) {
			t.Errorf("Page %d: expected text to contain %q, got %q", p.Page, contains[i], p.Text)
		}
		if p.CharCount <= 0 {
			t.Errorf("Page %d: expected positive char count, got %d", p.Page, p.CharCount)
		}
		if p.CharCount != len([]rune(p.Text)) {
			t.Errorf("Page %d: char count %d does not match text length %d", p.Page, p.CharCount, len([]rune(p.Text)))
		}
	}
}

func TestExtractTextByPageKeepsBlankPages(t *testing.T) {
	path, err := fixtures.WritePDF(t.TempDir(), "gaps.pdf", "", "Middle", "")
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	pages, err := ExtractTextByPage(path)
	if err != nil {
		t.Fatalf("ExtractTextByPage failed: %v", err)
	}
	if len(pages) != 3 {
		t.Fatalf("Expected 3 pages, got %d", len(pages))
	}
	for i, p := range pages {
		if p.Page != i+1 {
			t.Errorf("Expected page %d, got %d", i+1, p.Page)
		}
	}
}

func TestPDFIdempotent(t *testing.T) {
	path := writeSamplePDF(t)

	first, err := ReadPDF(path)
	if err != nil {
		t.Fatalf("ReadPDF failed: %v", err)
	}
	second, err := ReadPDF(path)
	if err != nil {
		t.Fatalf("ReadPDF failed: %v", err)
	}
	if first != second {
		t.Errorf("Repeated extraction differs: %q vs %q", first, second)
	}
}

func TestPDFFileNotFound(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nonexistent.pdf")

	for name, fn := range map[string]func(string) error{
		"ReadPDF": func(p string) error { _, err := ReadPDF(p); return err },
		"ExtractTextByPage": func(p string) error {
			_, err := ExtractTextByPage(p)
			return err
		},
	} {
		err := fn(path)
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("%s: expected ErrNotFound, got %v", name, err)
			continue
		}
		var nf *NotFoundError
		if !errors.As(err, &nf) || nf.Path != path {
			t.Errorf("%s: expected NotFoundError for %q, got %v", name, path, err)
		}
		if !strings.Contains(err.Error(), "PDF file not found") {
			t.Errorf("%s: unexpected message %q", name, err.Error())
		}
	}
}

func TestPDFInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.pdf")
	if err := os.WriteFile(path, []byte("This is not a PDF"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	for name, fn := range map[string]func(string) error{
		"ReadPDF": func(p string) error { _, err := ReadPDF(p); return err },
		"ExtractTextByPage": func(p string) error {
			_, err := ExtractTextByPage(p)
			return err
		},
	} {
		err := fn(path)
		if !errors.Is(err, ErrParseFailure) {
			t.Errorf("%s: expected ErrParseFailure, got %v", name, err)
			continue
		}
		var ee *ExtractionError
		if !errors.As(err, &ee) || ee.Err == nil {
			t.Errorf("%s: expected ExtractionError with cause, got %v", name, err)
		}
		if !strings.HasPrefix(err.Error(), "failed to read PDF") {
			t.Errorf("%s: unexpected message %q", name, err.Error())
		}
	}
}
