package parser

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ukaji3/docreader-go/internal/fixtures"
)

func TestOpenPDF(t *testing.T) {
	path, err := fixtures.WritePDF(t.TempDir(), "sample.pdf", "First page", "", "Third (page)")
	if err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	doc, err := OpenPDF(path)
	if err != nil {
		t.Fatalf("OpenPDF failed: %v", err)
	}
	defer doc.Close()

	n, err := doc.NumPages()
	if err != nil {
		t.Fatalf("NumPages failed: %v", err)
	}
	if n != 3 {
		t.Fatalf("Expected 3 pages, got %d", n)
	}

	tests := []struct {
		page     int
		contains string
	}{
		{1, "First page"},
		{3, "Third (page)"},
	}
	for _, tt := range tests {
		text, err := doc.PageText(tt.page)
		if err != nil {
			t.Errorf("PageText(%d) failed: %v", tt.page, err)
			continue
		}
		if !strings.Contains(text, tt.contains) {
			t.Errorf("PageText(%d) = %q, expected to contain %q", tt.page, text, tt.contains)
		}
	}

	text, err := doc.PageText(2)
	if err != nil {
		t.Fatalf("PageText(2) failed: %v", err)
	}
	if strings.TrimSpace(text) != "" {
		t.Errorf("Expected blank page 2, got %q", text)
	}
}

func TestOpenPDFInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.pdf")
	if err := os.WriteFile(path, []byte("This is not a PDF"), 0644); err != nil {
		t.Fatalf("Failed to write test file: %v", err)
	}

	if doc, err := OpenPDF(path); err == nil {
		doc.Close()
		t.Error("Expected error for invalid PDF")
	}
}
