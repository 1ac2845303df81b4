// Package fixtures builds small PDF documents and xlsx workbooks for tests.
package fixtures

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"
)

// PDF returns an uncompressed PDF with one page per entry in pages, set in
// Helvetica. An empty string produces a page without any text object.
func PDF(pages ...string) ([]byte, error) {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetCompression(false)
	doc.SetAutoPageBreak(false, 0)

	// Add every page before selecting a font: fpdf writes the current font
	// into each new page, which would leave a text object on blank pages.
	for range pages {
		doc.AddPage()
	}

	left, top, _, _ := doc.GetMargins()
	fontSet := false
	for i, text := range pages {
		if text == "" {
			continue
		}
		doc.SetPage(i + 1)
		// SetFont is a no-op once the font is current, so later pages get
		// their Tf operator from SetFontSize.
		if fontSet {
			doc.SetFontSize(12)
		} else {
			doc.SetFont("Helvetica", "", 12)
			fontSet = true
		}
		doc.SetXY(left, top)
		doc.MultiCell(0, 6, text, "", "L", false)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WritePDF writes PDF(pages...) to dir/name and returns the path.
func WritePDF(dir, name string, pages ...string) (string, error) {
	data, err := PDF(pages...)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// SamplePages are the two pages of the showcase document.
var SamplePages = []string{
	"Claude Code Features Showcase\nText extraction from PDF documents",
	"Page 2: Testing Data\nThis page verifies multi-page extraction",
}
