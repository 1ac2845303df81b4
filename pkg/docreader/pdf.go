package docreader

import (
	"strings"

	"github.com/ukaji3/docreader-go/pkg/docreader/models"
	"github.com/ukaji3/docreader-go/pkg/docreader/parser"
	"go.uber.org/zap"
)

// pageSeparator joins non-blank page texts in ReadPDF.
const pageSeparator = "\n\n"

// ReadPDF extracts all text from a PDF file using default options.
func ReadPDF(path string) (string, error) {
	return New(DefaultOptions()).ReadPDF(path)
}

// ExtractTextByPage extracts text per page from a PDF file using default options.
func ExtractTextByPage(path string) ([]models.Page, error) {
	return New(DefaultOptions()).ExtractTextByPage(path)
}

// ReadPDF extracts the text of every page and joins the non-blank ones with
// a blank line. A document without any text yields "".
func (e *Extractor) ReadPDF(path string) (string, error) {
	pages, err := e.ExtractTextByPage(path)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(pages))
	for _, p := range pages {
		if strings.TrimSpace(p.Text) != "" {
			parts = append(parts, p.Text)
		}
	}
	return strings.Join(parts, pageSeparator), nil
}

// ExtractTextByPage returns one Page per page in document order, including
// pages without text.
func (e *Extractor) ExtractTextByPage(path string) ([]models.Page, error) {
	if err := checkExists(FormatPDF, path); err != nil {
		return nil, err
	}

	doc, err := parser.OpenPDF(path)
	if err != nil {
		return nil, NewExtractionError(FormatPDF, path, err)
	}
	defer doc.Close()

	n, err := doc.NumPages()
	if err != nil {
		return nil, NewExtractionError(FormatPDF, path, err)
	}

	pages := make([]models.Page, 0, n)
	for num := 1; num <= n; num++ {
		text, err := doc.PageText(num)
		if err != nil {
			return nil, NewExtractionError(FormatPDF, path, err)
		}
		pages = append(pages, models.NewPage(num, text))
	}

	e.log.Debug("extracted pdf",
		zap.String("path", path),
		zap.Int("pages", len(pages)))
	return pages, nil
}
