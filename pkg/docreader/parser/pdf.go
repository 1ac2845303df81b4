package parser

import (
	"fmt"
	"os"

	"github.com/ledongthuc/pdf"
)

// PDFDocument is an opened PDF file. Close releases the file handle.
type PDFDocument struct {
	file   *os.File
	reader *pdf.Reader
	fonts  map[string]*pdf.Font
}

// OpenPDF opens a PDF file for page-wise text extraction.
// The file is closed again if the document cannot be parsed.
func OpenPDF(path string) (*PDFDocument, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	r, err := newPDFReader(f, fi.Size())
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return &PDFDocument{
		file:   f,
		reader: r,
		fonts:  make(map[string]*pdf.Font),
	}, nil
}

// newPDFReader guards against panics the pdf package raises on damaged
// cross-reference data.
func newPDFReader(f *os.File, size int64) (r *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			r, err = nil, fmt.Errorf("malformed PDF: %v", p)
		}
	}()
	return pdf.NewReader(f, size)
}

// NumPages returns the number of pages in the document.
func (d *PDFDocument) NumPages() (n int, err error) {
	defer func() {
		if p := recover(); p != nil {
			n, err = 0, fmt.Errorf("malformed page tree: %v", p)
		}
	}()
	return d.reader.NumPage(), nil
}

// PageText extracts the plain text of a page (1-based).
// A page without content yields an empty string.
func (d *PDFDocument) PageText(num int) (text string, err error) {
	defer func() {
		if p := recover(); p != nil {
			text, err = "", fmt.Errorf("page %d: %v", num, p)
		}
	}()

	p := d.reader.Page(num)
	if p.V.IsNull() {
		return "", fmt.Errorf("page %d: not found", num)
	}
	if p.V.Key("Contents").IsNull() {
		return "", nil
	}
	for _, name := range p.Fonts() {
		if _, ok := d.fonts[name]; ok {
			continue
		}
		font := p.Font(name)
		d.fonts[name] = &font
	}
	text, err = p.GetPlainText(d.fonts)
	if err != nil {
		return "", fmt.Errorf("page %d: %w", num, err)
	}
	return text, nil
}

// Close closes the underlying file.
func (d *PDFDocument) Close() error {
	return d.file.Close()
}
