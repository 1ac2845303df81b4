package docreader

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates the input file does not exist.
var ErrNotFound = errors.New("file not found")

// ErrParseFailure indicates the input file could not be opened or parsed.
var ErrParseFailure = errors.New("parse failure")

// Format names the kind of file an extractor reads.
type Format string

const (
	// FormatPDF is a paged PDF document.
	FormatPDF Format = "PDF"
	// FormatExcel is an xlsx workbook.
	FormatExcel Format = "Excel"
)

// noun returns the format as used in error messages.
func (f Format) noun() string {
	if f == FormatExcel {
		return "Excel file"
	}
	return string(f)
}

// NotFoundError reports a missing input file. It matches ErrNotFound.
type NotFoundError struct {
	Format Format
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s file not found: %s", e.Format, e.Path)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ExtractionError wraps a failure raised while opening or reading a file.
// It matches ErrParseFailure and unwraps to the original cause.
type ExtractionError struct {
	Format Format
	Path   string
	Err    error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Format.noun(), e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrParseFailure.
func (e *ExtractionError) Is(target error) bool {
	return target == ErrParseFailure
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(format Format, path string, err error) *ExtractionError {
	return &ExtractionError{
		Format: format,
		Path:   path,
		Err:    err,
	}
}
