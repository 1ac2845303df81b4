package docreader

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"
)

// Extractor runs document and spreadsheet extraction with fixed options.
// It holds no state between calls and is safe for concurrent use.
type Extractor struct {
	opts Options
	log  *zap.Logger
}

// New creates an Extractor.
func New(opts Options) *Extractor {
	return &Extractor{
		opts: opts,
		log:  opts.logger(),
	}
}

// checkExists fails with a NotFoundError before any parser is involved.
func checkExists(format Format, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &NotFoundError{Format: format, Path: path}
		}
		return NewExtractionError(format, path, err)
	}
	return nil
}
