// Package docreader extracts text from PDF documents and cell data from
// xlsx workbooks.
package docreader

import "go.uber.org/zap"

// Options configures extraction behavior.
type Options struct {
	// Logger receives debug output. If nil, logging is disabled.
	Logger *zap.Logger
	// Password opens encrypted workbooks. Ignored for PDF files.
	Password string
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Logger: zap.NewNop(),
	}
}

func (o Options) logger() *zap.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return zap.NewNop()
}
