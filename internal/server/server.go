// Package server exposes the extractors over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/ukaji3/docreader-go/internal/config"
	"github.com/ukaji3/docreader-go/pkg/docreader"
	"go.uber.org/zap"
)

const (
	// AppName is reported by the root endpoint.
	AppName = "docreader"
	// Version is reported by the root endpoint and the CLI.
	Version = "0.1.0"
)

// Server serves the hello, health and extraction endpoints.
type Server struct {
	cfg       *config.Config
	extractor *docreader.Extractor
	logger    *zap.Logger
	now       func() time.Time
}

// New creates a Server.
func New(cfg *config.Config, extractor *docreader.Extractor, logger *zap.Logger) *Server {
	return &Server{
		cfg:       cfg,
		extractor: extractor,
		logger:    logger,
		now:       time.Now,
	}
}

// Handler returns the routed handler wrapped with request IDs, access
// logging and CORS.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleHello)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/pdf", s.handlePDF)
	mux.HandleFunc("POST /api/xlsx", s.handleXLSX)

	c := cors.New(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		MaxAge:           600,
	})
	return s.requestID(s.accessLog(c.Handler(mux)))
}

// ListenAndServe runs the server until ctx is canceled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting server", zap.String("addr", s.cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.logger.Info("shutting down server")
		return srv.Shutdown(shutdownCtx)
	}
}
