package server

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ukaji3/docreader-go/pkg/docreader"
	"github.com/ukaji3/docreader-go/pkg/docreader/output"
	"go.uber.org/zap"
)

type helloResponse struct {
	Message string `json:"message"`
	App     string `json:"app"`
	Version string `json:"version"`
}

type healthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// healthTimeLayout renders UTC with microseconds and a Z suffix.
const healthTimeLayout = "2006-01-02T15:04:05.000000Z"

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, helloResponse{
		Message: "Hello World",
		App:     AppName,
		Version: Version,
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Timestamp: s.now().UTC().Format(healthTimeLayout),
	})
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r, ".pdf")
	if err != nil {
		s.writeError(w, uploadStatus(err), err)
		return
	}
	defer cleanup()

	if queryBool(r, "pages") {
		pages, err := s.extractor.ExtractTextByPage(path)
		s.respond(w, r, pages, err)
		return
	}
	text, err := s.extractor.ReadPDF(path)
	s.respond(w, r, map[string]string{"text": text}, err)
}

func (s *Server) handleXLSX(w http.ResponseWriter, r *http.Request) {
	path, cleanup, err := s.saveUpload(w, r, ".xlsx")
	if err != nil {
		s.writeError(w, uploadStatus(err), err)
		return
	}
	defer cleanup()

	if queryBool(r, "sheets") {
		sheets, err := s.extractor.ExtractSheets(path)
		s.respond(w, r, sheets, err)
		return
	}
	data, err := s.extractor.ReadXLSX(path)
	s.respond(w, r, data, err)
}

// saveUpload stores the multipart "file" field in a temporary file and
// returns its path with a function that removes it.
func (s *Server) saveUpload(w http.ResponseWriter, r *http.Request, ext string) (string, func(), error) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	src, _, err := r.FormFile("file")
	if err != nil {
		return "", nil, fmt.Errorf("read upload: %w", err)
	}
	defer src.Close()

	dst, err := os.CreateTemp("", "docreader-*"+ext)
	if err != nil {
		return "", nil, err
	}
	cleanup := func() { _ = os.Remove(dst.Name()) }

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		cleanup()
		return "", nil, fmt.Errorf("store upload: %w", err)
	}
	if err := dst.Close(); err != nil {
		cleanup()
		return "", nil, err
	}
	return filepath.Clean(dst.Name()), cleanup, nil
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, v interface{}, err error) {
	if err == nil {
		s.writeJSON(w, http.StatusOK, v)
		return
	}
	s.logger.Warn("extraction failed",
		zap.String("request_id", r.Header.Get(RequestIDHeader)),
		zap.Error(err))
	if errors.Is(err, docreader.ErrParseFailure) {
		s.writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	s.writeError(w, http.StatusInternalServerError, err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	data, err := output.ToJSON(v, false)
	if err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		s.logger.Debug("failed to write response", zap.Error(err))
	}
}

// uploadStatus maps a saveUpload error to a response status.
func uploadStatus(err error) int {
	if errors.As(err, new(*http.MaxBytesError)) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}

func queryBool(r *http.Request, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(key)))
	return err == nil && v
}
