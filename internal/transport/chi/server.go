// Package chi exposes the analysis pipeline over HTTP.
package chi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/hollis-cloud/resumerag/internal/domain"
	"github.com/hollis-cloud/resumerag/internal/logger"
	analyzeuc "github.com/hollis-cloud/resumerag/internal/usecase/analyze"
	healthuc "github.com/hollis-cloud/resumerag/internal/usecase/health"
)

const (
	resumeField         = "resume"
	jobDescriptionField = "job_description"

	// Mirrors the message the original frontend expects.
	missingInputsMessage = "Resume and Job Description are required"
)

// Server hosts the analyze and health endpoints.
type Server struct {
	analyze        *analyzeuc.Service
	health         *healthuc.Service
	logger         *zap.Logger
	maxUploadBytes int64
}

// NewServer creates the HTTP API server.
func NewServer(analyze *analyzeuc.Service, health *healthuc.Service, logger *zap.Logger, maxUploadMB int) *Server {
	return &Server{
		analyze:        analyze,
		health:         health,
		logger:         logger,
		maxUploadBytes: int64(maxUploadMB) << 20,
	}
}

// Routes registers the API routes on the given router.
func (s *Server) Routes(r chi.Router) {
	r.Post("/v1/analyze", s.handleAnalyze)
	r.Get("/healthz", s.handleHealthz)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)
}

// handleAnalyze handles POST /v1/analyze: multipart form with a PDF file
// field and a text field.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)
	if err := r.ParseMultipartForm(s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, missingInputsMessage)
		return
	}

	var resumeData []byte
	if file, _, err := r.FormFile(resumeField); err == nil {
		defer file.Close()
		resumeData, err = io.ReadAll(file)
		if err != nil {
			writeError(w, http.StatusBadRequest, "could not read resume upload")
			return
		}
	}
	jobDescription := r.FormValue(jobDescriptionField)

	result, err := s.analyze.Analyze(r.Context(), resumeData, jobDescription)
	if err != nil {
		s.handleDomainError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleHealthz handles GET /healthz.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status == healthuc.Unhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingResume),
		errors.Is(err, domain.ErrMissingJobDescription):
		writeError(w, http.StatusBadRequest, missingInputsMessage)
	case errors.Is(err, domain.ErrExtractionFailed):
		writeError(w, http.StatusUnprocessableEntity, "could not extract text from the resume PDF")
	default:
		logger.FromContext(r.Context()).Error("analyze failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
