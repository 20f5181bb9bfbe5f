package http

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/docintel-labs/docintel-core/internal/core/domain"
	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// StatusResponse represents a health status response
type StatusResponse struct {
	Status     string            `json:"status" example:"ok"`
	Components map[string]string `json:"components,omitempty"`
}

// ServiceInfoResponse describes the running service
type ServiceInfoResponse struct {
	Service string `json:"service" example:"docintel-core"`
	Version string `json:"version" example:"1.0.0"`
	Status  string `json:"status" example:"running"`
}

// UploadResponse summarises a processed upload
type UploadResponse struct {
	Message       string `json:"message" example:"File processed successfully"`
	Filename      string `json:"filename" example:"contract.pdf"`
	ChunksCreated int    `json:"chunks_created" example:"12"`
	TenantID      string `json:"tenant_id" example:"alice"`
}

// QueryRequest is a natural-language question over uploaded documents
type QueryRequest struct {
	Question string `json:"question" example:"What is the termination notice period?"`
	UserID   string `json:"user_id,omitempty" example:"alice"`
}

// DecisionRequest runs one of the fixed analytical templates
type DecisionRequest struct {
	Query  string `json:"query" example:"Assess the risks in this agreement"`
	Mode   string `json:"mode" example:"risk_analysis"`
	UserID string `json:"user_id,omitempty" example:"alice"`
}

// ClearRequest narrows a deletion to one file when filename is set
type ClearRequest struct {
	Filename string `json:"filename,omitempty" example:"contract.pdf"`
	UserID   string `json:"user_id,omitempty" example:"alice"`
}

// VerifyRequest carries an identity-provider token to verify
type VerifyRequest struct {
	Token string `json:"token"`
}

// DocumentListResponse wraps a tenant's document listing
type DocumentListResponse struct {
	Documents []*domain.Document `json:"documents"`
	Count     int                `json:"count" example:"2"`
}

// handleRoot godoc
// @Summary Service info
// @Description Returns service name, version and status
// @Tags health
// @Produce json
// @Success 200 {object} ServiceInfoResponse
// @Router / [get]
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	// ServeMux routes every unmatched path to "/"; only the root itself
	// is a valid endpoint.
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	writeJSON(w, http.StatusOK, ServiceInfoResponse{
		Service: "docintel-core",
		Version: s.version,
		Status:  "running",
	})
}

// handleHealth godoc
// @Summary Health check
// @Description Returns service health including database and cache connectivity
// @Tags health
// @Produce json
// @Success 200 {object} StatusResponse
// @Failure 503 {object} StatusResponse
// @Router /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := map[string]string{}
	healthy := true

	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			components["database"] = "unhealthy"
			healthy = false
		} else {
			components["database"] = "healthy"
		}
	}
	if s.cache != nil {
		if err := s.cache.Ping(r.Context()); err != nil {
			components["cache"] = "unhealthy"
			healthy = false
		} else {
			components["cache"] = "healthy"
		}
	}

	status := http.StatusOK
	resp := StatusResponse{Status: "ok", Components: components}
	if !healthy {
		status = http.StatusServiceUnavailable
		resp.Status = "degraded"
	}
	writeJSON(w, status, resp)
}

// handleVerifyToken godoc
// @Summary Verify an OAuth token
// @Description Verifies a Google ID or access token and returns the user identity
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyRequest true "Token to verify"
// @Success 200 {object} domain.UserInfo
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/verify [post]
func (s *Server) handleVerifyToken(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	user, err := s.authService.VerifyToken(r.Context(), req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrTokenInvalid) {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		slog.Error("token verification failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Verification failed")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleUpload godoc
// @Summary Upload a document
// @Description Accepts a PDF, DOCX or TXT file, extracts its text and indexes it for the tenant
// @Tags documents
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Document to index"
// @Param user_id formData string false "Explicit tenant when no token is supplied"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/upload [post]
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Bound the whole request body; a small overhead covers multipart framing.
	r.Body = http.MaxBytesReader(w, r.Body, s.maxFileSize+1024*1024)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	ext := strings.ToLower(filepath.Ext(filename))
	if !s.allowedExtensions[ext] {
		writeError(w, http.StatusBadRequest, "Unsupported file type: "+ext)
		return
	}
	if header.Size > s.maxFileSize {
		writeError(w, http.StatusBadRequest, "File too large")
		return
	}

	resolution := s.authService.ResolveTenant(r.Context(), extractBearerToken(r), r.FormValue("user_id"))

	// Spool the upload to disk so extractors can re-read it.
	tmp, err := os.CreateTemp("", "upload-*"+ext)
	if err != nil {
		slog.Error("failed to create temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process upload")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		slog.Error("failed to save upload", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process upload")
		return
	}
	if err := tmp.Close(); err != nil {
		slog.Error("failed to close temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to process upload")
		return
	}

	result, err := s.ingestService.Ingest(r.Context(), driving.IngestRequest{
		Path:     tmpPath,
		Filename: filename,
		Size:     header.Size,
		TenantID: resolution.TenantID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedFileType):
			writeError(w, http.StatusBadRequest, "Unsupported file type: "+ext)
		case errors.Is(err, domain.ErrEmptyDocument):
			writeError(w, http.StatusBadRequest, "No text could be extracted from the document")
		case errors.Is(err, domain.ErrFileTooLarge):
			writeError(w, http.StatusBadRequest, "File too large")
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Invalid upload")
		case errors.Is(err, domain.ErrServiceUnavailable):
			writeError(w, http.StatusServiceUnavailable, "Embedding service unavailable")
		default:
			slog.Error("upload failed", "filename", filename, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to process document")
		}
		return
	}

	writeJSON(w, http.StatusOK, UploadResponse{
		Message:       "File processed successfully",
		Filename:      result.Filename,
		ChunksCreated: result.ChunksCreated,
		TenantID:      result.TenantID,
	})
}

// handleQuery godoc
// @Summary Query documents
// @Description Answers a natural-language question over the tenant's indexed documents with cited sources
// @Tags query
// @Accept json
// @Produce json
// @Param request body QueryRequest true "Question"
// @Success 200 {object} domain.Answer
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/query [post]
func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	var req QueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeError(w, http.StatusBadRequest, "Question is required")
		return
	}

	resolution := s.authService.ResolveTenant(r.Context(), extractBearerToken(r), req.UserID)

	answer, err := s.queryService.Answer(r.Context(), req.Question, resolution.TenantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Question is required")
		case errors.Is(err, domain.ErrServiceUnavailable):
			writeError(w, http.StatusServiceUnavailable, "AI service unavailable")
		default:
			slog.Error("query failed", "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to answer question")
		}
		return
	}

	writeJSON(w, http.StatusOK, answer)
}

// handleDecisionMode godoc
// @Summary Run a decision-mode analysis
// @Description Applies a fixed analytical template (risk_analysis, revenue_analysis, clause_extraction, summary) over the tenant's documents
// @Tags query
// @Accept json
// @Produce json
// @Param request body DecisionRequest true "Query and mode"
// @Success 200 {object} domain.DecisionResult
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/decision-mode [post]
func (s *Server) handleDecisionMode(w http.ResponseWriter, r *http.Request) {
	var req DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		writeError(w, http.StatusBadRequest, "Query is required")
		return
	}

	// Validate the mode before touching retrieval or the tenant's data.
	mode, err := domain.ParseDecisionMode(req.Mode)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid mode: "+req.Mode)
		return
	}

	resolution := s.authService.ResolveTenant(r.Context(), extractBearerToken(r), req.UserID)

	result, err := s.decisionService.Decide(r.Context(), req.Query, mode, resolution.TenantID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			writeError(w, http.StatusBadRequest, "Query is required")
		case errors.Is(err, domain.ErrServiceUnavailable):
			writeError(w, http.StatusServiceUnavailable, "AI service unavailable")
		default:
			slog.Error("decision mode failed", "mode", mode, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to run analysis")
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleListDocuments godoc
// @Summary List documents
// @Description Returns the documents uploaded by the tenant, most recent first
// @Tags documents
// @Produce json
// @Param user_id query string false "Explicit tenant when no token is supplied"
// @Success 200 {object} DocumentListResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	resolution := s.authService.ResolveTenant(r.Context(), extractBearerToken(r), r.URL.Query().Get("user_id"))

	docs, err := s.docService.List(r.Context(), resolution.TenantID)
	if err != nil {
		slog.Error("document listing failed", "tenant", resolution.TenantID, "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, DocumentListResponse{
		Documents: docs,
		Count:     len(docs),
	})
}

// handleClearDocuments godoc
// @Summary Clear documents
// @Description Deletes the tenant's indexed chunks, narrowed to one file when filename is given. Store failure is reported in the body, not as an error status.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body ClearRequest false "Optional filename filter"
// @Success 200 {object} domain.DeletionResult
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/documents/clear [post]
func (s *Server) handleClearDocuments(w http.ResponseWriter, r *http.Request) {
	var req ClearRequest
	if r.Body != nil && r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
	}

	resolution := s.authService.ResolveTenant(r.Context(), extractBearerToken(r), req.UserID)

	result := s.docService.Clear(r.Context(), resolution.TenantID, req.Filename)
	writeJSON(w, http.StatusOK, result)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, ErrorResponse{Error: message})
}
