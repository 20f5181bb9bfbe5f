package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docintel-labs/docintel-core/internal/core/ports/driving"
)

// Pinger is a simple health check interface
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	router     *http.ServeMux
	version    string

	// Upload policy
	allowedExtensions map[string]bool
	maxFileSize       int64

	// Services
	authService     driving.AuthService
	ingestService   driving.IngestService
	queryService    driving.QueryService
	decisionService driving.DecisionService
	docService      driving.DocumentService

	// Infrastructure health checks (optional, may be nil)
	db    Pinger
	cache Pinger
}

// Config holds server configuration
type Config struct {
	Host              string
	Port              int
	Version           string
	AllowedOrigins    []string
	AllowedExtensions []string
	MaxFileSize       int64
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Host:              "0.0.0.0",
		Port:              8080,
		Version:           "dev",
		AllowedOrigins:    []string{"*"},
		AllowedExtensions: []string{".pdf", ".docx", ".txt"},
		MaxFileSize:       10 * 1024 * 1024,
	}
}

// NewServer creates a new HTTP server
func NewServer(
	cfg Config,
	authService driving.AuthService,
	ingestService driving.IngestService,
	queryService driving.QueryService,
	decisionService driving.DecisionService,
	docService driving.DocumentService,
	db Pinger, // can be nil
	cache Pinger, // can be nil
) *Server {
	allowed := make(map[string]bool, len(cfg.AllowedExtensions))
	for _, ext := range cfg.AllowedExtensions {
		allowed[ext] = true
	}

	s := &Server{
		router:            http.NewServeMux(),
		version:           cfg.Version,
		allowedExtensions: allowed,
		maxFileSize:       cfg.MaxFileSize,
		authService:       authService,
		ingestService:     ingestService,
		queryService:      queryService,
		decisionService:   decisionService,
		docService:        docService,
		db:                db,
		cache:             cache,
	}

	cors := NewCORSMiddleware(cfg.AllowedOrigins)
	logging := NewLoggingMiddleware()
	recovery := NewRecoveryMiddleware()
	handler := cors.Handler(logging.Handler(recovery.Handler(s.router)))

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      handler,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	// Liveness endpoints (no auth)
	s.router.HandleFunc("GET /", s.handleRoot)
	s.router.HandleFunc("GET /health", s.handleHealth)

	// Auth endpoint (public)
	s.router.HandleFunc("POST /api/auth/verify", s.handleVerifyToken)

	// Document pipeline. Auth is optional: a valid bearer token scopes the
	// request to the token's user, otherwise the explicit user_id or the
	// default tenant applies.
	s.router.HandleFunc("POST /api/upload", s.handleUpload)
	s.router.HandleFunc("POST /api/query", s.handleQuery)
	s.router.HandleFunc("POST /api/decision-mode", s.handleDecisionMode)
	s.router.HandleFunc("GET /api/documents", s.handleListDocuments)
	s.router.HandleFunc("POST /api/documents/clear", s.handleClearDocuments)
}

// Start starts the HTTP server with graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for OS signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown signal or listen failure
	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-stop:
	}
	slog.Info("shutting down server")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// Stop stops the server
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Handler exposes the configured handler chain. Intended for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
