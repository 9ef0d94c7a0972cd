// Package server exposes feedback analysis over a JSON HTTP API
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedsense/pkg/analysis"
	"github.com/umputun/feedsense/pkg/domain"
	"github.com/umputun/feedsense/pkg/llm"
	"github.com/umputun/feedsense/pkg/service"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/feedback_service.go -pkg mocks -skip-ensure -fmt goimports . FeedbackService
//go:generate moq -out mocks/ai_status.go -pkg mocks -skip-ensure -fmt goimports . AIStatus
//go:generate moq -out mocks/verifier.go -pkg mocks -skip-ensure -fmt goimports . Verifier

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	feedback FeedbackService
	ai       AIStatus
	verifier Verifier
	version  string
	debug    bool

	maxBodySize  int64
	maxBulkItems int

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetRequestLimits() (maxBodySize int64, maxBulkItems int)
}

// FeedbackService handles feedback of authenticated users
type FeedbackService interface {
	EnsureProfile(ctx context.Context, user domain.User) (*domain.Profile, error)
	Analyze(ctx context.Context, text string, mode analysis.Mode) (domain.AnalysisRecord, error)
	ClassifyTexts(ctx context.Context, texts []string, batchSize int) ([]domain.Classification, error)
	Submit(ctx context.Context, user domain.User, in service.Input) (*domain.Feedback, error)
	Import(ctx context.Context, user domain.User, inputs []service.Input, batchSize int, onProgress llm.ProgressFunc) (service.ImportResult, error)
	Reanalyze(ctx context.Context, user domain.User, filter domain.FeedbackFilter, batchSize int) (service.ReanalyzeReport, error)
	List(ctx context.Context, user domain.User, filter domain.FeedbackFilter) ([]domain.Feedback, error)
	Update(ctx context.Context, user domain.User, id string, upd domain.FeedbackUpdate) (*domain.Feedback, error)
	Delete(ctx context.Context, user domain.User, id string) error
}

// AIStatus reports state of the external categorizer
type AIStatus interface {
	Available() bool
	Model() string
	Usage() llm.Usage
}

// Verifier authenticates bearer tokens
type Verifier interface {
	Verify(ctx context.Context, token string) (domain.User, error)
}

// New initializes a new server instance
func New(cfg ConfigProvider, feedback FeedbackService, ai AIStatus, verifier Verifier, version string, debug bool) *Server {
	maxBody, maxBulk := cfg.GetRequestLimits()
	if maxBody <= 0 {
		maxBody = 1024 * 1024
	}
	if maxBulk <= 0 {
		maxBulk = 1000
	}

	s := &Server{
		config:       cfg,
		feedback:     feedback,
		ai:           ai,
		verifier:     verifier,
		version:      version,
		debug:        debug,
		maxBodySize:  maxBody,
		maxBulkItems: maxBulk,
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	lgr.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	// no write timeout, re-analysis of many items runs at the categorizer rate limit
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		lgr.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			lgr.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("feedsense", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(s.maxBodySize))
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /ai/status", s.aiStatusHandler)

		// routes below require bearer token
		r.With(s.authMiddleware).Route(func(auth *routegroup.Bundle) {
			auth.HandleFunc("POST /profile", s.profileHandler)
			auth.HandleFunc("POST /classify", s.classifyHandler)
			auth.HandleFunc("GET /feedback", s.listFeedbackHandler)
			auth.HandleFunc("GET /feedback/export", s.exportFeedbackHandler)
			auth.HandleFunc("POST /feedback", s.createFeedbackHandler)
			auth.HandleFunc("POST /feedback/bulk", s.bulkFeedbackHandler)
			auth.HandleFunc("POST /feedback/reanalyze", s.reanalyzeHandler)
			auth.HandleFunc("PUT /feedback/{id}", s.updateFeedbackHandler)
			auth.HandleFunc("DELETE /feedback/{id}", s.deleteFeedbackHandler)
		})
	})
}

// renderJSON sends JSON response with the given status code
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			lgr.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON, details are logged but not exposed
func renderError(w http.ResponseWriter, r *http.Request, code int, err error, msg string) {
	rest.SendErrorJSON(w, r, lgr.Default(), code, err, msg)
}
