// Package server exposes the scheduling and trivia engines over a JSON
// HTTP API. It owns no business logic: every handler validates its request
// shape, delegates to an injected collaborator and renders the result.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"
	"golang.org/x/sync/singleflight"

	"github.com/pucklab/puckdesk/pkg/config"
	"github.com/pucklab/puckdesk/pkg/domain"
	"github.com/pucklab/puckdesk/pkg/engine"
	"github.com/pucklab/puckdesk/pkg/trivia"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/database.go -pkg mocks -skip-ensure -fmt goimports . Database
//go:generate moq -out mocks/generator.go -pkg mocks -skip-ensure -fmt goimports . ScheduleGenerator
//go:generate moq -out mocks/builder.go -pkg mocks -skip-ensure -fmt goimports . TriviaBuilder
//go:generate moq -out mocks/orchestrator.go -pkg mocks -skip-ensure -fmt goimports . SetOrchestrator
//go:generate moq -out mocks/importer.go -pkg mocks -skip-ensure -fmt goimports . FeedImporter

// Server represents HTTP server instance
type Server struct {
	config       ConfigProvider
	db           Database
	generator    ScheduleGenerator
	builder      TriviaBuilder
	orchestrator SetOrchestrator
	importer     FeedImporter
	version      string
	debug        bool

	generateGroup singleflight.Group // de-dup concurrent identical generation requests

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// ScheduleGenerator builds daily schedules
type ScheduleGenerator interface {
	Generate(ctx context.Context, req engine.GenerateRequest) (*domain.GenerateResult, error)
}

// TriviaBuilder builds a single trivia set
type TriviaBuilder interface {
	BuildSet(ctx context.Context, req trivia.BuildRequest) *domain.BuildResult
}

// SetOrchestrator runs automated multi-set builds
type SetOrchestrator interface {
	BuildAutomatedSets(ctx context.Context, req trivia.AutomatedRequest) (*domain.BatchResult, error)
}

// FeedImporter pulls feed entries into the content pool
type FeedImporter interface {
	ImportFeed(ctx context.Context, url string, contentType domain.ContentType, theme string) (int, error)
}

// Database interface for server read operations
type Database interface {
	GetDailySchedule(ctx context.Context, publishDate string) (*domain.DailySchedule, error)
	ListDailySchedules(ctx context.Context, from, to string) ([]domain.DailySchedule, error)
	ListTriviaSets(ctx context.Context, setType domain.TriviaType, theme string, limit int) ([]domain.TriviaSet, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
	GetScheduleConfig() config.ScheduleConfig
	GetTriviaConfig() config.TriviaConfig
}

// Params collects server dependencies
type Params struct {
	Config       ConfigProvider
	DB           Database
	Generator    ScheduleGenerator
	Builder      TriviaBuilder
	Orchestrator SetOrchestrator
	Importer     FeedImporter
	Version      string
	Debug        bool
}

// New initializes a new server instance
func New(p Params) *Server {
	s := &Server{
		config:       p.Config,
		db:           p.DB,
		generator:    p.Generator,
		builder:      p.Builder,
		orchestrator: p.Orchestrator,
		importer:     p.Importer,
		version:      p.Version,
		debug:        p.Debug,
		router:       routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("puckdesk", "pucklab", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /schedules/generate", s.generateScheduleHandler)
		r.HandleFunc("GET /schedules/{date}", s.getScheduleHandler)
		r.HandleFunc("GET /schedules", s.listSchedulesHandler)

		r.HandleFunc("POST /trivia/sets", s.buildSetHandler)
		r.HandleFunc("POST /trivia/automated", s.automatedBuildHandler)
		r.HandleFunc("GET /trivia/sets", s.listSetsHandler)

		r.HandleFunc("POST /import/feed", s.importFeedHandler)
	})
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
