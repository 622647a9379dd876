package server

import (
	"context"
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

	"github.com/feedvault/feedvault/pkg/domain"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store
//go:generate moq -out mocks/syncer.go -pkg mocks -skip-ensure -fmt goimports . Syncer
//go:generate moq -out mocks/coordinator.go -pkg mocks -skip-ensure -fmt goimports . Coordinator

// Server is the thin HTTP surface over the cache. Read endpoints never touch
// the network; refresh endpoints drive the synchronizer and return per-feed
// outcomes for the caller to display.
type Server struct {
	store       Store
	syncer      Syncer
	coordinator Coordinator
	feeds       []domain.Feed
	feedByID    map[string]domain.Feed
	version     string
	debug       bool
	listen      string
	timeout     time.Duration

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Store provides cached reads for display
type Store interface {
	GetFeedMeta(ctx context.Context, feedID string) (*domain.Feed, error)
	ListArticles(ctx context.Context, feedID string, limit int) ([]domain.Article, error)
	CountArticles(ctx context.Context, feedID string) (int, error)
}

// Syncer refreshes a single feed on demand
type Syncer interface {
	Sync(ctx context.Context, src domain.Feed) domain.SyncResult
}

// Coordinator refreshes all feeds on demand
type Coordinator interface {
	SyncAll(ctx context.Context, feeds []domain.Feed) map[string]domain.SyncResult
}

// Config holds server construction parameters
type Config struct {
	Listen  string
	Timeout time.Duration
	Version string
	Debug   bool
}

// New initializes a new server instance over the given collaborators and
// configured feed list
func New(cfg Config, st Store, syncer Syncer, coordinator Coordinator, feeds []domain.Feed) *Server {
	byID := make(map[string]domain.Feed, len(feeds))
	for _, f := range feeds {
		byID[f.ID] = f
	}

	s := &Server{
		store:       st,
		syncer:      syncer,
		coordinator: coordinator,
		feeds:       feeds,
		feedByID:    byID,
		version:     cfg.Version,
		debug:       cfg.Debug,
		listen:      cfg.Listen,
		timeout:     cfg.Timeout,
		router:      routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	log.Printf("[INFO] starting server on %s", s.listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         s.listen,
		Handler:      s.router,
		ReadTimeout:  s.timeout,
		WriteTimeout: s.timeout,
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
	s.router.Use(rest.AppInfo("feedvault", "feedvault", s.version))
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
		r.HandleFunc("GET /feeds", s.feedsHandler)
		r.HandleFunc("GET /feeds/{id}/articles", s.articlesHandler)
		r.HandleFunc("POST /feeds/{id}/refresh", s.refreshFeedHandler)
		r.HandleFunc("POST /refresh", s.refreshAllHandler)
	})
}
