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

	"github.com/apexchronicle/apex/pkg/domain"
	"github.com/apexchronicle/apex/pkg/feed"
	"github.com/apexchronicle/apex/pkg/page"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/pages.go -pkg mocks -skip-ensure -fmt goimports . Pages
//go:generate moq -out mocks/fetch_log.go -pkg mocks -skip-ensure -fmt goimports . FetchLog

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	pages     Pages
	fetchLog  FetchLog
	generator *feed.Generator
	sources   feed.Sources
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Pages builds page models, every loader returns the data, warnings of degraded branches and
// an error for invalid parameters
type Pages interface {
	Season() int
	Home(ctx context.Context, p page.NoParam) (domain.HomePage, []string, error)
	Drivers(ctx context.Context, p page.NoParam) (domain.DriversPage, []string, error)
	Calendar(ctx context.Context, year int) (domain.CalendarPage, []string, error)
	Results(ctx context.Context, q page.ResultsQuery) (domain.ResultsPage, []string, error)
	Standings(ctx context.Context, p page.NoParam) (domain.StandingsPage, []string, error)
	News(ctx context.Context, q page.NewsQuery) (domain.NewsPage, []string, error)
}

// FetchLog reads the log of upstream fetches
type FetchLog interface {
	Recent(ctx context.Context, limit int) ([]domain.FetchRecord, error)
	Summary(ctx context.Context) ([]domain.FetchSummary, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// Opts holds optional server settings
type Opts struct {
	Version string
	Debug   bool
	BaseURL string       // public address used in RSS and OPML links
	Sources feed.Sources // news feeds listed in OPML
}

// New initializes a new server instance
func New(cfg ConfigProvider, pages Pages, fetchLog FetchLog, opts Opts) *Server {
	s := &Server{
		config:    cfg,
		pages:     pages,
		fetchLog:  fetchLog,
		generator: feed.NewGenerator(opts.BaseURL),
		sources:   opts.Sources,
		version:   opts.Version,
		debug:     opts.Debug,
		router:    routegroup.New(http.NewServeMux()),
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
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		s.lock.Lock()
		defer s.lock.Unlock()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// Handler returns the router with all middlewares and routes
func (s *Server) Handler() http.Handler {
	return s.router
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("apex", "apexchronicle", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(64 * 1024)) // read-only api, no request bodies
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /fetches", s.fetchesHandler)

		r.HandleFunc("GET /home", s.homeHandler)
		r.HandleFunc("GET /news", s.newsHandler)
		r.HandleFunc("GET /drivers", s.driversHandler)
		r.HandleFunc("GET /calendar", s.calendarHandler)
		r.HandleFunc("GET /results", s.resultsHandler)
		r.HandleFunc("GET /standings", s.standingsHandler)
	})

	// exports
	s.router.HandleFunc("GET /rss", s.rssHandler)
	s.router.HandleFunc("GET /ics/{year}", s.icsHandler)
	s.router.HandleFunc("GET /opml", s.opmlHandler)
}
