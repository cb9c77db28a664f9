package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/laboratoriolopez/labsite/internal/auth"
	"github.com/laboratoriolopez/labsite/internal/pages"
	"github.com/laboratoriolopez/labsite/internal/robots"
	"github.com/laboratoriolopez/labsite/internal/sitemap"
)

// Config holds server configuration.
type Config struct {
	Port     int
	Origin   string // public origin, used for robots.txt and sitemap.xml
	AllowAll bool   // allow all CORS origins (dev mode)
}

// Server is the site's HTTP server.
type Server struct {
	cfg        Config
	pages      *pages.Pages
	sessions   *auth.CookieProvider
	logger     *zap.Logger
	router     chi.Router
	httpServer *http.Server
}

// New creates a server. sessions may be nil, in which case pages render
// in an empty session scope.
func New(cfg Config, pageSet *pages.Pages, sessions *auth.CookieProvider, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:      cfg,
		pages:    pageSet,
		sessions: sessions,
		logger:   logger,
	}

	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.GetHead)
	r.Use(requestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{s.cfg.Origin},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	robotsHandler := robots.Handler(s.cfg.Origin)
	r.Get("/robots.txt", robotsHandler.ServeHTTP)
	r.Head("/robots.txt", robotsHandler.ServeHTTP)

	var paths []string
	if s.pages != nil {
		paths = s.pages.Paths()
	}
	sitemapHandler := sitemap.Handler(s.cfg.Origin, paths)
	r.Get(sitemap.Path, sitemapHandler.ServeHTTP)
	r.Head(sitemap.Path, sitemapHandler.ServeHTTP)

	// Every page renders inside the session scope.
	r.Group(func(r chi.Router) {
		var provider auth.Provider = anonymous{}
		if s.sessions != nil {
			provider = s.sessions
		}
		r.Use(auth.SessionProvider(provider, s.logger))
		if s.sessions != nil {
			r.Use(s.sessions.IssueCookie)
		}
		if s.pages != nil {
			s.pages.RegisterRoutes(r)
		}
	})

	return r
}

// anonymous is the Provider used when no session store is configured.
type anonymous struct{}

func (anonymous) Session(*http.Request) (*auth.Session, error) { return nil, nil }

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown is called. It returns
// nil after a clean shutdown.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("labsite server listening", zap.String("addr", ln.Addr().String()))
	if err := s.httpServer.Serve(ln); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
