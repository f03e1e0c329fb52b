package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pulsemetrics/analytics-manager/internal/apisrv/analytics"
	"github.com/pulsemetrics/analytics-manager/internal/apisrv/auth"
	"github.com/pulsemetrics/analytics-manager/internal/ratelimit"
)

// Config is the configuration for the http server
type Config struct {
	Port           string   `mapstructure:"port"`
	Address        string   `mapstructure:"address"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Server is the http server
type Server struct {
	hs   *http.Server
	c    *Config
	done chan struct{}
}

// New creates a new server
func New(config *Config) *Server {
	return &Server{
		c:    config,
		done: make(chan struct{}),
	}
}

// Done returns a channel that is closed when the http server exits
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Router builds the full route tree. Auth endpoints are open; everything
// under /api/analytics, /api/sources and /api/reports requires a bearer token.
func (s *Server) Router(authServer *auth.Server, analyticsServer *analytics.Server) http.Handler {
	h := &handlers{
		auth:      authServer,
		analytics: analyticsServer,
		limiter:   ratelimit.NewServiceLimiter(),
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.c.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", h.healthz)

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)

		r.Group(func(r chi.Router) {
			r.Use(authServer.WithAuth)

			r.Post("/analytics/run", h.runReport)

			r.Route("/sources", func(r chi.Router) {
				r.Post("/", h.addSource)
				r.Get("/", h.listSources)
				r.Get("/{sourceID}", h.getSource)
				r.Delete("/{sourceID}", h.deleteSource)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Post("/", h.addReport)
				r.Get("/", h.listReports)
				r.Get("/{reportID}", h.getReport)
				r.Delete("/{reportID}", h.deleteReport)
			})
		})
	})

	return r
}

// Start starts the server
func (s *Server) Start(ctx context.Context, authServer *auth.Server, analyticsServer *analytics.Server) error {
	ctx, cancel := context.WithCancel(ctx)
	hsDone := make(chan struct{})

	go func() {
		<-hsDone
		close(s.done)
	}()

	listenerAddr := fmt.Sprintf("%s:%s", s.c.Address, s.c.Port)
	s.hs = &http.Server{
		Addr:              listenerAddr,
		Handler:           s.Router(authServer, analyticsServer),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Default().InfoContext(ctx, fmt.Sprintf("analytics-manager new listener on: http://%v", listenerAddr))
		err := s.hs.ListenAndServe()
		if err == http.ErrServerClosed {
			slog.Default().InfoContext(ctx, "http server returned")
		} else {
			slog.Default().ErrorContext(ctx, "http server exited with an error",
				slog.String("err", err.Error()))
		}
		cancel()
		close(hsDone)
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		if err := s.hs.Shutdown(shutdownCtx); err != nil {
			slog.Default().ErrorContext(ctx, "http server shutdown failed",
				slog.String("err", err.Error()))
		}
	}()

	return nil
}
