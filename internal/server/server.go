// Package server exposes the galaxy pipeline and lead capture over HTTP.
//
// Routes:
//
//	GET  /healthz
//	GET  /api/v1/galaxy/structure?stars=N
//	GET  /api/v1/galaxy/layout?stars=N&width=&height=&padding=&top_margin=
//	GET  /api/v1/galaxy/render.{format}?stars=N&style=&title=&orbits=&type=&background=
//	POST /api/v1/leads
//
// Errors are returned as {"error":{"code":"...","message":"..."}} with the
// status from errors.HTTPStatus.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	"github.com/plinyoo/starfield/pkg/config"
	"github.com/plinyoo/starfield/pkg/errors"
	"github.com/plinyoo/starfield/pkg/leads"
	"github.com/plinyoo/starfield/pkg/pipeline"
)

// Server serves the HTTP API.
type Server struct {
	cfg     config.Config
	runner  *pipeline.Runner
	leads   *leads.Service
	logger  *log.Logger
	limiter *RateLimiter
	handler http.Handler
}

// New wires the router. runner and svc must be non-nil.
func New(cfg config.Config, runner *pipeline.Runner, svc *leads.Service, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		cfg:    cfg,
		runner: runner,
		leads:  svc,
		logger: logger.WithPrefix("http"),
		limiter: NewRateLimiter(RateLimitConfig{
			RequestsPerSecond: cfg.RateLimit.RequestsPerSecond,
			Burst:             cfg.RateLimit.Burst,
			Enabled:           cfg.RateLimit.Enabled,
			TrustProxy:        cfg.Server.TrustProxy,
		}, logger),
	}
	s.handler = s.routes()
	return s
}

func (s *Server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if s.cfg.Server.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(s.recoverer)
	r.Use(s.requestLogger)
	r.Use(s.cors().Handler)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, s.logger, notFound(r.URL.Path))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: errorDetail{
			Code:    errors.ErrCodeUnsupported,
			Message: "method " + r.Method + " not allowed",
		}})
	})

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(s.limiter.Middleware)
		r.Get("/galaxy/structure", s.handleStructure)
		r.Get("/galaxy/layout", s.handleLayout)
		r.Get("/galaxy/render.{format}", s.handleRender)
		r.Post("/leads", s.handleSubmitLead)
	})

	return r
}

func (s *Server) cors() *cors.Cors {
	s.logger.Debug("cors configured", "allowed_origins", s.cfg.Server.AllowedOrigins, "debug", s.cfg.Server.CORSDebug)
	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Cache", "Retry-After"},
		Debug:          s.cfg.Server.CORSDebug,
	})
}

// Handler returns the root handler, for tests and embedding.
func (s *Server) Handler() http.Handler { return s.handler }

// Run listens on the configured address until ctx is cancelled, then shuts
// down within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.handler,
		ReadTimeout:  s.cfg.Server.ReadTimeout,
		WriteTimeout: s.cfg.Server.WriteTimeout,
		IdleTimeout:  s.cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	limiterCtx, stopLimiter := context.WithCancel(context.Background())
	defer stopLimiter()
	go s.limiter.Cleanup(limiterCtx, time.Minute)

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", ln.Addr().String())
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if stderrors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	grace := s.cfg.Server.ShutdownTimeout
	if grace <= 0 {
		grace = 10 * time.Second
	}
	s.logger.Info("shutting down", "grace", grace)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !stderrors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
