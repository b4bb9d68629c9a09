package server

import (
	"context"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"aihustle/internal/domain"
	"aihustle/internal/logging"
)

// Options configures limits and the optional API-key guard.
type Options struct {
	MaxBodyBytes        int64
	DefaultPerHour      int
	StrategistPerMinute int
	// APIKeyDigest enables RequireAPIKey on the builder and outreach routes
	// when non-empty.
	APIKeyDigest string
}

// Agents are the services the handlers read from.
type Agents struct {
	Builder    domain.BuilderService
	Outreach   domain.OutreachService
	Strategist domain.StrategistService
}

// Server serves the dashboard and the JSON API.
type Server struct {
	opts   Options
	agents Agents
	log    *zap.Logger
	view   *template.Template

	defaultLimiter    *rateLimiter
	strategistLimiter *rateLimiter
}

// New returns a Server. Zero limits in opts fall back to 100/hour, 10/minute
// and 16 MiB.
func New(opts Options, agents Agents, log *zap.Logger) *Server {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = 16 << 20
	}
	if opts.DefaultPerHour <= 0 {
		opts.DefaultPerHour = 100
	}
	if opts.StrategistPerMinute <= 0 {
		opts.StrategistPerMinute = 10
	}
	return &Server{
		opts:              opts,
		agents:            agents,
		log:               logging.Named(log, logging.CategoryHTTP),
		view:              dashboardView,
		defaultLimiter:    newRateLimiter(opts.DefaultPerHour, time.Hour),
		strategistLimiter: newRateLimiter(opts.StrategistPerMinute, time.Minute),
	}
}

// Handler returns the routed handler. Limiter state is shared by every
// handler returned from the same Server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(s.requestID, s.accessLog, s.recoverer, s.limitBody)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	// exempt from rate limiting
	r.Get("/", s.handleDashboard)
	r.Head("/", s.handleDashboard)
	r.Get("/healthz", s.handleHealth)

	r.With(s.rateLimit(s.strategistLimiter, clientAddr)).Post("/api/strategist", s.handleStrategist)

	// the default quota is counted per route, not shared across routes
	r.Group(func(r chi.Router) {
		r.Use(s.rateLimit(s.defaultLimiter, routeClientKey))
		r.Get("/api/stats", s.handleStats)

		r.Group(func(r chi.Router) {
			if s.opts.APIKeyDigest != "" {
				r.Use(RequireAPIKey(s.opts.APIKeyDigest))
			}
			r.Get("/api/builder/templates", s.handleTemplates)
			r.Post("/api/builder/products", s.handleCreateProduct)
			r.Get("/api/outreach/dms", s.handleDMs)
		})
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	go s.sweepLimiters(sweepCtx, time.Minute)

	s.log.Info("listening", zap.String("addr", addr))

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) sweepLimiters(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.defaultLimiter.cleanup()
			s.strategistLimiter.cleanup()
		}
	}
}
