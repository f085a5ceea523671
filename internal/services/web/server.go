package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/louisbranch/urlist/internal/platform/timeouts"
	"github.com/louisbranch/urlist/internal/services/web/platform/httpx"
	"github.com/louisbranch/urlist/internal/services/web/platform/observability"
	"github.com/louisbranch/urlist/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/urlist/internal/services/web/session"
	"github.com/louisbranch/urlist/internal/tasklist"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// SeedFixtures starts every page load with the sample tasks.
	SeedFixtures   bool
	SessionIdleTTL time.Duration
	MaxSessions    int
	SweepInterval  time.Duration
	// HTMXScriptURL overrides where pages load htmx from.
	HTMXScriptURL       string
	TrustForwardedProto bool
	Logger              *log.Logger
	// Sessions replaces the registry built from the fields above.
	Sessions *session.Registry
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr      string
	httpServer    *http.Server
	sessions      *session.Registry
	sweepInterval time.Duration
}

func (cfg Config) logger() *log.Logger {
	if cfg.Logger != nil {
		return cfg.Logger
	}
	return log.Default()
}

func (cfg Config) registry() *session.Registry {
	if cfg.Sessions != nil {
		return cfg.Sessions
	}
	opts := session.Options{
		IdleTTL:     cfg.SessionIdleTTL,
		MaxSessions: cfg.MaxSessions,
		Logger:      cfg.logger(),
	}
	if cfg.SeedFixtures {
		opts.Seed = tasklist.Fixtures
	}
	return session.NewRegistry(opts)
}

// NewHandler builds the root handler with its middleware chain.
func NewHandler(cfg Config) (http.Handler, error) {
	return newHandler(cfg, cfg.registry())
}

func newHandler(cfg Config, sessions *session.Registry) (http.Handler, error) {
	if sessions == nil {
		return nil, errors.New("session registry is required")
	}
	h := &handler{
		sessions:      sessions,
		htmxScriptURL: strings.TrimSpace(cfg.HTMXScriptURL),
	}
	mux := http.NewServeMux()
	h.register(mux)

	policy := requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto}
	logger := cfg.logger()
	return httpx.Chain(mux,
		httpx.RecoverPanic(logger),
		httpx.RequestID(),
		observability.RequestLogger(logger),
		httpx.RequireSameOrigin(policy, http.HandlerFunc(h.handleCrossOrigin)),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	sessions := cfg.registry()
	handler, err := newHandler(cfg, sessions)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions:      sessions,
		sweepInterval: cfg.SweepInterval,
	}, nil
}

// ListenAndServe serves HTTP traffic and sweeps idle sessions until context
// cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go s.sessions.Run(sweepCtx, s.sweepInterval)

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
