// Package urlist parses web command flags and launches the task list service.
package urlist

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/urlist/internal/platform/cmd"
	"github.com/louisbranch/urlist/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8080"`
	SeedFixtures        bool          `env:"SEED_FIXTURES" envDefault:"true"`
	SessionIdleTTL      time.Duration `env:"SESSION_IDLE_TTL" envDefault:"30m"`
	MaxSessions         int           `env:"MAX_SESSIONS" envDefault:"1000"`
	SweepInterval       time.Duration `env:"SESSION_SWEEP_INTERVAL" envDefault:"1m"`
	HTMXScriptURL       string        `env:"HTMX_SCRIPT_URL"`
	TrustForwardedProto bool          `env:"TRUST_FORWARDED_PROTO" envDefault:"false"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.BoolVar(&cfg.SeedFixtures, "seed-fixtures", cfg.SeedFixtures, "Start every page load with sample tasks")
	fs.DurationVar(&cfg.SessionIdleTTL, "session-idle-ttl", cfg.SessionIdleTTL, "Discard lists idle longer than this")
	fs.IntVar(&cfg.MaxSessions, "max-sessions", cfg.MaxSessions, "Maximum live lists before the least recently used is evicted")
	fs.DurationVar(&cfg.SweepInterval, "session-sweep-interval", cfg.SweepInterval, "Interval between idle list sweeps")
	fs.StringVar(&cfg.HTMXScriptURL, "htmx-script-url", cfg.HTMXScriptURL, "URL pages load htmx from")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "Trust X-Forwarded-Proto when checking request origin")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.MaxSessions <= 0 {
		return Config{}, fmt.Errorf("max sessions must be positive, got %d", cfg.MaxSessions)
	}
	if cfg.SessionIdleTTL <= 0 {
		return Config{}, fmt.Errorf("session idle ttl must be positive, got %s", cfg.SessionIdleTTL)
	}
	return cfg, nil
}

// Run starts the task list web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:            cfg.HTTPAddr,
			SeedFixtures:        cfg.SeedFixtures,
			SessionIdleTTL:      cfg.SessionIdleTTL,
			MaxSessions:         cfg.MaxSessions,
			SweepInterval:       cfg.SweepInterval,
			HTMXScriptURL:       cfg.HTMXScriptURL,
			TrustForwardedProto: cfg.TrustForwardedProto,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
