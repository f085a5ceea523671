// Package session keeps one task list store per page load.
//
// A page load opens a session and every later intent from that page names
// it. Intents for one session are applied one at a time. Sessions that stay
// idle past the TTL are swept, and the least recently used session is
// evicted when the registry is full. Opening the root page starts a fresh
// session. Every full-page render of a session bumps its page generation,
// and the unload beacon only closes the session for the latest generation.
package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/louisbranch/urlist/internal/platform/id"
	"github.com/louisbranch/urlist/internal/platform/timeouts"
	"github.com/louisbranch/urlist/internal/tasklist"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/urlist/internal/services/web/session"

// ErrNotFound reports an unknown, closed or expired session.
var ErrNotFound = errors.New("session not found")

// Options configures a Registry. Zero values select defaults.
type Options struct {
	IdleTTL     time.Duration
	MaxSessions int
	// Seed returns the tasks a new session starts with.
	Seed   func() []tasklist.Task
	Clock  func() time.Time
	NewID  func() (string, error)
	Logger *log.Logger
}

const defaultMaxSessions = 1000

type entry struct {
	mu    sync.Mutex
	store *tasklist.Store
	// lastSeen and page are guarded by Registry.mu.
	lastSeen time.Time
	page     uint64
}

// Registry owns the live sessions.
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*entry

	idleTTL     time.Duration
	maxSessions int
	seed        func() []tasklist.Task
	clock       func() time.Time
	newID       func() (string, error)
	logger      *log.Logger
	tracer      trace.Tracer
}

// NewRegistry builds an empty registry.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		sessions:    make(map[string]*entry),
		idleTTL:     opts.IdleTTL,
		maxSessions: opts.MaxSessions,
		seed:        opts.Seed,
		clock:       opts.Clock,
		newID:       opts.NewID,
		logger:      opts.Logger,
		tracer:      otel.Tracer(tracerName),
	}
	if r.idleTTL <= 0 {
		r.idleTTL = timeouts.SessionIdle
	}
	if r.maxSessions <= 0 {
		r.maxSessions = defaultMaxSessions
	}
	if r.seed == nil {
		r.seed = func() []tasklist.Task { return nil }
	}
	if r.clock == nil {
		r.clock = time.Now
	}
	if r.newID == nil {
		r.newID = id.NewID
	}
	if r.logger == nil {
		r.logger = log.Default()
	}
	return r
}

// Open starts a session for a new page load.
func (r *Registry) Open(ctx context.Context) (string, tasklist.Snapshot, error) {
	_, span := r.tracer.Start(ctx, "session.open")
	defer span.End()

	sessionID, err := r.newID()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "generate session id")
		return "", tasklist.Snapshot{}, fmt.Errorf("open session: %w", err)
	}
	e := &entry{store: tasklist.New(r.seed()...)}
	snap := e.store.Snapshot()

	r.mu.Lock()
	for len(r.sessions) >= r.maxSessions {
		r.evictOldestLocked()
	}
	e.lastSeen = r.clock()
	r.sessions[sessionID] = e
	live := len(r.sessions)
	r.mu.Unlock()

	span.SetAttributes(attribute.Int("session.live", live))
	return sessionID, snap, nil
}

// Snapshot returns the current state of a session.
func (r *Registry) Snapshot(ctx context.Context, sessionID string) (tasklist.Snapshot, error) {
	return r.Dispatch(ctx, sessionID)
}

// Dispatch applies intents to a session in order and returns the resulting
// snapshot.
func (r *Registry) Dispatch(ctx context.Context, sessionID string, intents ...tasklist.Intent) (tasklist.Snapshot, error) {
	names := make([]string, 0, len(intents))
	for _, intent := range intents {
		if intent != nil {
			names = append(names, intent.Name())
		}
	}
	_, span := r.tracer.Start(ctx, "session.dispatch", trace.WithAttributes(
		attribute.StringSlice("tasklist.intents", names),
	))
	defer span.End()

	e, ok := r.touch(sessionID)
	if !ok {
		span.SetStatus(codes.Error, ErrNotFound.Error())
		return tasklist.Snapshot{}, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}

	e.mu.Lock()
	e.store.Dispatch(intents...)
	snap := e.store.Snapshot()
	e.mu.Unlock()

	span.SetAttributes(
		attribute.Int("tasklist.tasks", len(snap.Tasks)),
		attribute.Int("tasklist.visible", len(snap.Visible)),
		attribute.String("tasklist.filter", string(snap.Filter)),
	)
	return snap, nil
}

// NewPage records a full-page render of a session and returns its page
// generation. The page hands the generation back when it unloads.
func (r *Registry) NewPage(sessionID string) (uint64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.touchLocked(sessionID)
	if !ok {
		return 0, fmt.Errorf("session %q: %w", sessionID, ErrNotFound)
	}
	e.page++
	return e.page, nil
}

// ClosePage discards a session unloaded by the page rendered as generation
// page. Generations older than the latest render leave the session open.
func (r *Registry) ClosePage(sessionID string, page uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[sessionID]
	if !ok || e.page != page {
		return false
	}
	delete(r.sessions, sessionID)
	return true
}

// Close discards a session. It reports whether the session existed.
func (r *Registry) Close(sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.sessions[sessionID]; !ok {
		return false
	}
	delete(r.sessions, sessionID)
	return true
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// Sweep discards sessions idle longer than the TTL and returns how many
// were removed.
func (r *Registry) Sweep() int {
	cutoff := r.clock().Add(-r.idleTTL)
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for sessionID, e := range r.sessions {
		if e.lastSeen.Before(cutoff) {
			delete(r.sessions, sessionID)
			removed++
		}
	}
	if removed > 0 {
		r.logger.Printf("session sweep removed=%d live=%d", removed, len(r.sessions))
	}
	return removed
}

// Run sweeps idle sessions every interval until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = timeouts.SessionSweep
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Sweep()
		}
	}
}

func (r *Registry) touch(sessionID string) (*entry, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.touchLocked(sessionID)
}

func (r *Registry) touchLocked(sessionID string) (*entry, bool) {
	e, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}
	now := r.clock()
	if now.Sub(e.lastSeen) > r.idleTTL {
		delete(r.sessions, sessionID)
		return nil, false
	}
	e.lastSeen = now
	return e, true
}

func (r *Registry) evictOldestLocked() {
	var (
		oldestID string
		oldest   time.Time
	)
	for sessionID, e := range r.sessions {
		if oldestID == "" || e.lastSeen.Before(oldest) {
			oldestID, oldest = sessionID, e.lastSeen
		}
	}
	if oldestID == "" {
		return
	}
	delete(r.sessions, oldestID)
	r.logger.Printf("session evicted reason=capacity max=%d", r.maxSessions)
}
