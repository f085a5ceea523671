// Package requestctx carries per-request attribution through handlers.
package requestctx

import (
	"context"
	"sync"
)

// sessionSlotKey is the context key for the session attribution slot.
type sessionSlotKey struct{}

// sessionSlot is filled by a handler deep in the stack and read by the
// middleware that installed it, after the handler returns.
type sessionSlot struct {
	mu sync.Mutex
	id string
}

// WithSessionSlot installs an empty slot for the session a request acts on.
func WithSessionSlot(ctx context.Context) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, sessionSlotKey{}, &sessionSlot{})
}

// SetSessionID records the session a request acts on. It is a no-op when no
// slot was installed.
func SetSessionID(ctx context.Context, sessionID string) {
	slot := slotFromContext(ctx)
	if slot == nil {
		return
	}
	slot.mu.Lock()
	slot.id = sessionID
	slot.mu.Unlock()
}

// SessionIDFromContext returns the recorded session, or "".
func SessionIDFromContext(ctx context.Context) string {
	slot := slotFromContext(ctx)
	if slot == nil {
		return ""
	}
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.id
}

func slotFromContext(ctx context.Context) *sessionSlot {
	if ctx == nil {
		return nil
	}
	slot, _ := ctx.Value(sessionSlotKey{}).(*sessionSlot)
	return slot
}
