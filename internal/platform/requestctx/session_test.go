package requestctx

import (
	"context"
	"testing"
)

func TestSessionIDRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := WithSessionSlot(context.Background())
	SetSessionID(ctx, "sess-42")
	if got := SessionIDFromContext(ctx); got != "sess-42" {
		t.Fatalf("SessionIDFromContext = %q, want %q", got, "sess-42")
	}
}

func TestSessionIDVisibleToParentContext(t *testing.T) {
	t.Parallel()

	parent := WithSessionSlot(context.Background())
	child, cancel := context.WithCancel(parent)
	defer cancel()
	SetSessionID(child, "from-handler")
	if got := SessionIDFromContext(parent); got != "from-handler" {
		t.Fatalf("SessionIDFromContext(parent) = %q, want %q", got, "from-handler")
	}
}

func TestSessionIDWithoutSlot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	SetSessionID(ctx, "ignored")
	if got := SessionIDFromContext(ctx); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestSessionIDNilContext(t *testing.T) {
	t.Parallel()

	//nolint:staticcheck // nil context is part of the contract.
	if got := SessionIDFromContext(nil); got != "" {
		t.Fatalf("expected empty string for nil context, got %q", got)
	}
	//nolint:staticcheck // nil context is part of the contract.
	if ctx := WithSessionSlot(nil); ctx == nil {
		t.Fatal("WithSessionSlot(nil) returned nil")
	}
}
