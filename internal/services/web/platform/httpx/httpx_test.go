package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/urlist/internal/services/web/platform/requestmeta"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}
}

func TestRequestIDGeneratesAndEchoes(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !strings.HasPrefix(seen, "urlist-") {
		t.Fatalf("generated request id = %q, want urlist- prefix", seen)
	}
	if got := rr.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("echoed id = %q, want %q", got, seen)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "req-1" {
		t.Fatalf("echoed id = %q, want req-1", got)
	}
}

func TestRecoverPanicWrites500AndLogs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := RecoverPanic(log.New(&buf, "", 0))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("kaboom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/sessions/x/tasks", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	for _, marker := range []string{"panic recovered", "method=POST", "path=/sessions/x/tasks", "panic=kaboom"} {
		if !strings.Contains(buf.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buf.String())
		}
	}
}

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	h := RequireSameOrigin(requestmeta.SchemePolicy{}, nil)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		method string
		origin string
		want   int
	}{
		{name: "cross origin post", method: http.MethodPost, origin: "http://evil.test", want: http.StatusForbidden},
		{name: "same origin post", method: http.MethodPost, origin: "http://localhost:8080", want: http.StatusNoContent},
		{name: "post without origin", method: http.MethodPost, want: http.StatusNoContent},
		{name: "cross origin get", method: http.MethodGet, origin: "http://evil.test", want: http.StatusNoContent},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, "http://localhost:8080/sessions/s/tasks", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rr.Code, tc.want)
		}
	}
}

func TestIsHTMXRequest(t *testing.T) {
	t.Parallel()

	if IsHTMXRequest(nil) {
		t.Fatal("nil request should not be htmx")
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("HX-Request", "TRUE")
	if !IsHTMXRequest(req) {
		t.Fatal("expected htmx request")
	}
}
