package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"nba-playoffs-service/internal/metrics"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rec := httptest.NewRecorder()

	LoggingMiddleware(nil, metrics.NewRecorder(), next).ServeHTTP(rec, req)

	if seenID != "abc-123" {
		t.Fatalf("expected request id to flow through context, got %q", seenID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Fatalf("expected request id echoed in response, got %q", got)
	}
	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected downstream status preserved, got %d", rec.Code)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "not a valid id!!")
	rec := httptest.NewRecorder()

	LoggingMiddleware(nil, nil, next).ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || got == "not a valid id!!" {
		t.Fatalf("expected a generated request id, got %q", got)
	}
}

func TestClientIPPrefersForwardedHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	if got := ClientIP(req); got != "10.0.0.1:1234" {
		t.Fatalf("expected remote addr, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	if got := ClientIP(req); got != "203.0.113.7" {
		t.Fatalf("expected first forwarded hop, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/healthz":                      "/healthz",
		"/seasons/2015/series":          "/seasons/:year/series",
		"/seasons/2015/series/finals":   "/seasons/:year/series/:round",
		"/formats/best-of-7/outcomes":   "/formats/:format/outcomes",
		"/admin/refresh":                "/admin/refresh",
	}
	for path, want := range cases {
		if got := normalizePath(path); got != want {
			t.Errorf("normalizePath(%q) = %q, want %q", path, got, want)
		}
	}
}
