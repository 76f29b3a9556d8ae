package metrics

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestRecordProviderAttempt(t *testing.T) {
	r := NewRecorder()
	r.RecordProviderAttempt("nbastats", 120*time.Millisecond, nil)
	r.RecordProviderAttempt("nbastats", 80*time.Millisecond, errors.New("boom"))

	snap := r.Provider("nbastats")
	if snap.Calls != 2 {
		t.Fatalf("expected 2 calls got %d", snap.Calls)
	}
	if snap.Errors != 1 {
		t.Fatalf("expected 1 error got %d", snap.Errors)
	}
	if snap.LastCallLatency != 80*time.Millisecond {
		t.Fatalf("expected last latency 80ms got %v", snap.LastCallLatency)
	}
}

func TestRecordRateLimit(t *testing.T) {
	r := NewRecorder()
	r.RecordRateLimit("nbastats", 2*time.Second)
	r.RecordRateLimit("nbastats", 0)

	snap := r.Provider("nbastats")
	if snap.RateLimitHits != 2 {
		t.Fatalf("expected 2 hits got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != 2*time.Second {
		t.Fatalf("expected retry-after 2s got %v", snap.LastRetryAfter)
	}
}

func TestRecordExtraction(t *testing.T) {
	r := NewRecorder()
	r.RecordExtraction(2015, 15, 5*time.Millisecond, nil)
	r.RecordExtraction(2015, 0, time.Millisecond, errors.New("malformed"))

	snap := r.Extraction(2015)
	if snap.Extractions != 2 {
		t.Fatalf("expected 2 extractions got %d", snap.Extractions)
	}
	if snap.Failures != 1 {
		t.Fatalf("expected 1 failure got %d", snap.Failures)
	}
	if snap.LastSeries != 15 {
		t.Fatalf("expected last series count 15 got %d", snap.LastSeries)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var r *Recorder
	r.RecordProviderAttempt("x", time.Second, nil)
	r.RecordRateLimit("x", time.Second)
	r.RecordExtraction(2015, 15, time.Second, nil)
	r.RecordHTTPRequest("GET", "/healthz", 200, time.Millisecond)
	if r.Provider("x").Calls != 0 || r.Extraction(2015).Extractions != 0 {
		t.Fatal("nil recorder must report zero stats")
	}
}

func TestSetupDisabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if handler != nil {
		t.Fatal("expected no handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSetupEnabled(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()
	if handler == nil {
		t.Fatal("expected prometheus handler")
	}
	rec.RecordProviderAttempt("nbastats", time.Millisecond, nil)
	rec.RecordExtraction(2015, 15, time.Millisecond, nil)
	if rec.Provider("nbastats").Calls != 1 {
		t.Fatal("expected otel-backed recorder to keep local stats")
	}
}
