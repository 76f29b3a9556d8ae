package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type extractionStats struct {
	extractions int
	failures    int
	lastSeries  int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// series extraction. Counters are mirrored to OpenTelemetry instruments when
// telemetry is enabled.
type Recorder struct {
	mu          sync.Mutex
	providers   map[string]*providerStats
	extractions map[int]*extractionStats
	otel        *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		providers:   make(map[string]*providerStats),
		extractions: make(map[int]*extractionStats),
		otel:        otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores
// the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks a provider rate-limit response and the last
// Retry-After seen.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureProvider(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordExtraction tracks one season-extraction pass and the series count it
// produced.
func (r *Recorder) RecordExtraction(season int, seriesCount int, duration time.Duration, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.ensureExtraction(season)
	stats.extractions++
	if err != nil {
		stats.failures++
	} else {
		stats.lastSeries = seriesCount
	}
	r.mu.Unlock()
	if r.otel != nil {
		r.otel.recordExtraction(season, duration, err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderSnapshot is a copy of the stats recorded for one provider.
type ProviderSnapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

// Provider returns a copy of the current stats for the provider.
func (r *Recorder) Provider(provider string) ProviderSnapshot {
	if r == nil {
		return ProviderSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureProvider(provider)
	return ProviderSnapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// ExtractionSnapshot is a copy of the stats recorded for one season.
type ExtractionSnapshot struct {
	Extractions int
	Failures    int
	LastSeries  int
}

// Extraction returns a copy of the current stats for the season.
func (r *Recorder) Extraction(season int) ExtractionSnapshot {
	if r == nil {
		return ExtractionSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stats := r.ensureExtraction(season)
	return ExtractionSnapshot{
		Extractions: stats.extractions,
		Failures:    stats.failures,
		LastSeries:  stats.lastSeries,
	}
}

func (r *Recorder) ensureProvider(provider string) *providerStats {
	stats, ok := r.providers[provider]
	if !ok {
		stats = &providerStats{}
		r.providers[provider] = stats
	}
	return stats
}

func (r *Recorder) ensureExtraction(season int) *extractionStats {
	stats, ok := r.extractions[season]
	if !ok {
		stats = &extractionStats{}
		r.extractions[season] = stats
	}
	return stats
}
