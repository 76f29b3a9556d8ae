package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/metrics"
)

type scriptedProvider struct {
	calls   int
	results []func() ([]domain.GameRecord, error)
}

func (s *scriptedProvider) FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error) {
	idx := s.calls
	s.calls++
	if idx >= len(s.results) {
		idx = len(s.results) - 1
	}
	return s.results[idx]()
}

func success(games []domain.GameRecord) func() ([]domain.GameRecord, error) {
	return func() ([]domain.GameRecord, error) { return games, nil }
}

func failure(err error) func() ([]domain.GameRecord, error) {
	return func() ([]domain.GameRecord, error) { return nil, err }
}

func TestRetryingProviderSucceedsAfterFailures(t *testing.T) {
	want := []domain.GameRecord{{Season: 2015, GameID: "g1"}}
	inner := &scriptedProvider{results: []func() ([]domain.GameRecord, error){
		failure(errors.New("boom")),
		failure(errors.New("boom again")),
		success(want),
	}}
	recorder := metrics.NewRecorder()
	p := NewRetryingProvider(inner, "test", nil, recorder, 3, time.Millisecond)

	games, err := p.FetchPlayoffGames(context.Background(), 2015)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(games) != 1 || games[0].GameID != "g1" {
		t.Fatalf("unexpected games: %+v", games)
	}
	if inner.calls != 3 {
		t.Fatalf("expected 3 attempts, got %d", inner.calls)
	}

	snap := recorder.Provider("test")
	if snap.Calls != 3 || snap.Errors != 2 {
		t.Fatalf("unexpected provider stats: %+v", snap)
	}
}

func TestRetryingProviderGivesUp(t *testing.T) {
	permanent := errors.New("upstream down")
	inner := &scriptedProvider{results: []func() ([]domain.GameRecord, error){failure(permanent)}}
	p := NewRetryingProvider(inner, "test", nil, nil, 2, time.Millisecond)

	_, err := p.FetchPlayoffGames(context.Background(), 2015)
	if !errors.Is(err, permanent) {
		t.Fatalf("expected wrapped permanent error, got %v", err)
	}
	if inner.calls != 3 {
		t.Fatalf("expected initial attempt plus 2 retries, got %d calls", inner.calls)
	}
}

func TestRetryingProviderRecordsRateLimit(t *testing.T) {
	rl := &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Millisecond}
	want := []domain.GameRecord{{Season: 2015, GameID: "g1"}}
	inner := &scriptedProvider{results: []func() ([]domain.GameRecord, error){
		failure(rl),
		success(want),
	}}
	recorder := metrics.NewRecorder()
	p := NewRetryingProvider(inner, "test", nil, recorder, 3, time.Millisecond)

	if _, err := p.FetchPlayoffGames(context.Background(), 2015); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := recorder.Provider("test")
	if snap.RateLimitHits != 1 {
		t.Fatalf("expected 1 rate limit hit, got %d", snap.RateLimitHits)
	}
	if snap.LastRetryAfter != time.Millisecond {
		t.Fatalf("unexpected retry-after: %v", snap.LastRetryAfter)
	}
}

func TestRetryingProviderStopsOnCanceledContext(t *testing.T) {
	rl := &RateLimitError{Provider: "test", StatusCode: 429, RetryAfter: time.Minute}
	inner := &scriptedProvider{results: []func() ([]domain.GameRecord, error){failure(rl)}}
	p := NewRetryingProvider(inner, "test", nil, nil, 5, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := p.FetchPlayoffGames(ctx, 2015)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context cancellation, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.calls)
	}
}
