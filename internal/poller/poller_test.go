package poller

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/domain/series"
	"nba-playoffs-service/internal/metrics"
	"nba-playoffs-service/internal/providers/fixture"
)

type stubProvider struct {
	mu    sync.Mutex
	games []domain.GameRecord
	err   error
	calls int
}

func (s *stubProvider) FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.games, nil
}

type captureSink struct {
	mu        sync.Mutex
	season    int
	summaries []series.SeriesSummary
	calls     int
}

func (c *captureSink) ReplaceSeries(seasonYear int, summaries []series.SeriesSummary) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.season = seasonYear
	c.summaries = summaries
	c.calls++
}

func (c *captureSink) snapshot() (int, int, int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.season, len(c.summaries), c.calls
}

type captureWriter struct {
	mu    sync.Mutex
	snaps []domain.SeasonSnapshot
}

func (c *captureWriter) WriteSeason(snapshot domain.SeasonSnapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snaps = append(c.snaps, snapshot)
	return nil
}

func (c *captureWriter) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.snaps)
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestPollerRefreshesOnStart(t *testing.T) {
	provider := &stubProvider{games: fixture.SeasonGames(2015)}
	sink := &captureSink{}
	writer := &captureWriter{}
	recorder := metrics.NewRecorder()

	p := New(provider, sink, writer, nil, recorder, 2015, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { _, _, calls := sink.snapshot(); return calls > 0 })

	season, count, _ := sink.snapshot()
	if season != 2015 || count != 15 {
		t.Fatalf("unexpected sink state: season=%d series=%d", season, count)
	}
	waitFor(t, func() bool { return writer.count() > 0 })

	if !p.Status().IsReady() {
		t.Fatal("expected poller ready after successful refresh")
	}
	if snap := recorder.Extraction(2015); snap.Extractions != 1 || snap.LastSeries != 15 {
		t.Fatalf("unexpected extraction stats: %+v", snap)
	}
}

func TestPollerRecordsFetchFailure(t *testing.T) {
	provider := &stubProvider{err: errors.New("upstream down")}
	p := New(provider, &captureSink{}, nil, nil, nil, 2015, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return p.Status().ConsecutiveFailures > 0 })

	status := p.Status()
	if status.IsReady() {
		t.Fatal("expected poller not ready after failure")
	}
	if status.LastError == "" {
		t.Fatal("expected last error to be recorded")
	}
}

func TestPollerRecordsClassificationFailure(t *testing.T) {
	// A lone series is not a full bracket, so classification must fail.
	games := fixture.SeasonGames(2015)[:4]
	provider := &stubProvider{games: games}
	sink := &captureSink{}
	p := New(provider, sink, nil, nil, nil, 2015, time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)
	defer p.Stop(context.Background())

	waitFor(t, func() bool { return p.Status().ConsecutiveFailures > 0 })

	if _, _, calls := sink.snapshot(); calls != 0 {
		t.Fatal("expected no sink update on classification failure")
	}
}

func TestPollerStopIsIdempotent(t *testing.T) {
	p := New(&stubProvider{games: fixture.SeasonGames(2015)}, &captureSink{}, nil, nil, nil, 2015, time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	p.Start(ctx)

	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("first stop failed: %v", err)
	}
	if err := p.Stop(context.Background()); err != nil {
		t.Fatalf("second stop failed: %v", err)
	}
}
