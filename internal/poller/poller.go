// Package poller refreshes one season's playoff bracket on an interval:
// fetch the game log, classify its series, publish them, snapshot the games.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/domain/series"
	"nba-playoffs-service/internal/logging"
	"nba-playoffs-service/internal/metrics"
	"nba-playoffs-service/internal/providers"
	"nba-playoffs-service/internal/timeutil"
)

const defaultInterval = 6 * time.Hour

// SeriesSink receives each freshly classified bracket.
type SeriesSink interface {
	ReplaceSeries(seasonYear int, summaries []series.SeriesSummary)
}

// SnapshotWriter persists season snapshots to disk.
type SnapshotWriter interface {
	WriteSeason(snapshot domain.SeasonSnapshot) error
}

// Poller drives the refresh loop for a single season.
type Poller struct {
	provider providers.GameProvider
	sink     SeriesSink
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	season   int
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the loop has had a recent success and is not
// failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(provider providers.GameProvider, sink SeriesSink, writer SnapshotWriter, logger *slog.Logger, recorder *metrics.Recorder, seasonYear int, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: provider,
		sink:     sink,
		writer:   writer,
		logger:   logger,
		metrics:  recorder,
		season:   seasonYear,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("refresher started",
			slog.Int(logging.FieldSeason, p.season),
			slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()),
		)
		// Initial refresh to warm data on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("refresher stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("refresher stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// Status returns a copy of the current loop status.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying provider for shutdown cleanup.
func (p *Poller) Provider() providers.GameProvider {
	return p.provider
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	games, err := p.provider.FetchPlayoffGames(ctx, p.season)
	if err != nil {
		p.logError("refresh fetch failed", err,
			slog.Int(logging.FieldSeason, p.season),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	summaries, err := series.ExtractSeries(p.season, games)
	if p.metrics != nil {
		p.metrics.RecordExtraction(p.season, len(summaries), time.Since(start), err)
	}
	if err != nil {
		p.logError("refresh classification failed", err,
			slog.Int(logging.FieldSeason, p.season),
			slog.Int(logging.FieldCount, len(games)),
		)
		p.recordFailure(err, start)
		return
	}

	if p.sink != nil {
		p.sink.ReplaceSeries(p.season, summaries)
	}
	if p.writer != nil {
		snap := domain.NewSeasonSnapshot(p.season, timeutil.FormatDate(p.now().UTC()), games)
		if writeErr := p.writer.WriteSeason(snap); writeErr != nil {
			p.logError("refresh snapshot write failed", writeErr,
				slog.Int(logging.FieldSeason, p.season),
			)
		}
	}
	p.recordSuccess(start)
	p.logInfo("refreshed season series",
		slog.Int(logging.FieldSeason, p.season),
		slog.Int(logging.FieldCount, len(summaries)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

func (p *Poller) recordFailure(err error, attempt time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	p.status.LastError = err.Error()
	p.status.LastAttempt = attempt
}

func (p *Poller) recordSuccess(attempt time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastAttempt = attempt
	p.status.LastSuccess = attempt
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, args ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(args, "error", err)...)
	}
}
