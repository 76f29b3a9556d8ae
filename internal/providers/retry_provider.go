package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/logging"
	"nba-playoffs-service/internal/metrics"
)

const (
	defaultMaxRetries     = 3
	defaultInitialBackoff = 500 * time.Millisecond
)

// retryingProvider wraps a GameProvider with exponential-backoff retries.
type retryingProvider struct {
	inner          GameProvider
	name           string
	logger         *slog.Logger
	recorder       *metrics.Recorder
	maxRetries     uint64
	initialBackoff time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// maxRetries/initialBackoff fall back to defaults. Rate-limit responses wait
// at least the upstream Retry-After before the next attempt.
func NewRetryingProvider(inner GameProvider, name string, logger *slog.Logger, recorder *metrics.Recorder, maxRetries int, initialBackoff time.Duration) GameProvider {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	if initialBackoff <= 0 {
		initialBackoff = defaultInitialBackoff
	}
	return &retryingProvider{
		inner:          inner,
		name:           name,
		logger:         logger,
		recorder:       recorder,
		maxRetries:     uint64(maxRetries),
		initialBackoff: initialBackoff,
	}
}

func (r *retryingProvider) FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error) {
	var games []domain.GameRecord
	attempt := 0

	op := func() error {
		attempt++
		start := time.Now()
		fetched, err := r.inner.FetchPlayoffGames(ctx, seasonYear)
		r.recorder.RecordProviderAttempt(r.name, time.Since(start), err)
		if err == nil {
			games = fetched
			return nil
		}
		if rl, ok := AsRateLimitError(err); ok {
			r.recorder.RecordRateLimit(r.name, rl.RetryAfter)
			if rl.RetryAfter > 0 {
				// Honor the upstream Retry-After before the next attempt.
				timer := time.NewTimer(rl.RetryAfter)
				select {
				case <-ctx.Done():
					timer.Stop()
					return backoff.Permanent(ctx.Err())
				case <-timer.C:
				}
			}
		}
		r.logWarn(ctx, "provider fetch retry",
			slog.Int("attempt", attempt),
			slog.Int(logging.FieldSeason, seasonYear),
			"error", err,
		)
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = r.initialBackoff
	policy := backoff.WithMaxRetries(backoff.WithContext(bo, ctx), r.maxRetries)

	if err := backoff.Retry(op, policy); err != nil {
		r.logWarn(ctx, "provider fetch failed",
			slog.Int("attempts", attempt),
			slog.Int(logging.FieldSeason, seasonYear),
			"error", err,
		)
		return nil, err
	}
	return games, nil
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		args = append(args, slog.String(logging.FieldProvider, r.name))
		logger.Warn(msg, args...)
	}
}
