package providers

import (
	"context"
	"log/slog"
	"time"

	"nba-playoffs-service/internal/domain"
	"nba-playoffs-service/internal/logging"
)

// loggingProvider wraps a GameProvider with fetch logging.
type loggingProvider struct {
	inner  GameProvider
	name   string
	logger *slog.Logger
}

// NewLoggingProvider wraps the given provider with structured fetch logs.
func NewLoggingProvider(inner GameProvider, name string, logger *slog.Logger) GameProvider {
	return &loggingProvider{inner: inner, name: name, logger: logger}
}

func (p *loggingProvider) FetchPlayoffGames(ctx context.Context, seasonYear int) ([]domain.GameRecord, error) {
	logger := logging.FromContext(ctx, p.logger)
	start := time.Now()
	games, err := p.inner.FetchPlayoffGames(ctx, seasonYear)
	if err != nil {
		logging.Error(logger, "provider fetch failed", err,
			slog.String(logging.FieldProvider, p.name),
			slog.Int(logging.FieldSeason, seasonYear),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		return nil, err
	}
	logging.Info(logger, "provider fetch complete",
		slog.String(logging.FieldProvider, p.name),
		slog.Int(logging.FieldSeason, seasonYear),
		slog.Int(logging.FieldCount, len(games)),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
	return games, nil
}
