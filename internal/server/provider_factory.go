package server

import (
	"log/slog"

	"nba-playoffs-service/internal/config"
	"nba-playoffs-service/internal/metrics"
	"nba-playoffs-service/internal/providers"
	"nba-playoffs-service/internal/providers/fixture"
	"nba-playoffs-service/internal/providers/nbastats"
)

// providerFactory assembles the configured provider with shared wrappers
// (logging + retry).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.GameProvider {
	name := normalizeProviderName(cfg.Provider)
	base := selectProvider(name, cfg)
	logged := providers.NewLoggingProvider(base, name, f.logger)
	return providers.NewRetryingProvider(logged, name, f.logger, f.metrics,
		cfg.NBAStats.MaxRetries, cfg.NBAStats.RetryBackoff)
}

func selectProvider(name string, cfg config.Config) providers.GameProvider {
	switch name {
	case "nbastats":
		return nbastats.NewClient(nbastats.Config{
			BaseURL:   cfg.NBAStats.BaseURL,
			Referer:   cfg.NBAStats.Referer,
			UserAgent: cfg.NBAStats.UserAgent,
			Timeout:   cfg.NBAStats.Timeout,
		})
	default:
		return fixture.New()
	}
}

func normalizeProviderName(name string) string {
	switch name {
	case "nbastats", "stats", "nba":
		return "nbastats"
	default:
		return "fixture"
	}
}
