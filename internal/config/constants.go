package config

import "time"

const (
	envPort            = "PORT"
	envConfigFile      = "CONFIG_FILE"
	envSeason          = "SEASON"
	envRefreshInterval = "REFRESH_INTERVAL"
	envProvider        = "PROVIDER"
	envStatsBaseURL    = "NBA_STATS_BASE_URL"
	envStatsReferer    = "NBA_STATS_REFERER"
	envStatsTimeout    = "NBA_STATS_TIMEOUT"
	envStatsRetries    = "NBA_STATS_MAX_RETRIES"
	envStatsBackoff    = "NBA_STATS_RETRY_BACKOFF"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken      = "ADMIN_TOKEN"
	envSnapshotDir     = "SNAPSHOT_DIR"
	envSnapshotBackups = "SNAPSHOT_BACKUPS"

	defaultPort = "4000"
	// Playoff results change at most daily; a long cadence respects upstream quotas.
	defaultRefreshInterval = 6 * Duration(time.Hour)
	defaultProvider        = "fixture"
	defaultStatsTimeout    = 10 * Duration(time.Second)
	defaultStatsRetries    = 3
	defaultStatsBackoff    = 500 * Duration(time.Millisecond)
	defaultMetricsPort     = "9090"
	defaultSnapshotDir     = "data/snapshots"
)
