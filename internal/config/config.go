package config

import (
	"time"

	"nba-playoffs-service/internal/season"
)

// Config holds runtime configuration for the server. Values come from an
// optional YAML file overridden by environment variables.
type Config struct {
	Port            string
	Season          int
	RefreshInterval Duration
	Provider        string
	NBAStats        NBAStatsConfig
	Snapshots       SnapshotsConfig
	Metrics         MetricsConfig
}

// Load reads configuration from the optional CONFIG_FILE and environment
// variables, env taking precedence, with sensible defaults underneath.
func Load() Config {
	file, _ := readFile(envOrDefault(envConfigFile, ""))
	return Config{
		Port:            envOrDefault(envPort, fileOrDefault(file.Port, defaultPort)),
		Season:          intEnvOrDefault(envSeason, intFileOrDefault(file.Season, season.Current().StartYear())),
		RefreshInterval: durationEnvOrDefault(envRefreshInterval, durationFileOrDefault(file.RefreshInterval, defaultRefreshInterval)),
		Provider:        envOrDefault(envProvider, fileOrDefault(file.Provider, defaultProvider)),
		NBAStats:        loadNBAStats(file.NBAStats),
		Snapshots:       loadSnapshots(file.Snapshots),
		Metrics:         loadMetrics(file.Metrics),
	}
}

func fileOrDefault(fileValue, defaultValue string) string {
	if fileValue != "" {
		return fileValue
	}
	return defaultValue
}

func intFileOrDefault(fileValue, defaultValue int) int {
	if fileValue > 0 {
		return fileValue
	}
	return defaultValue
}

func durationFileOrDefault(fileValue string, defaultValue Duration) Duration {
	if fileValue == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(fileValue)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}

func boolFileOrDefault(fileValue *bool, defaultValue bool) bool {
	if fileValue != nil {
		return *fileValue
	}
	return defaultValue
}
