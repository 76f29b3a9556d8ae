package config

// NBAStatsConfig controls the stats.nba.com provider client.
type NBAStatsConfig struct {
	BaseURL      string
	Referer      string
	UserAgent    string
	Timeout      Duration
	MaxRetries   int
	RetryBackoff Duration
}

func loadNBAStats(file fileNBAStatsConfig) NBAStatsConfig {
	return NBAStatsConfig{
		BaseURL:      envOrDefault(envStatsBaseURL, file.BaseURL),
		Referer:      envOrDefault(envStatsReferer, file.Referer),
		UserAgent:    fileOrDefault(file.UserAgent, ""),
		Timeout:      durationEnvOrDefault(envStatsTimeout, durationFileOrDefault(file.Timeout, defaultStatsTimeout)),
		MaxRetries:   intEnvOrDefault(envStatsRetries, intFileOrDefault(file.MaxRetries, defaultStatsRetries)),
		RetryBackoff: durationEnvOrDefault(envStatsBackoff, durationFileOrDefault(file.RetryBackoff, defaultStatsBackoff)),
	}
}
