package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(file fileMetrics) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, boolFileOrDefault(file.Enabled, true)),
		Port:         envOrDefault(envMetricsPort, fileOrDefault(file.Port, defaultMetricsPort)),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, file.OtlpEndpoint),
		ServiceName:  envOrDefault(envOtelService, fileOrDefault(file.ServiceName, "nba-playoffs-service")),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, boolFileOrDefault(file.OtlpInsecure, true)),
	}
}
