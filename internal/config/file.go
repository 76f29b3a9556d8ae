package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors Config for the optional YAML configuration file.
// Every field is optional; unset fields fall back to env and defaults.
type fileConfig struct {
	Port            string             `yaml:"port"`
	Season          int                `yaml:"season"`
	RefreshInterval string             `yaml:"refresh_interval"`
	Provider        string             `yaml:"provider"`
	NBAStats        fileNBAStatsConfig `yaml:"nba_stats"`
	Snapshots       fileSnapshots      `yaml:"snapshots"`
	Metrics         fileMetrics        `yaml:"metrics"`
}

type fileNBAStatsConfig struct {
	BaseURL      string `yaml:"base_url"`
	Referer      string `yaml:"referer"`
	UserAgent    string `yaml:"user_agent"`
	Timeout      string `yaml:"timeout"`
	MaxRetries   int    `yaml:"max_retries"`
	RetryBackoff string `yaml:"retry_backoff"`
}

type fileSnapshots struct {
	Dir        string `yaml:"dir"`
	Backups    *bool  `yaml:"backups"`
	AdminToken string `yaml:"admin_token"`
}

type fileMetrics struct {
	Enabled      *bool  `yaml:"enabled"`
	Port         string `yaml:"port"`
	OtlpEndpoint string `yaml:"otlp_endpoint"`
	ServiceName  string `yaml:"service_name"`
	OtlpInsecure *bool  `yaml:"otlp_insecure"`
}

// readFile loads the YAML configuration file when a path is given. A missing
// or unreadable file yields the zero config so env and defaults apply.
func readFile(path string) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fileConfig{}, err
	}
	return cfg, nil
}
