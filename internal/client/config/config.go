package config

import "time"

// Config holds runtime settings for the GrandV CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api prefix.
//   - DatabaseDSN: path of the local SQLite credential database.
//   - RequestTimeout: per-request HTTP timeout.
//   - ReferralURL: invite link the user arrived with, if any. The referral
//     code for registration is extracted from its query parameters.
//   - LogLevel: minimum level for the structured logger (debug|info|warn|error).
type Config struct {
	APIBaseURL     string
	DatabaseDSN    string
	RequestTimeout time.Duration
	ReferralURL    string
	LogLevel       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.DatabaseDSN = "grandv.db"
	c.RequestTimeout = 15 * time.Second
	c.ReferralURL = ""
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), environment variables, and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
