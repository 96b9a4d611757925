// Package config loads runtime configuration for the GrandV CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. GRANDV_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend REST API
//	-d string   path of the local credential database
//	-t int      request timeout (seconds)
//	-r string   invite link carrying a referral code
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8000/api",
//	  "database_dsn": "grandv.db",
//	  "request_timeout_seconds": 15,
//	  "referral_url": "https://grandv.app/register?ref=ABC123",
//	  "log_level": "info"
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
