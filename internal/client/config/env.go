package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	apiBaseURLEnvVar     = "GRANDV_API_BASE_URL"
	databaseDSNEnvVar    = "GRANDV_DATABASE_DSN"
	requestTimeoutEnvVar = "GRANDV_REQUEST_TIMEOUT_SECONDS"
	referralURLEnvVar    = "GRANDV_REFERRAL_URL"
	logLevelEnvVar       = "GRANDV_LOG_LEVEL"
)

// parseEnv overlays Config with values from GRANDV_* environment variables.
// Unset or malformed variables leave the current value in place.
func parseEnv(cfg *Config) {
	if v := os.Getenv(apiBaseURLEnvVar); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(databaseDSNEnvVar); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv(requestTimeoutEnvVar); v != "" {
		if seconds, err := strconv.Atoi(v); err == nil && seconds > 0 {
			cfg.RequestTimeout = time.Duration(seconds) * time.Second
		}
	}
	if v := os.Getenv(referralURLEnvVar); v != "" {
		cfg.ReferralURL = v
	}
	if v := os.Getenv(logLevelEnvVar); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
}
