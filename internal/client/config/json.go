package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/its-steo/GrandV-sub001/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Timeouts are
// given in whole seconds. Zero values mean "not set" and leave the running
// Config untouched.
type JsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	DatabaseDSN           string `json:"database_dsn"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	ReferralURL           string `json:"referral_url"`
	LogLevel              string `json:"log_level"`
}

// parseJson overlays Config with values loaded from a JSON file.
//
// Lookup order for the JSON file path:
//  1. Command-line flags (-c or -config) via flagx.JsonConfigFlags().
//  2. If empty, no JSON is loaded and the function returns.
//
// Panics on read or unmarshal errors (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabaseDSN != "" {
		cfg.DatabaseDSN = jc.DatabaseDSN
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.ReferralURL != "" {
		cfg.ReferralURL = jc.ReferralURL
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
