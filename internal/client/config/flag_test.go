package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {

	// Test cases
	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd", "-a", "https://api.grandv.app/api", "-d", "custom.db", "-t", "30", "-l", "debug"}, expectPanic: false,
			expected: &Config{APIBaseURL: "https://api.grandv.app/api", DatabaseDSN: "custom.db", RequestTimeout: 30 * time.Second, LogLevel: "debug"}},
		{name: "Test2 referral link", args: []string{"cmd", "-r", "https://grandv.app/register?ref=XYZ789"}, expectPanic: false,
			expected: &Config{ReferralURL: "https://grandv.app/register?ref=XYZ789"}},
		{name: "Test3 incorrect timeout", args: []string{"cmd", "-a", "https://api.grandv.app/api", "-t", "abc"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {

				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
