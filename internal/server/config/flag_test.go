package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		expected *Config
		name     string
		args     []string
	}{
		{
			name: "all flags",
			args: []string{"-a", "127.0.0.1:9090", "-s", "secret", "-t", "5m", "-u", "operator_1", "-p", "password1", "-l", "debug"},
			expected: &Config{
				EndpointAddr:                "127.0.0.1:9090",
				SecretKey:                   "secret",
				AccessTokenValidityDuration: 5 * time.Minute,
				AdminUsername:               "operator_1",
				AdminPassword:               "password1",
				LogLevel:                    "debug",
			},
		},
		{
			name: "foreign flags are ignored",
			args: []string{"-x", "1", "-a", ":1", "--verbose"},
			expected: &Config{
				EndpointAddr: ":1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{}
			require.NoError(t, parseFlags(config, tt.args))
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}
