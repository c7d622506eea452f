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
		name     string
		args     []string
		expected *Config
		wantErr  bool
	}{
		{
			name: "all flags",
			args: []string{"-a", "https://api.example/api", "-t", "3s", "-d", "", "-l", "debug", "-p", "25", "-m", ":9091"},
			expected: &Config{
				APIBaseURL:     "https://api.example/api",
				RequestTimeout: 3 * time.Second,
				DBPath:         "",
				LogLevel:       "debug",
				PageLimit:      25,
				MetricsAddr:    ":9091",
			},
		},
		{
			name:     "unknown flags are ignored",
			args:     []string{"-x", "1", "-a=http://h/api", "--verbose"},
			expected: &Config{APIBaseURL: "http://h/api"},
		},
		{name: "bad duration", args: []string{"-t", "soon"}, wantErr: true},
		{name: "bad page size", args: []string{"-p", "ten"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			err := parseFlags(cfg, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}
