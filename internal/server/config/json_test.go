package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, data any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	path := writeTempJSON(t, map[string]any{
		"endpoint_addr":                  ":9999",
		"access_token_validity_duration": "2m",
		"admin_username":                 "json_admin",
	})

	config := &Config{}
	config.LoadDefaults()
	require.NoError(t, parseJSON(config, []string{"-c", path}))

	assert.Equal(t, ":9999", config.EndpointAddr)
	assert.Equal(t, 2*time.Minute, config.AccessTokenValidityDuration)
	assert.Equal(t, "json_admin", config.AdminUsername)
	assert.Equal(t, "secretKey", config.SecretKey, "absent keys keep their value")
}

func TestParseJSON_FlagsWin(t *testing.T) {
	path := writeTempJSON(t, map[string]any{"endpoint_addr": ":9999"})
	t.Setenv(ConfigEnv, path)

	c, err := LoadConfig([]string{"-a", ":7777"})
	require.NoError(t, err)
	assert.Equal(t, ":7777", c.EndpointAddr)
}

func TestParseJSON_Errors(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	err := parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "missing.json")})
	require.ErrorContains(t, err, "read config")

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o600))
	err = parseJSON(&Config{}, []string{"-c", bad})
	require.ErrorContains(t, err, "parse config")
}

func TestParseJSON_NoPath(t *testing.T) {
	t.Setenv(ConfigEnv, "")

	config := &Config{EndpointAddr: ":1"}
	require.NoError(t, parseJSON(config, nil))
	assert.Equal(t, ":1", config.EndpointAddr)
}
