package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/llmpid-console/internal/flagx"
	"github.com/dmitrijs2005/llmpid-console/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept "30m" as well
// as integer nanoseconds; absent keys leave the current value alone.
type JsonConfig struct {
	EndpointAddr                *string         `json:"endpoint_addr"`
	SecretKey                   *string         `json:"secret_key"`
	AccessTokenValidityDuration *timex.Duration `json:"access_token_validity_duration"`
	AdminUsername               *string         `json:"admin_username"`
	AdminPassword               *string         `json:"admin_password"`
	LogLevel                    *string         `json:"log_level"`
}

// parseJSON overlays config with the file named by -c/-config in args or
// by ConfigEnv. Without a path it does nothing.
func parseJSON(config *Config, args []string) error {
	path := flagx.ConfigPath(args, ConfigEnv)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	setString(&config.EndpointAddr, jc.EndpointAddr)
	setString(&config.SecretKey, jc.SecretKey)
	setString(&config.AdminUsername, jc.AdminUsername)
	setString(&config.AdminPassword, jc.AdminPassword)
	setString(&config.LogLevel, jc.LogLevel)
	if jc.AccessTokenValidityDuration != nil {
		config.AccessTokenValidityDuration = jc.AccessTokenValidityDuration.Duration
	}
	return nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
