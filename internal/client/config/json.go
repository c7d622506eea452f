package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/llmpid-console/internal/flagx"
	"github.com/dmitrijs2005/llmpid-console/internal/timex"
)

// JSONConfig is a DTO used exclusively for JSON unmarshalling. Durations use
// timex.Duration so they may be written as "10s" or as nanoseconds.
// Pointer fields tell "absent" from an explicit empty value.
type JSONConfig struct {
	APIBaseURL     *string         `json:"api_base_url"`
	RequestTimeout *timex.Duration `json:"request_timeout"`
	DBPath         *string         `json:"db_path"`
	LogLevel       *string         `json:"log_level"`
	PageLimit      *int            `json:"page_limit"`
	MetricsAddr    *string         `json:"metrics_addr"`
}

// parseJSON overlays cfg with the file named by -c/-config in args or by
// ConfigEnv. Without a path it does nothing. Only keys present in the file
// are applied.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigPath(args, ConfigEnv)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var jc JSONConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.DBPath != nil {
		cfg.DBPath = *jc.DBPath
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.PageLimit != nil {
		cfg.PageLimit = *jc.PageLimit
	}
	if jc.MetricsAddr != nil {
		cfg.MetricsAddr = *jc.MetricsAddr
	}
	return nil
}
