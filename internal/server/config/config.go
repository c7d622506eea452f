// Package config handles configuration for the stand-in API,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"fmt"
	"time"
)

// ConfigEnv names the environment variable consulted for the JSON config
// path when neither -c nor -config is given.
const ConfigEnv = "LLMPID_API_CONFIG"

// Config holds runtime settings for the stand-in API.
//
// Fields:
//   - EndpointAddr: bind address of the HTTP listener.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default outside development.
//   - AccessTokenValidityDuration: access token lifetime.
//   - AdminUsername / AdminPassword: the single operator account seeded on start.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	EndpointAddr                string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AdminUsername               string
	AdminPassword               string
	LogLevel                    string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.SecretKey = "secretKey"
	c.AccessTokenValidityDuration = 30 * time.Minute
	c.AdminUsername = "llmpid_admin"
	c.AdminPassword = "llmpid_admin"
	c.LogLevel = "info"
}

// Validate rejects settings the API cannot start with. Username and
// password bounds are the ones the login endpoint enforces.
func (c *Config) Validate() error {
	if c.SecretKey == "" {
		return fmt.Errorf("secret key must not be empty")
	}
	if c.AccessTokenValidityDuration <= 0 {
		return fmt.Errorf("token validity must be positive, got %s", c.AccessTokenValidityDuration)
	}
	if n := len(c.AdminUsername); n < 8 || n > 32 {
		return fmt.Errorf("admin username must be 8..32 characters, got %d", n)
	}
	if len(c.AdminPassword) < 8 {
		return fmt.Errorf("admin password must be at least 8 characters")
	}
	return nil
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from flags found in args.
func LoadConfig(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
