package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dmitrijs2005/llmpid-console/internal/client/models"
)

// ConfigEnv names the environment variable consulted for the JSON config
// path when neither -c nor -config is given.
const ConfigEnv = "LLMPID_CONSOLE_CONFIG"

// Config holds runtime settings for the console.
//
// Fields:
//   - APIBaseURL: root of the REST API, including the /api prefix.
//   - RequestTimeout: upper bound for a single API call.
//   - DBPath: sqlite file with local preferences; empty disables them.
//   - LogLevel: debug, info, warn or error.
//   - PageLimit: history page size used until a saved preference exists.
//   - MetricsAddr: when set, /metrics is served on this address.
type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	DBPath         string
	LogLevel       string
	PageLimit      int
	MetricsAddr    string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080/api"
	c.RequestTimeout = 10 * time.Second
	c.DBPath = "llmpid-console.db"
	c.LogLevel = "warn"
	c.PageLimit = models.DefaultLimit
	c.MetricsAddr = ""
}

// Validate rejects settings the console cannot start with.
func (c *Config) Validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIBaseURL)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	if c.PageLimit < 1 || c.PageLimit > models.MaxLimit {
		return fmt.Errorf("page limit must be within 1..%d, got %d", models.MaxLimit, c.PageLimit)
	}
	return nil
}

// LoadConfig builds a Config from defaults, then the JSON file (if any),
// then flags found in args (os.Args[1:] in production). Later sources take
// precedence over earlier ones.
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
