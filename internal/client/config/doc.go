// Package config loads runtime configuration for the console.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file named by -c/-config or LLMPID_CONSOLE_CONFIG.
//  3. Command-line flags, which override earlier values.
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://127.0.0.1:8080/api",
//	  "request_timeout": "10s",
//	  "db_path": "llmpid-console.db",
//	  "log_level": "warn",
//	  "page_limit": 10,
//	  "metrics_addr": ":9091"
//	}
//
// The session credential is never part of the configuration.
package config
