package config

import (
	"flag"
	"io"

	"github.com/dmitrijs2005/llmpid-console/internal/flagx"
)

// parseFlags overlays cfg with command-line flags.
//
// Supported flags:
//
//	-a string     API base URL
//	-t duration   request timeout ("10s")
//	-d string     local database path ("" disables preferences)
//	-l string     log level
//	-p int        default page size
//	-m string     metrics listen address
//
// Only these flags are taken from args (see flagx.FilterArgs), so flags meant
// for other components do not break parsing.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-a", "-t", "-d", "-l", "-p", "-m"})

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL")
	fs.DurationVar(&cfg.RequestTimeout, "t", cfg.RequestTimeout, "request timeout")
	fs.StringVar(&cfg.DBPath, "d", cfg.DBPath, "local database path")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.IntVar(&cfg.PageLimit, "p", cfg.PageLimit, "default page size")
	fs.StringVar(&cfg.MetricsAddr, "m", cfg.MetricsAddr, "metrics listen address")

	return fs.Parse(args)
}
