package config

import (
	"flag"
	"os"
	"time"

	"github.com/mkresic/karijera/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   base URL of the backend API
//	-d string   path to the local database file
//	-t int      per-request HTTP timeout in seconds (0 disables)
//
// os.Args is filtered to only the flags handled here, so the JSON config
// flags parsed elsewhere do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-t"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "base URL of the backend API")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path to the local database file")
	timeoutSecs := fs.Int("t", int(cfg.HTTPTimeout.Seconds()), "HTTP timeout in seconds (0 disables)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.HTTPTimeout = time.Duration(*timeoutSecs) * time.Second
}
