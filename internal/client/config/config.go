// Package config assembles the runtime settings of the portal client from
// layered sources: built-in defaults, environment (optionally via a .env
// file), a JSON config file, and command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the portal CLI.
//
// Fields:
//   - APIBaseURL: scheme://host:port of the backend, fixed for the process
//     lifetime.
//   - DatabasePath: location of the local sqlite database.
//   - HTTPTimeout: overall per-request timeout; zero means none, so a hung
//     request blocks only its caller.
type Config struct {
	APIBaseURL   string
	DatabasePath string
	HTTPTimeout  time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:5001"
	c.DatabasePath = "karijera.db"
	c.HTTPTimeout = 0
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
