package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/mkresic/karijera/internal/flagx"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. The timeout
// is an integer number of seconds to keep config files trivial to write.
type jsonConfig struct {
	APIBaseURL         string `json:"api_base_url"`
	DatabasePath       string `json:"database_path"`
	HTTPTimeoutSeconds *int   `json:"http_timeout_seconds"`
}

// parseJSON overlays cfg with values from the JSON file named by the -c or
// -config flag. No flag means no JSON layer. Read or parse failures panic;
// a config file that exists but cannot be used is a startup defect, not a
// condition to limp through.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.HTTPTimeoutSeconds != nil && *jc.HTTPTimeoutSeconds >= 0 {
		cfg.HTTPTimeout = time.Duration(*jc.HTTPTimeoutSeconds) * time.Second
	}
}
