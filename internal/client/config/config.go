package config

import "time"

// Config holds runtime settings for the studytrack CLI.
//
// Fields:
//   - ServerBaseURL: base URL of the studytrack HTTP API, including the
//     path prefix (e.g. http://localhost:8001/api).
//   - RequestTimeout: per-request deadline for API calls.
//   - DatabasePath: path to the SQLite file holding the saved credential.
type Config struct {
	ServerBaseURL  string
	DatabasePath   string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://localhost:8001/api"
	c.DatabasePath = "studytrack.db"
	c.RequestTimeout = 60 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
