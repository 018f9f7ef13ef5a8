// Package config assembles the CLI's runtime settings from defaults, an
// optional .env file, an optional JSON file and command-line flags, in that
// order. Later sources take precedence.
package config

import "time"

// Dress rendering policies for the outfit view (see cli package).
const (
	DressRenderCombined = "combined"
	DressRenderSeparate = "separate"
)

// Config holds runtime settings for the stylist CLI.
//
// Fields:
//   - ServerEndpointAddr: base URL of the wardrobe backend.
//   - RequestTimeout: per-request HTTP timeout.
//   - SessionDBPath: path of the local session database.
//   - DressRender: how a dress slot is displayed (combined/separate).
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
	SessionDBPath      string
	DressRender        string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:8000"
	c.RequestTimeout = 30 * time.Second
	c.SessionDBPath = "stylist.db"
	c.DressRender = DressRenderCombined
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file if present), JSON (if a
// config file is named) and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
