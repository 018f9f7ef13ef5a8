package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envServerAddr  = "STYLIST_SERVER_ADDR"
	envTimeout     = "STYLIST_REQUEST_TIMEOUT"
	envSessionDB   = "STYLIST_SESSION_DB"
	envDressRender = "STYLIST_DRESS_RENDER"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is folded in first; a missing file is fine.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envTimeout); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
	if v := os.Getenv(envSessionDB); v != "" {
		cfg.SessionDBPath = v
	}
	if v := os.Getenv(envDressRender); v != "" {
		cfg.DressRender = v
	}
}
