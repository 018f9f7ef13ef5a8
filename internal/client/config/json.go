package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dkozlov/stylist/internal/flagx"
	"github.com/dkozlov/stylist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "30s" or as integer nanoseconds.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
	SessionDBPath      string         `json:"session_db_path"`
	DressRender        string         `json:"dress_render"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c/-config flags. Absent flag means no JSON is loaded. Only fields
// present in the file override the current values. Panics on read or
// unmarshal errors, matching the fail-fast startup path.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionDBPath != "" {
		cfg.SessionDBPath = jc.SessionDBPath
	}
	if jc.DressRender != "" {
		cfg.DressRender = jc.DressRender
	}
}
