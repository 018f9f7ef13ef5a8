package config

import (
	"flag"
	"os"
	"time"

	"github.com/dkozlov/stylist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-a string      base URL of the backend server
//	-t int         request timeout in seconds
//	-d string      session database path
//	-dress string  dress rendering policy (combined|separate)
//
// Only the flags listed here are parsed; os.Args is filtered first so flags
// owned by other packages do not interfere.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d", "-dress"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "base URL of the backend server")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "session database path")
	fs.StringVar(&cfg.DressRender, "dress", cfg.DressRender, "dress rendering policy (combined|separate)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}
