package main

import (
	"context"
	"log"
	"os"

	"github.com/dkozlov/stylist/internal/client/cli"
	"github.com/dkozlov/stylist/internal/client/config"
	"github.com/dkozlov/stylist/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	logger := logging.NewDefault(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
