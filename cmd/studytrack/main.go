package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/mpetrova/studytrack/internal/buildinfo"
	"github.com/mpetrova/studytrack/internal/client/cli"
	"github.com/mpetrova/studytrack/internal/client/config"
	"github.com/mpetrova/studytrack/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app, err := cli.NewApp(cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
