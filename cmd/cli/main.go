package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/llmpid-console/internal/buildinfo"
	"github.com/dmitrijs2005/llmpid-console/internal/client/cli"
	"github.com/dmitrijs2005/llmpid-console/internal/client/config"
	"github.com/dmitrijs2005/llmpid-console/internal/logging"
	"golang.org/x/sync/errgroup"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("%v", err)
	}

	logger := logging.New(os.Stderr, cfg.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := cli.NewApp(ctx, cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error(ctx, "close", "error", err)
		}
	}()

	var g errgroup.Group
	if cfg.MetricsAddr != "" {
		g.Go(func() error { return app.ServeMetrics(ctx, cfg.MetricsAddr) })
	}

	app.Run(ctx)

	cancel()
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "metrics listener", "error", err)
	}
}
