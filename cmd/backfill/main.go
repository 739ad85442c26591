package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/frenchfries11234/ff.gg/internal/app"
	"github.com/frenchfries11234/ff.gg/internal/config"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/observability"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "backfill:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("backfill", pflag.ExitOnError)
	flags.StringVarP(&cfg.ProjectionGroup, "group", "g", sport.GroupNFLOffense, "sport group whose scoring profiles are applied")
	flags.IntVarP(&cfg.BackfillWorkers, "workers", "w", cfg.BackfillWorkers, "concurrent players")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if cfg.BackfillWorkers <= 0 {
		return fmt.Errorf("--workers must be > 0")
	}

	logger := app.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		logger.Warn("load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	traced := observability.StartRun(ctx, cfg, "backfill", logger, attribute.String("projection.group", cfg.ProjectionGroup))
	defer func() { traced.Finish(err) }()
	ctx = traced.Context()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc, err := app.NewBackfillService(cfg, db, logger)
	if err != nil {
		return err
	}
	result, err := svc.Run(ctx)
	fmt.Fprintf(os.Stdout, "players=%d matched=%d scanned_all=%t scanned=%d updated=%d failed=%d\n",
		result.TotalPlayers, result.MatchedPlayers, result.ScannedAll,
		result.PlayersScanned, result.GamesUpdated, result.PlayersFailed)
	return err
}
