package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"go.opentelemetry.io/otel/attribute"

	"github.com/frenchfries11234/ff.gg/internal/app"
	"github.com/frenchfries11234/ff.gg/internal/config"
	"github.com/frenchfries11234/ff.gg/internal/infrastructure/oddsfile"
	"github.com/frenchfries11234/ff.gg/internal/observability"
	"github.com/frenchfries11234/ff.gg/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "importer:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("importer", pflag.ExitOnError)
	group := flags.StringP("group", "g", cfg.ProjectionGroup, "sport group whose odds documents are imported")
	bookmaker := flags.StringP("bookmaker", "b", cfg.OddsBookmaker, "only use quotes from this bookmaker key")
	dataDir := flags.StringP("data-dir", "d", cfg.OddsDataDir, "root directory of odds documents")
	roster := flags.String("roster", "", "JSON roster file to upsert before importing odds")
	rosterOnly := flags.Bool("roster-only", false, "upsert the roster and skip the odds import")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}
	if *rosterOnly && strings.TrimSpace(*roster) == "" {
		return fmt.Errorf("--roster-only requires --roster")
	}
	cfg.OddsDataDir = *dataDir

	logger := app.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		logger.Warn("load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	traced := observability.StartRun(ctx, cfg, "importer", logger, attribute.String("projection.group", *group))
	defer func() { traced.Finish(err) }()
	ctx = traced.Context()

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	svc := app.NewImportService(cfg, db, logger)

	if path := strings.TrimSpace(*roster); path != "" {
		players, skipped, err := oddsfile.ReadRoster(path)
		if err != nil {
			return err
		}
		for _, reason := range skipped {
			logger.Warn("skip roster record", "error", reason)
		}
		written, err := svc.ImportRoster(ctx, players)
		if err != nil {
			return err
		}
		logger.Info("roster imported", "path", path, "players", written, "skipped", len(skipped))
	}
	if *rosterOnly {
		return nil
	}

	result, err := svc.ImportGroup(ctx, usecase.ImportRequest{Group: *group, Bookmaker: *bookmaker})
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "documents=%d skipped=%d inserted=%d updated=%d unresolved=%d filtered=%d ambiguous=%d\n",
		result.Documents, len(result.Skipped), result.Inserted, result.Updated,
		result.Unresolved, result.Filtered, result.Ambiguous)
	return nil
}
