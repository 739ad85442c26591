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
	"github.com/frenchfries11234/ff.gg/internal/interfaces/output"
	"github.com/frenchfries11234/ff.gg/internal/observability"
	"github.com/frenchfries11234/ff.gg/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "projections:", err)
		os.Exit(1)
	}
}

func run() (err error) {
	dotenvErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("projections", pflag.ExitOnError)
	group := flags.StringP("group", "g", cfg.ProjectionGroup, "sport group (mlb_batters, mlb_pitchers, nfl_qb, nfl_rb, nfl_wr_te, nfl_offense)")
	bookmaker := flags.StringP("bookmaker", "b", cfg.OddsBookmaker, "only use quotes from this bookmaker key")
	dataDir := flags.StringP("data-dir", "d", cfg.OddsDataDir, "root directory of odds documents")
	format := flags.StringP("format", "f", string(output.FormatJSON), "output format: json or table")
	detail := flags.Bool("detail", false, "include the per-line estimates behind every stat")
	pretty := flags.Bool("pretty", false, "indent json output")
	if err := flags.Parse(os.Args[1:]); err != nil {
		return err
	}

	outFormat, err := output.ParseFormat(*format)
	if err != nil {
		return err
	}
	cfg.OddsDataDir = *dataDir

	logger := app.NewLogger(cfg)
	defer func() { _ = logger.Sync() }()
	if dotenvErr != nil && !os.IsNotExist(dotenvErr) {
		logger.Warn("load .env", "error", dotenvErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	traced := observability.StartRun(ctx, cfg, "projections", logger, attribute.String("projection.group", *group))
	defer func() { traced.Finish(err) }()
	ctx = traced.Context()

	slate, err := app.NewProjectionService(cfg, logger).BuildSlate(ctx, usecase.SlateRequest{
		Group:     *group,
		Bookmaker: *bookmaker,
	})
	if err != nil {
		return err
	}

	logger.Info("projections computed",
		"group", slate.Group.Key(),
		"rows", len(slate.Rows),
		"skipped_documents", len(slate.Skipped),
		"excluded_players", len(slate.Excluded),
	)

	return output.Write(os.Stdout, slate, output.Options{
		Format: outFormat,
		Detail: *detail,
		Pretty: *pretty,
	})
}
