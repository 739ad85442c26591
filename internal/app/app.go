package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/frenchfries11234/ff.gg/internal/config"
	"github.com/frenchfries11234/ff.gg/internal/domain/sport"
	"github.com/frenchfries11234/ff.gg/internal/infrastructure/oddsfile"
	"github.com/frenchfries11234/ff.gg/internal/infrastructure/repository/postgres"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
	"github.com/frenchfries11234/ff.gg/internal/usecase"
)

const dbPingTimeout = 5 * time.Second

// NewLogger builds the process logger from config and installs it as the
// package default. Logs go to stderr; stdout carries command output.
func NewLogger(cfg config.Config) *logging.Logger {
	logger := logging.NewWithWriter(cfg.LogLevel, cfg.LogFormat, os.Stderr).With(
		"service", cfg.ServiceName,
		"version", cfg.ServiceVersion,
		"env", cfg.AppEnv,
	)
	logging.SetDefault(logger)
	return logger
}

// OpenDB opens a traced Postgres handle and checks that it is reachable.
func OpenDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := NormalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.BackfillWorkers + 2)
	db.SetMaxIdleConns(cfg.BackfillWorkers)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

func NewProjectionService(cfg config.Config, logger *logging.Logger) *usecase.ProjectionService {
	return usecase.NewProjectionService(
		sport.DefaultCatalog(),
		oddsfile.NewDirectorySource(cfg.OddsDataDir),
		cfg.DocumentWorkers,
		logger,
	)
}

func NewImportService(cfg config.Config, db *sqlx.DB, logger *logging.Logger) *usecase.ImportService {
	return usecase.NewImportService(
		sport.DefaultCatalog(),
		oddsfile.NewDirectorySource(cfg.OddsDataDir),
		postgres.NewPlayerRepository(db),
		postgres.NewGameProjectionRepository(db),
		logger,
	)
}

func NewBackfillService(cfg config.Config, db *sqlx.DB, logger *logging.Logger) (*usecase.BackfillService, error) {
	group, err := sport.DefaultCatalog().Lookup(cfg.ProjectionGroup)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err)
	}
	if len(group.RosterPositions()) == 0 {
		return nil, fmt.Errorf("%w: group %s is not resolved against a roster and cannot be backfilled", usecase.ErrInvalidInput, group.Key())
	}
	return usecase.NewBackfillService(
		group,
		postgres.NewPlayerRepository(db),
		postgres.NewGameProjectionRepository(db),
		cfg.BackfillWorkers,
		logger,
	), nil
}
