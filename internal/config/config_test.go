package config

import (
	"testing"

	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "x-other=1, uptrace-dsn='https://token@api.uptrace.dev?grpc=4317'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "APP_LOG_LEVEL", "APP_LOG_FORMAT", "UPTRACE_ENABLED", "ODDS_DATA_DIR",
		"ODDS_BOOKMAKER", "PROJECTION_GROUP", "DOCUMENT_WORKERS", "BACKFILL_WORKERS",
		"DB_DISABLE_PREPARED_BINARY_RESULT", "APP_SERVICE_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvDev {
		t.Fatalf("unexpected AppEnv: %s", cfg.AppEnv)
	}
	if cfg.ServiceName != "ffgg-projections" {
		t.Fatalf("unexpected ServiceName: %s", cfg.ServiceName)
	}
	if cfg.LogLevel != logging.LevelInfo || cfg.LogFormat != logging.FormatJSON {
		t.Fatalf("unexpected log settings: %s %s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.OddsDataDir != "data" || cfg.ProjectionGroup != "mlb_batters" || cfg.OddsBookmaker != "" {
		t.Fatalf("unexpected odds settings: %+v", cfg)
	}
	if cfg.DocumentWorkers != 4 || cfg.BackfillWorkers != 4 {
		t.Fatalf("unexpected worker counts: %d %d", cfg.DocumentWorkers, cfg.BackfillWorkers)
	}
	if !cfg.DBDisablePreparedBinary {
		t.Fatalf("expected DBDisablePreparedBinary=true by default")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_ENV", "PROD")
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("APP_LOG_LEVEL", "warning")
	t.Setenv("APP_LOG_FORMAT", "console")
	t.Setenv("ODDS_BOOKMAKER", " DraftKings ")
	t.Setenv("PROJECTION_GROUP", "nfl_offense")
	t.Setenv("DOCUMENT_WORKERS", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.AppEnv != EnvProd {
		t.Fatalf("unexpected AppEnv: %s", cfg.AppEnv)
	}
	if cfg.LogLevel != logging.LevelWarn || cfg.LogFormat != logging.FormatConsole {
		t.Fatalf("unexpected log settings: %s %s", cfg.LogLevel, cfg.LogFormat)
	}
	if cfg.OddsBookmaker != "draftkings" {
		t.Fatalf("unexpected OddsBookmaker: %q", cfg.OddsBookmaker)
	}
	if cfg.ProjectionGroup != "nfl_offense" || cfg.DocumentWorkers != 8 {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
}

func TestLoad_WorkerValidation(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero document workers", key: "DOCUMENT_WORKERS", value: "0"},
		{name: "negative backfill workers", key: "BACKFILL_WORKERS", value: "-2"},
		{name: "non numeric document workers", key: "DOCUMENT_WORKERS", value: "four"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("APP_ENV", EnvDev)
			t.Setenv("UPTRACE_ENABLED", "false")
			t.Setenv(tt.key, tt.value)

			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}

func TestLoad_InvalidBool(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("DB_DISABLE_PREPARED_BINARY_RESULT", "maybe")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid DB_DISABLE_PREPARED_BINARY_RESULT")
	}
}

func TestLoad_ErrorsNameTheVariable(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "false")
	t.Setenv("BACKFILL_WORKERS", "0")

	_, err := Load()
	if err == nil || err.Error() != "BACKFILL_WORKERS must be > 0" {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("BACKFILL_WORKERS", "")
	t.Setenv("APP_ENV", "qa")
	_, err = Load()
	if err == nil || err.Error() != `invalid APP_ENV "qa": valid values are dev, stage, prod` {
		t.Fatalf("unexpected error: %v", err)
	}
}
