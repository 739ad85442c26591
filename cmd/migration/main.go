package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"

	"github.com/frenchfries11234/ff.gg/internal/app"
	"github.com/frenchfries11234/ff.gg/internal/config"
	"github.com/frenchfries11234/ff.gg/internal/platform/logging"
)

type command struct {
	usage string
	run   func(m *migrate.Migrate, args []string, logger *logging.Logger) error
}

var commands = map[string]command{
	"up":      {usage: "up", run: migrateUp},
	"down":    {usage: "down [steps]", run: migrateDown},
	"version": {usage: "version", run: printVersion},
	"force":   {usage: "force <version>", run: forceVersion},
	"goto":    {usage: "goto <version>", run: gotoVersion},
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "migration:", err)
		os.Exit(1)
	}
}

func run(argv []string) error {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := pflag.NewFlagSet("migration", pflag.ExitOnError)
	flags.Usage = func() { printUsage(flags) }
	dir := flags.StringP("dir", "d", envOr("MIGRATIONS_DIR", "db/migrations"), "directory holding the *.up.sql / *.down.sql files")
	dbURL := flags.String("db-url", os.Getenv("DB_URL"), "Postgres URL; defaults to DB_URL")
	if err := flags.Parse(argv); err != nil {
		return err
	}
	if flags.NArg() == 0 {
		printUsage(flags)
		return fmt.Errorf("missing command")
	}
	cmd, err := lookupCommand(flags.Arg(0))
	if err != nil {
		printUsage(flags)
		return err
	}
	if strings.TrimSpace(*dbURL) == "" {
		return fmt.Errorf("DB_URL or --db-url is required")
	}

	logger := app.NewLogger(cfg).Named("migration")
	defer func() { _ = logger.Sync() }()

	sourceURL, err := migrationsSourceURL(*dir)
	if err != nil {
		return err
	}
	m, err := migrate.New(sourceURL, app.NormalizeDBURL(*dbURL, cfg.DBDisablePreparedBinary))
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	m.Log = logger
	defer closeMigrator(m, logger)

	return cmd.run(m, flags.Args()[1:], logger)
}

func lookupCommand(name string) (command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "migrate" {
		name = "goto"
	}
	cmd, ok := commands[name]
	if !ok {
		return command{}, fmt.Errorf("unknown command %q", name)
	}
	return cmd, nil
}

func migrateUp(m *migrate.Migrate, _ []string, logger *logging.Logger) error {
	if err := ignoreNoChange(m.Up(), logger); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	logger.Info("migrations applied")
	return nil
}

func migrateDown(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	steps, err := parseSteps(args)
	if err != nil {
		return err
	}
	if err := ignoreNoChange(m.Steps(-steps), logger); err != nil {
		return fmt.Errorf("roll back %d steps: %w", steps, err)
	}
	logger.Info("migrations rolled back", "steps", steps)
	return nil
}

func printVersion(m *migrate.Migrate, _ []string, _ *logging.Logger) error {
	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		fmt.Println("version: none")
		fmt.Println("dirty: false")
		return nil
	}
	if err != nil {
		return fmt.Errorf("read version: %w", err)
	}
	fmt.Printf("version: %d\n", version)
	fmt.Printf("dirty: %t\n", dirty)
	return nil
}

func forceVersion(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("force requires a version argument")
	}
	version, err := parseVersion(args[0])
	if err != nil {
		return err
	}
	if err := m.Force(version); err != nil {
		return fmt.Errorf("force version %d: %w", version, err)
	}
	logger.Info("forced migration version", "version", version)
	return nil
}

func gotoVersion(m *migrate.Migrate, args []string, logger *logging.Logger) error {
	if len(args) < 1 {
		return fmt.Errorf("goto requires a target version argument")
	}
	target, err := parseTarget(args[0])
	if err != nil {
		return err
	}
	if err := ignoreNoChange(m.Migrate(target), logger); err != nil {
		return fmt.Errorf("migrate to %d: %w", target, err)
	}
	logger.Info("migrated", "version", target)
	return nil
}

func parseSteps(args []string) (int, error) {
	if len(args) == 0 {
		return 1, nil
	}

	steps, err := strconv.Atoi(strings.TrimSpace(args[0]))
	if err != nil {
		return 0, fmt.Errorf("invalid down steps %q: %w", args[0], err)
	}
	if steps <= 0 {
		return 0, fmt.Errorf("down steps must be > 0")
	}
	return steps, nil
}

// parseVersion accepts -1 too, which migrate.Force uses for "no version".
func parseVersion(raw string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid version %q: %w", raw, err)
	}
	if value < database.NilVersion {
		return 0, fmt.Errorf("version must be >= %d", database.NilVersion)
	}
	return value, nil
}

func parseTarget(raw string) (uint, error) {
	value, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 0)
	if err != nil {
		return 0, fmt.Errorf("invalid target version %q: %w", raw, err)
	}
	return uint(value), nil
}

func ignoreNoChange(err error, logger *logging.Logger) error {
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migration changes")
		return nil
	}
	return err
}

func closeMigrator(m *migrate.Migrate, logger *logging.Logger) {
	srcErr, dbErr := m.Close()
	if srcErr != nil {
		logger.Warn("close migration source", "error", srcErr)
	}
	if dbErr != nil {
		logger.Warn("close migration db", "error", dbErr)
	}
}

func migrationsSourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(strings.TrimSpace(dir))
	if err != nil {
		return "", fmt.Errorf("resolve migrations dir %q: %w", dir, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("migrations dir: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("migrations dir %s is not a directory", abs)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func printUsage(flags *pflag.FlagSet) {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(os.Stderr, "usage: migration [flags] <command> [args]")
	fmt.Fprintln(os.Stderr, "commands:")
	for _, name := range names {
		fmt.Fprintf(os.Stderr, "  %s\n", commands[name].usage)
	}
	fmt.Fprintln(os.Stderr, "examples:")
	fmt.Fprintln(os.Stderr, "  migration up")
	fmt.Fprintln(os.Stderr, "  migration down 1")
	fmt.Fprintln(os.Stderr, "  migration force 1772000100")
	fmt.Fprintln(os.Stderr, "  migration --dir ./db/migrations goto 1772000000")
	fmt.Fprintln(os.Stderr, "flags:")
	fmt.Fprint(os.Stderr, flags.FlagUsages())
}
