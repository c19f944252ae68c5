package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"finbot/internal/config"
	"finbot/internal/database"
	"finbot/internal/logger"
)

const usage = "usage: migrate <up|down|version|force> [N]"

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Fatalf("migrate: %v", err)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	source, dsn, err := database.MigrationTargets(cfg)
	if err != nil {
		return err
	}

	m, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil {
			logger.Get().Warnf("close migration source: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("close migration database: %v", dbErr)
		}
	}()

	switch args[0] {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("up: %w", err)
		}
		logger.Get().Info("migrations applied")

	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[1], err)
			}
		}
		if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("down: %w", err)
		}
		logger.Get().Infof("rolled back %d migration(s)", steps)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			return fmt.Errorf("read version: %w", err)
		}
		logger.Get().Infof("version=%d dirty=%v", version, dirty)

	case "force":
		if len(args) < 2 {
			return errors.New("force requires a version number")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[1], err)
		}
		if err := m.Force(version); err != nil {
			return fmt.Errorf("force: %w", err)
		}
		logger.Get().Infof("forced version to %d", version)

	default:
		return fmt.Errorf("unknown command %q (%s)", args[0], usage)
	}

	return nil
}
