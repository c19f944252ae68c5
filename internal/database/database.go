// Package database manages the embedded relational store. FinBot is
// local-first: the default driver is a SQLite file next to the binary,
// with Postgres retained behind DB_DRIVER for shared deployments.
package database

import (
	"fmt"
	"time"

	"finbot/internal/config"
	"finbot/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Manager handles database operations
type Manager struct {
	db  *gorm.DB
	cfg *config.Config
}

// MigrationTargets returns the golang-migrate source URL and connection
// string for the configured driver. Each driver carries its own migration
// set: SQLite and Postgres schemas diverge on key and timestamp types.
func MigrationTargets(cfg *config.Config) (source, dsn string, err error) {
	switch cfg.DBDriver {
	case "sqlite", "":
		return "file://migrations/sqlite", "sqlite3://" + cfg.DBPath, nil
	case "postgres":
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName, cfg.DBSSLMode)
		return "file://migrations/postgres", dsn, nil
	default:
		return "", "", fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
}

// NewManager opens the configured database and returns a manager for it.
func NewManager(cfg *config.Config) (*Manager, error) {
	var (
		db  *gorm.DB
		err error
	)

	switch cfg.DBDriver {
	case "sqlite", "":
		db, err = gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	case "postgres":
		pgDSN := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode)
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  pgDSN,
			PreferSimpleProtocol: true,
		}), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying DB: %w", err)
	}
	if cfg.DBDriver == "postgres" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite serializes writers; a single connection avoids SQLITE_BUSY.
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	return &Manager{db: db, cfg: cfg}, nil
}

// RunMigrations applies pending SQL migrations for the configured driver.
func (m *Manager) RunMigrations() error {
	logger.Get().Info("Running database migrations...")

	source, dsn, err := MigrationTargets(m.cfg)
	if err != nil {
		return err
	}

	mig, err := migrate.New(source, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() {
		srcErr, dbErr := mig.Close()
		if srcErr != nil {
			logger.Get().Warnf("migrate source close error: %v", srcErr)
		}
		if dbErr != nil {
			logger.Get().Warnf("migrate database close error: %v", dbErr)
		}
	}()

	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration failed: %w", err)
	}

	logger.Get().Info("Database migrations completed successfully")
	return nil
}

// DB returns the underlying GORM database instance
func (m *Manager) DB() *gorm.DB {
	return m.db
}
