// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the service and applies it
// with goose. Each supported driver has its own migration directory.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"

	"github.com/MKhiriev/go-car-rental/internal/logger"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB             = errors.New("db is nil")
	ErrUnsupportedDriver = errors.New("migration error: unsupported driver")
)

// gooseDialects maps configured driver names to goose dialects and
// migration directories.
var gooseDialects = map[string]struct {
	dialect string
	dir     string
}{
	"postgres": {dialect: "pgx", dir: "postgres"},
	"sqlite":   {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies every pending migration of driver to db.
func Migrate(db *sql.DB, driver string, log *logger.Logger) error {
	if db == nil {
		return ErrNilDB
	}

	target, ok := gooseDialects[driver]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	migrationsFS, err := fs.Sub(embedMigrations, target.dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", target.dir, err)
	}

	goose.SetBaseFS(migrationsFS)
	goose.SetLogger(gooseLogger{log})

	if err = goose.SetDialect(target.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err = goose.Up(db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// gooseLogger routes goose output through the service logger.
type gooseLogger struct {
	log *logger.Logger
}

func (l gooseLogger) Printf(format string, v ...any) {
	l.log.Info().Str("func", "goose").Msgf(format, v...)
}

// Fatalf logs at error level. Migrate reports the failure through its
// return value, so the process is not terminated here.
func (l gooseLogger) Fatalf(format string, v ...any) {
	l.log.Error().Str("func", "goose").Msgf(format, v...)
}
