// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
)

// Storage is the durable store of the service. The embedded repositories run
// on the connection pool; [Storage.Do] runs a unit of work in a transaction.
type Storage struct {
	*Repositories
	db *DB
}

// NewStorage connects to the database selected by cfg.Driver and applies
// pending migrations.
func NewStorage(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storage, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		log.Err(err).Str("func", "NewStorage").Msg("error applying migrations")
		return nil, err
	}

	return NewStorageFromDB(db), nil
}

// NewStorageFromDB wraps an already connected and migrated database.
func NewStorageFromDB(db *DB) *Storage {
	return &Storage{
		Repositories: newRepositories(db.sqlStore(db.DB)),
		db:           db,
	}
}

// Do implements [UnitOfWork].
func (s *Storage) Do(ctx context.Context, fn func(ctx context.Context, repos *Repositories) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "Storage.Do").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(ctx, newRepositories(s.db.sqlStore(tx))); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "Storage.Do").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Ping verifies the database is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close closes the connection pool.
func (s *Storage) Close() error {
	return s.db.Close()
}
