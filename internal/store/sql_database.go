package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-car-rental/internal/logger"
	"github.com/MKhiriev/go-car-rental/migrations"
)

// DB is an open database connection pool together with the dialect and
// error classifier of its driver.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations of the driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect.Name(), db.logger)
}

// querier is satisfied by both *sql.DB and *sql.Tx.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// sqlStore is the state shared by every repository: the querier the
// repository runs on (the pool or an open transaction) and the driver
// specifics.
type sqlStore struct {
	q          querier
	dialect    Dialect
	classifier ErrorClassificator
}

func (db *DB) sqlStore(q querier) sqlStore {
	return sqlStore{
		q:          q,
		dialect:    db.dialect,
		classifier: db.errorClassificator,
	}
}

func (s sqlStore) classify(err error) ErrorClassification {
	return s.classifier.Classify(err)
}
