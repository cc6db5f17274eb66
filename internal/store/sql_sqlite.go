package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-car-rental/internal/config"
	"github.com/MKhiriev/go-car-rental/internal/logger"
)

// sqliteParams are appended to the DSN unless already present:
// foreign keys on, BEGIN IMMEDIATE for every transaction so that concurrent
// writers serialise at BEGIN, and a busy timeout instead of SQLITE_BUSY.
var sqliteParams = []string{
	"_foreign_keys=on",
	"_txlock=immediate",
	"_busy_timeout=5000",
}

// NewConnectSQLite opens an SQLite database for cfg.DSN and pings it.
//
// The pool is limited to one connection: SQLite allows a single writer, and
// in-memory databases exist per connection.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("sqlite3", sqliteDSN(cfg.DSN))
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}
	conn.SetMaxOpenConns(1)

	// ping database
	if err = conn.PingContext(ctx); err != nil {
		conn.Close()
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	return &DB{
		DB:                 conn,
		dialect:            SQLiteDialect,
		errorClassificator: NewSQLiteErrorClassifier(),
		logger:             log,
	}, nil
}

func sqliteDSN(dsn string) string {
	var missing []string
	for _, param := range sqliteParams {
		key := param[:strings.IndexByte(param, '=')+1]
		if !strings.Contains(dsn, key) {
			missing = append(missing, param)
		}
	}
	if len(missing) == 0 {
		return dsn
	}

	separator := "?"
	if strings.Contains(dsn, "?") {
		separator = "&"
	}
	return dsn + separator + strings.Join(missing, "&")
}
