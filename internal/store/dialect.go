// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-car-rental/internal/config"
)

// Dialect captures the SQL differences between the supported databases.
type Dialect struct {
	name        string
	placeholder sq.PlaceholderFormat
	// rowLocks reports whether SELECT ... FOR UPDATE is supported. SQLite
	// has no row locks; writers are serialised by BEGIN IMMEDIATE instead.
	rowLocks bool
}

var (
	PostgresDialect = Dialect{name: config.DriverPostgres, placeholder: sq.Dollar, rowLocks: true}
	SQLiteDialect   = Dialect{name: config.DriverSQLite, placeholder: sq.Question, rowLocks: false}
)

// Name returns the driver name of the dialect, as used in configuration.
func (d Dialect) Name() string {
	return d.name
}

func (d Dialect) builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(d.placeholder)
}

// lockForUpdate appends a row lock to query when the dialect supports it.
// With skipLocked, rows locked by concurrent transactions are skipped instead
// of waited for.
func (d Dialect) lockForUpdate(query sq.SelectBuilder, skipLocked bool) sq.SelectBuilder {
	if !d.rowLocks {
		return query
	}
	if skipLocked {
		return query.Suffix("FOR UPDATE SKIP LOCKED")
	}
	return query.Suffix("FOR UPDATE")
}
