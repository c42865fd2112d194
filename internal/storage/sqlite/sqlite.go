// Package sqlite opens a SQLite database file for the gorm layer.
//
// SQLite stores everything in a single file on disk. There is no
// network, no separate server process, and no installation beyond the
// driver. It is the default storage driver.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The connection pool is opened here with database/sql and handed to
// gorm as an existing connection, so the rest of the application can
// reach the raw *sql.DB for pool statistics and scoped connections.
package sqlite

import (
	"database/sql"
	"fmt"
	"net/url"
	"strings"

	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Blank import: side-effect only (registers the "sqlite3" driver).
	_ "github.com/mattn/go-sqlite3"
)

// DriverName is the database/sql driver name registered by go-sqlite3.
const DriverName = "sqlite3"

// Open opens the SQLite database at path and returns the pool together
// with the gorm dialector bound to it.
//
// sql.Open does NOT open a real connection yet; it only validates the
// driver name. The first connection is made by the caller's Ping.
func Open(path string) (*sql.DB, gorm.Dialector, error) {
	dsn, err := withDefaults(path)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite.Open: %w", err)
	}

	db, err := sql.Open(DriverName, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sqlite.Open: open db: %w", err)
	}

	return db, &gormsqlite.Dialector{DriverName: DriverName, Conn: db}, nil
}

// defaultParams are added to the DSN unless it already sets them.
//
// _txlock=immediate makes BEGIN take the write lock up front, so two
// read-then-write transactions on different connections queue on the
// busy timeout instead of one failing with "database is locked".
var defaultParams = map[string]string{
	"_txlock":       "immediate",
	"_busy_timeout": "5000",
}

// withDefaults appends defaultParams to the query part of dsn.
func withDefaults(dsn string) (string, error) {
	base, query, _ := strings.Cut(dsn, "?")

	params, err := url.ParseQuery(query)
	if err != nil {
		return "", fmt.Errorf("parse dsn params: %w", err)
	}
	for k, v := range defaultParams {
		if !params.Has(k) {
			params.Set(k, v)
		}
	}

	return base + "?" + params.Encode(), nil
}
