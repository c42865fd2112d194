// Package mysql opens a MySQL (or TiDB) database for the gorm layer.
package mysql

import (
	"database/sql"
	"fmt"

	driver "github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// Open parses dsn (user:pass@tcp(host:3306)/dbname?params) and returns
// the pool together with the gorm dialector bound to it.
//
// The DSN is parsed up front so a malformed value fails at start-up with
// a clear message instead of on the first query.
func Open(dsn string) (*sql.DB, gorm.Dialector, error) {
	cfg, err := driver.ParseDSN(dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("mysql.Open: parse dsn: %w", err)
	}

	connector, err := driver.NewConnector(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("mysql.Open: connector: %w", err)
	}

	db := sql.OpenDB(connector)

	return db, gormmysql.New(gormmysql.Config{Conn: db}), nil
}
