// Package database owns the SQL connection pool and the gorm handle on
// top of it.
//
// Besides opening and migrating the schema it hands out request-scoped
// sessions: a Session pins one pool connection for the duration of a
// unit of work (an HTTP request) and must be released on every exit
// path. Store code asks for its *gorm.DB through Conn(ctx), which picks
// the scoped session from the context when there is one.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/aanand-mishra/campus-api/internal/config"
	"github.com/aanand-mishra/campus-api/internal/logger"
	"github.com/aanand-mishra/campus-api/internal/storage/mysql"
	"github.com/aanand-mishra/campus-api/internal/storage/sqlite"
	"github.com/aanand-mishra/campus-api/internal/types"
)

// Models lists every table the application owns, in creation order.
var Models = []any{
	&types.Book{},
	&types.Student{},
	&types.Beverage{},
	&types.Order{},
}

// Database is the process-wide pool plus its gorm handle.
// It is safe for concurrent use.
type Database struct {
	gorm *gorm.DB
	sql  *sql.DB
}

// New opens the configured driver, verifies the connection and creates
// any missing tables. Creating tables is idempotent, so New is safe to
// call on every start-up.
func New(cfg *config.Config) (*Database, error) {
	var (
		sqlDB     *sql.DB
		dialector gorm.Dialector
		err       error
	)

	switch cfg.Storage.Driver {
	case config.DriverMySQL:
		sqlDB, dialector, err = mysql.Open(cfg.Storage.DSN)
	default:
		sqlDB, dialector, err = sqlite.Open(cfg.Storage.DSN)
	}
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.Storage.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Storage.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database.New: ping: %w", err)
	}

	gdb, err := gorm.Open(dialector, &gorm.Config{Logger: gormLogger(cfg.Env)})
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("database.New: gorm: %w", err)
	}

	d := &Database{gorm: gdb, sql: sqlDB}
	if err := d.Migrate(); err != nil {
		sqlDB.Close()
		return nil, err
	}

	return d, nil
}

// Migrate creates missing tables, columns and indexes. Existing data is
// left alone.
func (d *Database) Migrate() error {
	if err := d.gorm.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("database.Migrate: %w", err)
	}
	return nil
}

// Drop removes every application table.
func (d *Database) Drop() error {
	if err := d.gorm.Migrator().DropTable(Models...); err != nil {
		return fmt.Errorf("database.Drop: %w", err)
	}
	return nil
}

// Ping checks that the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

// Stats reports the pool state.
func (d *Database) Stats() sql.DBStats {
	return d.sql.Stats()
}

// Close closes the pool. Sessions still held become unusable.
func (d *Database) Close() error {
	return d.sql.Close()
}

// Session is a gorm handle bound to a single dedicated pool connection.
type Session struct {
	DB   *gorm.DB
	conn *sql.Conn
}

// Acquire takes one connection out of the pool and binds a fresh gorm
// session to it. The caller owns the connection until Release.
func (d *Database) Acquire(ctx context.Context) (*Session, error) {
	conn, err := d.sql.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("database.Acquire: %w", err)
	}

	tx := d.gorm.Session(&gorm.Session{NewDB: true, Context: ctx})
	// *sql.Conn satisfies gorm.ConnPool and gorm.TxBeginner, so both
	// plain statements and transactions run on the pinned connection.
	tx.Statement.ConnPool = conn

	return &Session{DB: tx, conn: conn}, nil
}

// Release returns the connection to the pool. Safe to call more than once.
func (s *Session) Release() error {
	err := s.conn.Close()
	if err == sql.ErrConnDone {
		return nil
	}
	return err
}

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFrom returns the session stored in ctx, if any.
func SessionFrom(ctx context.Context) (*Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(*Session)
	return s, ok
}

// Conn returns the *gorm.DB to run queries on: the request's scoped
// session when ctx carries one, otherwise the shared pool.
func (d *Database) Conn(ctx context.Context) *gorm.DB {
	if s, ok := SessionFrom(ctx); ok {
		return s.DB.WithContext(ctx)
	}
	return d.gorm.WithContext(ctx)
}

func gormLogger(env string) gormlogger.Interface {
	if env == logger.EnvDev {
		return gormlogger.Default.LogMode(gormlogger.Info)
	}
	return gormlogger.Default.LogMode(gormlogger.Warn)
}
