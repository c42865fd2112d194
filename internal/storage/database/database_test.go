package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/aanand-mishra/campus-api/internal/config"
	"github.com/aanand-mishra/campus-api/internal/types"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Env: "prod",
		Storage: config.Storage{
			Driver:       config.DriverSQLite,
			DSN:          filepath.Join(t.TempDir(), "campus.db"),
			MaxOpenConns: 4,
			MaxIdleConns: 2,
		},
	}
}

func TestNewCreatesTables(t *testing.T) {
	db, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	for _, m := range Models {
		if !db.gorm.Migrator().HasTable(m) {
			t.Errorf("table for %T was not created", m)
		}
	}

	// A second migration over the same schema is a no-op.
	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate again: %v", err)
	}
}

func TestDropAndMigrate(t *testing.T) {
	db, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	if err := db.gorm.Create(&types.Beverage{Name: "Tea", Price: 2, Detail: "green"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if err := db.Drop(); err != nil {
		t.Fatalf("Drop: %v", err)
	}
	if db.gorm.Migrator().HasTable(&types.Beverage{}) {
		t.Fatal("beverages still exists after Drop")
	}

	if err := db.Migrate(); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	var n int64
	db.gorm.Model(&types.Beverage{}).Count(&n)
	if n != 0 {
		t.Fatalf("expected empty beverages after recreate, got %d rows", n)
	}
}

func TestNewRejectsBadMySQLDSN(t *testing.T) {
	cfg := testConfig(t)
	cfg.Storage.Driver = config.DriverMySQL
	cfg.Storage.DSN = "not a dsn"

	if _, err := New(cfg); err == nil {
		t.Fatal("expected an error for a malformed mysql dsn")
	}
}

func TestSessionPinsAndReleasesConnection(t *testing.T) {
	db, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if _, ok := SessionFrom(ctx); ok {
		t.Fatal("empty context reported a session")
	}

	s, err := db.Acquire(ctx)
	if err != nil {
		t.Fatalf("Acquire: %v", err)
	}
	if got := db.Stats().InUse; got != 1 {
		t.Fatalf("expected 1 connection in use, got %d", got)
	}

	ctx = WithSession(ctx, s)
	if got, ok := SessionFrom(ctx); !ok || got != s {
		t.Fatal("session not found in context")
	}

	if err := db.Conn(ctx).Create(&types.Book{Title: "Dune", Year: 1965}).Error; err != nil {
		t.Fatalf("insert on session: %v", err)
	}

	if err := s.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := s.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if got := db.Stats().InUse; got != 0 {
		t.Fatalf("expected 0 connections in use after release, got %d", got)
	}

	// The row written on the pinned connection is visible through the pool.
	var n int64
	db.Conn(context.Background()).Model(&types.Book{}).Count(&n)
	if n != 1 {
		t.Fatalf("expected 1 book, got %d", n)
	}
}

func TestPing(t *testing.T) {
	db, err := New(testConfig(t))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	db.Close()
	if err := db.Ping(context.Background()); err == nil {
		t.Fatal("expected Ping to fail on a closed pool")
	}
}
