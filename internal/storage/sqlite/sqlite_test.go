package sqlite

import (
	"net/url"
	"path/filepath"
	"strings"
	"testing"
)

func TestWithDefaults(t *testing.T) {
	tests := []struct {
		name string
		dsn  string
		want map[string]string
	}{
		{"bare path", "storage/campus.db", map[string]string{"_txlock": "immediate", "_busy_timeout": "5000"}},
		{"keeps explicit values", "campus.db?_txlock=deferred&cache=shared", map[string]string{
			"_txlock": "deferred", "_busy_timeout": "5000", "cache": "shared",
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := withDefaults(tt.dsn)
			if err != nil {
				t.Fatalf("withDefaults: %v", err)
			}

			base, query, _ := strings.Cut(got, "?")
			if wantBase, _, _ := strings.Cut(tt.dsn, "?"); base != wantBase {
				t.Fatalf("path changed: %q", base)
			}
			params, err := url.ParseQuery(query)
			if err != nil {
				t.Fatal(err)
			}
			for k, v := range tt.want {
				if params.Get(k) != v {
					t.Errorf("%s = %q, want %q", k, params.Get(k), v)
				}
			}
		})
	}
}

func TestOpen(t *testing.T) {
	db, dialector, err := Open(filepath.Join(t.TempDir(), "campus.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if dialector == nil {
		t.Fatal("expected a dialector")
	}
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
