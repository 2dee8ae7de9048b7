package database_test

import (
	"strings"
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/database"
)

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := &database.Config{Name: "menu_lab", User: "menu"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 5432 || cfg.SSLMode != "disable" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestConfig_Finalize_Required(t *testing.T) {
	for _, cfg := range []*database.Config{
		{User: "menu"},
		{Name: "menu_lab"},
		{Name: "menu_lab", User: "menu", ConnTimeout: "later"},
	} {
		if err := cfg.Finalize(nil); err == nil {
			t.Errorf("Finalize(%+v) should fail", cfg)
		}
	}
}

func TestConfig_Dsn(t *testing.T) {
	cfg := &database.Config{Host: "db", Port: 5433, Name: "menu_lab", User: "menu", Password: "pw", SSLMode: "require"}

	dsn := cfg.Dsn()
	for _, want := range []string{"host=db", "port=5433", "dbname=menu_lab", "user=menu", "sslmode=require"} {
		if !strings.Contains(dsn, want) {
			t.Errorf("Dsn() = %q, missing %q", dsn, want)
		}
	}
}

func TestConfig_MigrationURL(t *testing.T) {
	cfg := &database.Config{Host: "db", Port: 5432, Name: "menu_lab", User: "menu", Password: "p@ss", SSLMode: "disable"}

	got := cfg.MigrationURL()
	want := "pgx5://menu:p%40ss@db:5432/menu_lab?sslmode=disable"
	if got != want {
		t.Errorf("MigrationURL() = %q, want %q", got, want)
	}
}
