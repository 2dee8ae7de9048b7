package docstore_test

import (
	"testing"

	"github.com/JaimeStill/menu-lab/pkg/database"
	"github.com/JaimeStill/menu-lab/pkg/docstore"
)

func TestConfig_Finalize(t *testing.T) {
	tests := []struct {
		name    string
		cfg     docstore.Config
		wantErr bool
	}{
		{name: "badger defaults", cfg: docstore.Config{}},
		{name: "badger in memory", cfg: docstore.Config{Badger: docstore.BadgerConfig{InMemory: true}}},
		{name: "mongo requires database", cfg: docstore.Config{Driver: docstore.DriverMongo}, wantErr: true},
		{
			name: "mongo",
			cfg:  docstore.Config{Driver: docstore.DriverMongo, Mongo: docstore.MongoConfig{Database: "menu_lab"}},
		},
		{name: "postgres requires name", cfg: docstore.Config{Driver: docstore.DriverPostgres}, wantErr: true},
		{
			name: "postgres",
			cfg: docstore.Config{
				Driver:   docstore.DriverPostgres,
				Postgres: database.Config{Name: "menu_lab", User: "menu"},
			},
		},
		{name: "unknown driver", cfg: docstore.Config{Driver: "firestore"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if (err != nil) != tt.wantErr {
				t.Errorf("Finalize() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_Finalize_Env(t *testing.T) {
	t.Setenv("TEST_DOCSTORE_DRIVER", "badger")
	t.Setenv("TEST_BADGER_IN_MEMORY", "true")

	cfg := &docstore.Config{Driver: docstore.DriverMongo}
	err := cfg.Finalize(&docstore.Env{
		Driver: "TEST_DOCSTORE_DRIVER",
		Badger: &docstore.BadgerEnv{InMemory: "TEST_BADGER_IN_MEMORY"},
	})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Driver != docstore.DriverBadger || !cfg.Badger.InMemory {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestMongoConfig_Defaults(t *testing.T) {
	cfg := &docstore.MongoConfig{Database: "menu_lab"}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if cfg.URI != "mongodb://localhost:27017" || cfg.Collection != "documents" {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.ConnTimeoutDuration().Seconds() != 5 {
		t.Errorf("ConnTimeoutDuration() = %v", cfg.ConnTimeoutDuration())
	}
}
