package docstore

import (
	"fmt"
	"log/slog"
)

// New opens the backend selected by cfg.Driver. Connections are verified in Start.
func New(cfg *Config, logger *slog.Logger) (Store, error) {
	switch cfg.Driver {
	case DriverPostgres:
		return NewPostgres(&cfg.Postgres, logger)
	case DriverMongo:
		return NewMongo(&cfg.Mongo, logger)
	case DriverBadger:
		return NewBadger(&cfg.Badger, logger)
	default:
		return nil, fmt.Errorf("unsupported docstore driver: %s", cfg.Driver)
	}
}
