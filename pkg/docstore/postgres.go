package docstore

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/JaimeStill/menu-lab/pkg/database"
	"github.com/JaimeStill/menu-lab/pkg/lifecycle"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrations embed.FS

// postgres stores documents as JSONB rows keyed by path, with the parent
// collection path indexed for scans.
type postgres struct {
	db     *sql.DB
	cfg    *database.Config
	logger *slog.Logger
}

// NewPostgres opens a pooled connection using the pgx stdlib driver.
func NewPostgres(cfg *database.Config, logger *slog.Logger) (Store, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &postgres{
		db:     db,
		cfg:    cfg,
		logger: logger.With("system", "docstore", "driver", DriverPostgres),
	}, nil
}

// Start verifies connectivity and applies pending migrations before the
// service accepts requests.
func (p *postgres) Start(lc *lifecycle.Coordinator) error {
	p.logger.Info("starting docstore", "host", p.cfg.Host, "name", p.cfg.Name)

	ctx, cancel := context.WithTimeout(lc.Context(), p.cfg.ConnTimeoutDuration())
	defer cancel()

	if err := p.db.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	if err := p.migrate(); err != nil {
		return err
	}

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		if err := p.Close(); err != nil {
			p.logger.Error("docstore close failed", "error", err)
			return
		}
		p.logger.Info("docstore closed")
	})

	return nil
}

func (p *postgres) Close() error {
	return p.db.Close()
}

func (p *postgres) migrate() error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, p.cfg.MigrationURL())
	if err != nil {
		return fmt.Errorf("init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	version, dirty, _ := m.Version()
	p.logger.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}

func (p *postgres) Get(ctx context.Context, path string) (*Document, error) {
	if err := validateDoc(path); err != nil {
		return nil, err
	}

	const q = `SELECT data FROM documents WHERE path = $1`

	var raw []byte
	if err := p.db.QueryRowContext(ctx, q, path).Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get %s: %w", path, err)
	}

	return decodeDocument(path, raw)
}

func (p *postgres) Set(ctx context.Context, path string, data map[string]any) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}

	const q = `
		INSERT INTO documents (path, parent, id, data)
		VALUES ($1, $2, $3, $4::jsonb)
		ON CONFLICT (path) DO UPDATE SET
			data = EXCLUDED.data,
			updated_at = NOW()`

	parent, id := Split(path)
	if _, err := p.db.ExecContext(ctx, q, path, parent, id, string(raw)); err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	return nil
}

func (p *postgres) List(ctx context.Context, collection string) ([]Document, error) {
	if err := validateCollection(collection); err != nil {
		return nil, err
	}

	const q = `SELECT path, data FROM documents WHERE parent = $1 ORDER BY id`

	rows, err := p.db.QueryContext(ctx, q, collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	defer rows.Close()

	docs := make([]Document, 0)
	for rows.Next() {
		var (
			path string
			raw  []byte
		)
		if err := rows.Scan(&path, &raw); err != nil {
			return nil, fmt.Errorf("scan %s: %w", collection, err)
		}

		doc, err := decodeDocument(path, raw)
		if err != nil {
			return nil, err
		}
		docs = append(docs, *doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}
	return docs, nil
}

func (p *postgres) Delete(ctx context.Context, path string) error {
	if err := validateDoc(path); err != nil {
		return err
	}

	const q = `DELETE FROM documents WHERE path = $1`
	if _, err := p.db.ExecContext(ctx, q, path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}
