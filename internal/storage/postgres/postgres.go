// Package postgres implements the postgres snapshot backend: the aggregate
// lives in a single upserted row of the negotiation_snapshots table. Schema
// migrations are embedded and applied on startup.
package postgres

import (
	"context"
	"embed"
	"fmt"
	"net/url"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/zaoqi-icu/negoprep/internal/config"
	"github.com/zaoqi-icu/negoprep/internal/logging"
	"github.com/zaoqi-icu/negoprep/internal/planning"
	"github.com/zaoqi-icu/negoprep/pkg/errors"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store persists the snapshot in the row keyed by the snapshot name.
type Store struct {
	pool *pgxpool.Pool
	name string
	log  logging.Logger
}

var _ planning.SnapshotStore = (*Store)(nil)

// DSN renders the keyword/value parts of cfg as a postgres connection URL.
func DSN(cfg config.PostgresStorageConfig) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		url.QueryEscape(cfg.User), url.QueryEscape(cfg.Password),
		cfg.Host, cfg.Port, cfg.DBName, cfg.SSLMode)
}

// New connects to PostgreSQL, applies pending migrations, and returns a
// Store bound to the given snapshot name.
func New(ctx context.Context, cfg config.PostgresStorageConfig, name string, log logging.Logger) (*Store, error) {
	dsn := DSN(cfg)

	if err := runMigrations(dsn); err != nil {
		return nil, err
	}

	poolCfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to parse postgres dsn")
	}
	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = int32(cfg.MaxConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.ConnMaxLifetime
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to create postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to connect to postgres")
	}

	return &Store{pool: pool, name: name, log: log.Named("storage.postgres")}, nil
}

// NewWithPool wraps an existing pool; the caller keeps ownership of its
// lifecycle. Used by integration tests.
func NewWithPool(pool *pgxpool.Pool, name string, log logging.Logger) *Store {
	return &Store{pool: pool, name: name, log: log.Named("storage.postgres")}
}

func runMigrations(dsn string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to open embedded migrations")
	}

	// The migrate pgx/v5 driver registers the "pgx5" URL scheme.
	migrateURL := "pgx5" + strings.TrimPrefix(dsn, "postgres")
	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to initialise migrations")
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to apply migrations")
	}
	return nil
}

func (s *Store) Load(ctx context.Context) ([]byte, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM negotiation_snapshots WHERE name = $1`, s.name,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, planning.ErrSnapshotNotFound
		}
		return nil, errors.Wrap(err, errors.ErrCodeStorageUnavailable, "failed to read snapshot row")
	}
	return payload, nil
}

func (s *Store) Save(ctx context.Context, payload []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO negotiation_snapshots (name, payload, updated_at)
		 VALUES ($1, $2, now())
		 ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = now()`,
		s.name, payload,
	)
	if err != nil {
		return errors.Wrap(err, errors.ErrCodeStorageWriteFailed, "failed to upsert snapshot row")
	}
	s.log.Debug("snapshot written", logging.String("name", s.name), logging.Int("bytes", len(payload)))
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
