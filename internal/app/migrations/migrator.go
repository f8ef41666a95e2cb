package migrations

import (
	"context"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campusconnect/placement-api/internal/db"
)

// lockID keys the advisory lock that serializes migrators of several instances
const lockID int64 = 4_720_113

const createTableSQL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version    VARCHAR(32)  PRIMARY KEY,
	name       VARCHAR(255) NOT NULL,
	applied_at TIMESTAMPTZ  NOT NULL DEFAULT NOW()
);`

// Migration is one numbered SQL file such as 001_init.sql
type Migration struct {
	Version string
	Name    string
	SQL     string
}

// Load reads every .sql file at the root of fsys, ordered by version
func Load(fsys fs.FS) ([]Migration, error) {
	names, err := fs.Glob(fsys, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}

	seen := make(map[string]string, len(names))
	migrations := make([]Migration, 0, len(names))
	for _, name := range names {
		version, _, found := strings.Cut(path.Base(name), "_")
		if !found {
			return nil, fmt.Errorf("migration %s: file name must start with a version and an underscore", name)
		}
		if _, err := strconv.Atoi(version); err != nil {
			return nil, fmt.Errorf("migration %s: version %q is not a number", name, version)
		}
		if other, dup := seen[version]; dup {
			return nil, fmt.Errorf("migrations %s and %s share version %s", other, name, version)
		}
		seen[version] = name

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read migration %s: %w", name, err)
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool {
		vi, _ := strconv.Atoi(migrations[i].Version)
		vj, _ := strconv.Atoi(migrations[j].Version)
		return vi < vj
	})
	return migrations, nil
}

// Migrator applies migrations once each and records them in schema_migrations
type Migrator struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMigrator creates a new migrator
func NewMigrator(pool *pgxpool.Pool, logger zerolog.Logger) *Migrator {
	return &Migrator{pool: pool, logger: logger}
}

// Apply runs the pending migrations of fsys and returns how many were applied
func (m *Migrator) Apply(ctx context.Context, fsys fs.FS) (int, error) {
	migrations, err := Load(fsys)
	if err != nil {
		return 0, err
	}

	if _, err := m.pool.Exec(ctx, createTableSQL); err != nil {
		return 0, fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	applied := 0
	for _, mg := range migrations {
		done, err := m.applyOne(ctx, mg)
		if err != nil {
			return applied, err
		}
		if done {
			applied++
		}
	}
	return applied, nil
}

// applyOne runs a migration and its bookkeeping in the same transaction
func (m *Migrator) applyOne(ctx context.Context, mg Migration) (bool, error) {
	applied := false
	err := db.WithTransaction(ctx, m.pool, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock($1)`, lockID); err != nil {
			return fmt.Errorf("failed to acquire migration lock: %w", err)
		}

		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM schema_migrations WHERE version = $1)`, mg.Version).Scan(&exists); err != nil {
			return fmt.Errorf("failed to check migration status: %w", err)
		}
		if exists {
			m.logger.Debug().Str("migration", mg.Name).Msg("Migration already applied, skipping")
			return nil
		}

		m.logger.Info().Str("migration", mg.Name).Msg("Applying migration")
		if _, err := tx.Exec(ctx, mg.SQL); err != nil {
			return fmt.Errorf("migration %s failed: %w", mg.Name, err)
		}
		if _, err := tx.Exec(ctx, `INSERT INTO schema_migrations (version, name) VALUES ($1, $2)`, mg.Version, mg.Name); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", mg.Name, err)
		}
		applied = true
		return nil
	})
	return applied, err
}
