// Package sqlite stores the game snapshot in a local SQLite file.
package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/osse101/MartianPotato_Go/internal/database"
)

const driverName = "sqlite"

// SQL statements
const (
	queryLoadState   = `SELECT key, value FROM game_state ORDER BY key`
	queryUpsertState = `INSERT INTO game_state (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`
)

type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// Repository is a SQLite-backed settings.Repository.
type Repository struct {
	db *sqlx.DB
}

// Open opens or creates the database at path and applies migrations.
// Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string) (*Repository, error) {
	dsn := path
	if path != ":memory:" {
		dsn = path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// A single connection keeps ":memory:" databases alive and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := database.Migrate(ctx, db.DB, database.DialectSQLite); err != nil {
		db.Close()
		return nil, err
	}

	return &Repository{db: db}, nil
}

// Ping checks that the database file is still reachable.
func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Load(ctx context.Context) (map[string]string, error) {
	var rows []kvRow
	if err := r.db.SelectContext(ctx, &rows, queryLoadState); err != nil {
		return nil, fmt.Errorf("load game state: %w", err)
	}

	kv := make(map[string]string, len(rows))
	for _, row := range rows {
		kv[row.Key] = row.Value
	}
	return kv, nil
}

func (r *Repository) Save(ctx context.Context, kv map[string]string) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmt, err := tx.PreparexContext(ctx, queryUpsertState)
	if err != nil {
		return fmt.Errorf("prepare save: %w", err)
	}
	defer stmt.Close()

	for k, v := range kv {
		if _, err := stmt.ExecContext(ctx, k, v); err != nil {
			return fmt.Errorf("save %s: %w", k, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit save: %w", err)
	}
	return nil
}
