// Package postgres stores the game snapshot in PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/osse101/MartianPotato_Go/internal/database"
)

const (
	queryLoadState   = `SELECT key, value FROM game_state ORDER BY key`
	queryUpsertState = `INSERT INTO game_state (key, value, updated_at) VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`
)

type kvRow struct {
	Key   string `db:"key"`
	Value string `db:"value"`
}

// GameStateRepository is a PostgreSQL-backed settings.Repository.
type GameStateRepository struct {
	pool *pgxpool.Pool
}

// NewGameStateRepository creates a repository over pool
func NewGameStateRepository(pool *pgxpool.Pool) *GameStateRepository {
	return &GameStateRepository{pool: pool}
}

// Migrate applies the embedded schema through a database/sql handle on the pool.
func (r *GameStateRepository) Migrate(ctx context.Context) error {
	db := stdlib.OpenDBFromPool(r.pool)
	defer db.Close()

	_, err := database.Migrate(ctx, db, database.DialectPostgres)
	return err
}

func (r *GameStateRepository) Load(ctx context.Context) (map[string]string, error) {
	rows, err := r.pool.Query(ctx, queryLoadState)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadState, err)
	}

	kvs, err := pgx.CollectRows(rows, pgx.RowToStructByName[kvRow])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadState, err)
	}

	out := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		out[kv.Key] = kv.Value
	}
	return out, nil
}

func (r *GameStateRepository) Save(ctx context.Context, kv map[string]string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToBeginTransaction, err)
	}
	defer SafeRollback(ctx, tx)

	batch := &pgx.Batch{}
	for k, v := range kv {
		batch.Queue(queryUpsertState, k, v)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveState, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToCommitTransaction, err)
	}
	return nil
}
