package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/MartianPotato_Go/internal/config"
	"github.com/osse101/MartianPotato_Go/internal/database"
	"github.com/osse101/MartianPotato_Go/internal/database/postgres"
	"github.com/osse101/MartianPotato_Go/internal/database/sqlite"
	"github.com/osse101/MartianPotato_Go/internal/handler"
	"github.com/osse101/MartianPotato_Go/internal/settings"
)

// Storage is the snapshot repository chosen by configuration
type Storage struct {
	Repo settings.Repository
	// Pinger backs /readyz. Nil for the in-memory driver.
	Pinger handler.Pinger
	close  func() error
}

// Close releases the underlying connection. Safe on a zero Storage.
func (s *Storage) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStorage opens the repository named by cfg.StorageDriver and applies migrations.
func OpenStorage(ctx context.Context, cfg *config.Config) (*Storage, error) {
	var st *Storage

	switch cfg.StorageDriver {
	case config.StorageMemory:
		st = &Storage{Repo: settings.NewMemoryRepository()}

	case config.StorageSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
			if err := os.MkdirAll(dir, DirPermission); err != nil {
				return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDataDir, err)
			}
		}
		repo, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenSQLite, err)
		}
		st = &Storage{Repo: repo, Pinger: repo, close: repo.Close}

	case config.StoragePostgres:
		pool, err := database.NewPool(ctx, cfg.GetDBConnString(), cfg.DBMaxConns, DBMaxConnIdleTime, DBMaxConnLifetime)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenPostgres, err)
		}
		repo := postgres.NewGameStateRepository(pool)
		if err := repo.Migrate(ctx); err != nil {
			pool.Close()
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		st = &Storage{
			Repo:   repo,
			Pinger: pool,
			close: func() error {
				pool.Close()
				return nil
			},
		}

	default:
		return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStorage, cfg.StorageDriver)
	}

	slog.Info(LogMsgStorageOpened, "driver", cfg.StorageDriver)
	return st, nil
}
