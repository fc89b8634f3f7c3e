package bootstrap

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/config"
	"github.com/osse101/MartianPotato_Go/internal/domain"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/game"
	"github.com/osse101/MartianPotato_Go/internal/scheduler"
	"github.com/osse101/MartianPotato_Go/internal/settings"
	"github.com/osse101/MartianPotato_Go/internal/worker"
)

func TestOpenStorage_Memory(t *testing.T) {
	st, err := OpenStorage(context.Background(), &config.Config{StorageDriver: config.StorageMemory})
	require.NoError(t, err)

	assert.IsType(t, &settings.MemoryRepository{}, st.Repo)
	assert.Nil(t, st.Pinger)
	assert.NoError(t, st.Close())
}

func TestOpenStorage_SQLiteCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "game.db")
	ctx := context.Background()

	st, err := OpenStorage(ctx, &config.Config{StorageDriver: config.StorageSQLite, SQLitePath: path})
	require.NoError(t, err)
	defer st.Close()

	require.NotNil(t, st.Pinger)
	assert.NoError(t, st.Pinger.Ping(ctx))
	assert.FileExists(t, path)
}

func TestOpenStorage_UnknownDriver(t *testing.T) {
	_, err := OpenStorage(context.Background(), &config.Config{StorageDriver: "redis"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), ErrMsgUnknownStorage)
}

func TestStorageClose_NilSafe(t *testing.T) {
	var st *Storage
	assert.NoError(t, st.Close())
}

func TestInitializeEventSystem_WithoutHub(t *testing.T) {
	bus := InitializeEventSystem(nil)
	require.NotNil(t, bus)

	var got int
	bus.Subscribe(event.GameSaved, func(context.Context, event.Event) error {
		got++
		return nil
	})
	require.NoError(t, bus.Publish(context.Background(), event.NewGameSavedEvent(3, event.SaveSourceManual)))
	assert.Equal(t, 1, got)
}

func TestGracefulShutdown_SavesGame(t *testing.T) {
	ctx := context.Background()
	clk := clock.NewFake(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	repo := settings.NewMemoryRepository()
	bus := event.NewMemoryBus()

	g := game.New(clk, bus, repo, game.DefaultConfig())
	require.NoError(t, g.Start(ctx))

	pool := worker.NewPool(1, 1)
	pool.Start()
	sched := scheduler.New(clk, pool)

	GracefulShutdown(ctx, ShutdownComponents{
		Scheduler: sched,
		Game:      g,
		Pool:      pool,
		Storage:   &Storage{Repo: repo},
	})

	kv, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "20", kv[domain.KeyPotatoes])
}

func TestGracefulShutdown_AllNil(t *testing.T) {
	assert.NotPanics(t, func() {
		GracefulShutdown(context.Background(), ShutdownComponents{})
	})
}
