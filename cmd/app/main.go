package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/bootstrap"
	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/config"
	"github.com/osse101/MartianPotato_Go/internal/event"
	"github.com/osse101/MartianPotato_Go/internal/game"
	"github.com/osse101/MartianPotato_Go/internal/scheduler"
	"github.com/osse101/MartianPotato_Go/internal/server"
	"github.com/osse101/MartianPotato_Go/internal/sse"
	"github.com/osse101/MartianPotato_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Fatal", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	initLogger(cfg)

	slog.Info("Starting MartianPotato",
		"environment", cfg.Environment,
		"version", cfg.Version,
		"storage", cfg.StorageDriver,
		"port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := bootstrap.OpenStorage(ctx, cfg)
	if err != nil {
		return err
	}

	gameCfg, err := game.LoadConfigFile(cfg.TuningFile)
	if err != nil {
		_ = storage.Close()
		return err
	}

	hub := sse.NewHub()
	hub.Start()
	bus := bootstrap.InitializeEventSystem(hub)

	clk := clock.RealClock{}
	g := game.New(clk, bus, storage.Repo, gameCfg)
	if err := g.Start(ctx); err != nil {
		hub.Stop()
		_ = storage.Close()
		return fmt.Errorf("failed to start game: %w", err)
	}

	pool := worker.NewPool(bootstrap.WorkerCount, bootstrap.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(clk, pool)
	sched.Schedule(cfg.AutosaveInterval, worker.NewAutosaveJob(g, event.SaveSourceAutosave))
	sched.Schedule(cfg.ReplenishInterval, worker.NewReplenishJob(g))

	srv := server.NewServer(server.Options{
		Port:      cfg.Port,
		ImagesDir: cfg.ImagesDir,
		Storage:   storage.Pinger,
	}, g, hub)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err, ok := <-serveErr:
		if ok {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Scheduler: sched,
		Server:    srv,
		Game:      g,
		Pool:      pool,
		Storage:   storage,
	})
	return runErr
}
