// Command console plays the game from a terminal. Storage is chosen by the
// same environment variables as the HTTP server; logs go to stderr.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/MartianPotato_Go/internal/bootstrap"
	"github.com/osse101/MartianPotato_Go/internal/clock"
	"github.com/osse101/MartianPotato_Go/internal/config"
	"github.com/osse101/MartianPotato_Go/internal/console"
	"github.com/osse101/MartianPotato_Go/internal/game"
	"github.com/osse101/MartianPotato_Go/internal/logger"
)

const shutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		false,
	), os.Stderr)

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

	bus := bootstrap.InitializeEventSystem(nil)
	g := game.New(clock.RealClock{}, bus, storage.Repo, gameCfg)

	con := console.New(g, os.Stdin, os.Stdout)
	con.Subscribe(bus)

	if err := g.Start(ctx); err != nil {
		_ = storage.Close()
		return err
	}

	runErr := con.Run(ctx)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Game:    g,
		Storage: storage,
	})

	if runErr != nil && ctx.Err() == nil {
		slog.Error("Console stopped", "error", runErr)
		return runErr
	}
	return nil
}
