package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/MartianPotato_Go/internal/game"
	"github.com/osse101/MartianPotato_Go/internal/scheduler"
	"github.com/osse101/MartianPotato_Go/internal/server"
	"github.com/osse101/MartianPotato_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any field may be nil.
type ShutdownComponents struct {
	Scheduler *scheduler.Scheduler
	Server    *server.Server
	Game      *game.Game
	Pool      *worker.Pool
	Storage   *Storage
}

// GracefulShutdown stops components in dependency order:
//  1. scheduler (no new background jobs)
//  2. HTTP server (no new requests; SSE streams are closed)
//  3. game (timers stopped, final snapshot saved)
//  4. worker pool (in-flight jobs drained)
//  5. storage
//
// Errors are logged but never stop the sequence.
func GracefulShutdown(ctx context.Context, c ShutdownComponents) {
	slog.Info(LogMsgShuttingDown)

	if c.Scheduler != nil {
		c.Scheduler.Stop()
	}

	if c.Server != nil {
		if err := c.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		} else {
			slog.Info(LogMsgServerStopped)
		}
	}

	if c.Game != nil {
		if err := c.Game.Shutdown(ctx); err != nil {
			slog.Error(LogMsgGameShutdownFailed, "error", err)
		}
	}

	if c.Pool != nil {
		c.Pool.Stop()
	}

	if err := c.Storage.Close(); err != nil {
		slog.Error(LogMsgStorageCloseFailed, "error", err)
	}

	slog.Info(LogMsgShutdownComplete)
}
