package bootstrap

import (
	"context"
	"log/slog"

	"github.com/xapes/xma-slots/internal/database"
	"github.com/xapes/xma-slots/internal/scheduler"
	"github.com/xapes/xma-slots/internal/worker"
)

// Stopper is an HTTP server that can drain in-flight requests
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server    Stopper
	Scheduler *scheduler.Scheduler
	Workers   *worker.Pool
	DB        database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler (no new recovery ticks)
// 3. Worker pool (cancel and wait for the running sweep)
// 4. Database pool
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		slog.Info(LogMsgShuttingDownScheduler)
		components.Scheduler.Stop()
	}

	if components.Workers != nil {
		slog.Info(LogMsgShuttingDownWorkers)
		components.Workers.Stop()
	}

	if components.DB != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DB.Close()
	}

	slog.Info(LogMsgServerStopped)
}
