package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/CoffeeGarden_Go/internal/database"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
)

// Stopper is anything with a context-bounded Stop, such as *server.Server
type Stopper interface {
	Stop(ctx context.Context) error
}

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             Stopper
	ResilientPublisher *event.ResilientPublisher
	DBPool             database.Pool
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, finish in-flight ones)
// 2. Event publisher (flush queued retries to the bus or dead-letter file)
// 3. Database pool
//
// Errors are logged and never stop the sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)
	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.DBPool != nil {
		slog.Info(LogMsgClosingDatabase)
		components.DBPool.Close()
	}

	slog.Info(LogMsgServerStopped)
}
