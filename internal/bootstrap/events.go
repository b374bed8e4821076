package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/CoffeeGarden_Go/internal/config"
	"github.com/osse101/CoffeeGarden_Go/internal/event"
	"github.com/osse101/CoffeeGarden_Go/internal/metrics"
)

// InitializeEventSystem creates the in-memory bus, subscribes the metrics
// collector, and wraps the bus in a resilient publisher whose dead letters go
// to cfg.EventDeadLetterPath.
func InitializeEventSystem(cfg *config.Config) (event.Bus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	maxRetries := cfg.EventMaxRetries
	if maxRetries == 0 {
		maxRetries = event.RetryMaxAttempts
	}

	retryDelay := cfg.EventRetryDelay
	if retryDelay == 0 {
		retryDelay = event.RetryInitialDelay
	}

	deadLetterPath := cfg.EventDeadLetterPath
	if deadLetterPath == "" {
		deadLetterPath = config.DefaultDeadLetterPath
	}

	if err := os.MkdirAll(filepath.Dir(deadLetterPath), DirPermission); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateDeadLetterDir, err)
	}

	metrics.NewEventMetricsCollector().Register(eventBus)
	slog.Info(LogMsgMetricsCollectorRegistered)

	resilientPublisher, err := event.NewResilientPublisher(eventBus, maxRetries, retryDelay, deadLetterPath)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", maxRetries,
		"retry_delay", retryDelay,
		"deadletter_path", deadLetterPath)

	return eventBus, resilientPublisher, nil
}
