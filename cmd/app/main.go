package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/osse101/CoffeeGarden_Go/internal/bootstrap"
	"github.com/osse101/CoffeeGarden_Go/internal/checkin"
	"github.com/osse101/CoffeeGarden_Go/internal/config"
	"github.com/osse101/CoffeeGarden_Go/internal/database"
	"github.com/osse101/CoffeeGarden_Go/internal/garden"
	"github.com/osse101/CoffeeGarden_Go/internal/server"
	"github.com/osse101/CoffeeGarden_Go/internal/user"
)

const shutdownTimeout = 15 * time.Second

// @title Coffee Garden API
// @version 1.0
// @description Growth and rewards engine for the coffee garden mini-program.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		log.Fatalf("coffee garden: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx := context.Background()
	dbPool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:  cfg.GetDBConnString(),
		MaxConns:    cfg.DBMaxConns,
		MaxConnIdle: cfg.DBMaxConnIdle,
		MaxConnLife: cfg.DBMaxConnLife,
		AppName:     cfg.ServiceName,
	})
	if err != nil {
		return err
	}

	version, err := database.Migrate(ctx, dbPool)
	if err != nil {
		dbPool.Close()
		return err
	}
	slog.Info("Database schema ready", "version", version)

	cat, err := bootstrap.LoadCatalog(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}
	loc, err := bootstrap.LoadTimezone(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}
	cooldowns := bootstrap.NewCooldownPolicy(cfg)

	_, publisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		dbPool.Close()
		return err
	}

	repos := bootstrap.InitializeRepositories(dbPool)
	userService := user.NewService(repos.User, user.CacheConfig{Size: cfg.UserCacheSize, TTL: cfg.UserCacheTTL})
	gardenService := garden.NewService(repos.Garden, cat, cooldowns, publisher)
	checkinService := checkin.NewService(repos.Checkin, loc, publisher)

	srv := server.NewServer(server.Config{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		RateLimit:      cfg.RateLimit,
		RateWindow:     cfg.RateWindow,
	}, dbPool, userService, gardenService, checkinService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var startErr error
	select {
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	case startErr = <-serverErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:             srv,
		ResilientPublisher: publisher,
		DBPool:             dbPool,
	})

	return startErr
}
