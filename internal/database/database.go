package database

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/CoffeeGarden_Go/internal/logger"
)

// Pool interface for database connection pool operations
type Pool interface {
	Ping(ctx context.Context) error
	Close()
}

// PoolConfig sizes the garden's connection pool
type PoolConfig struct {
	ConnString  string
	MaxConns    int
	MinConns    int
	MaxConnIdle time.Duration
	MaxConnLife time.Duration
	// AppName is reported to Postgres as application_name
	AppName string
}

func (c PoolConfig) pgxConfig() (*pgxpool.Config, error) {
	pc, err := pgxpool.ParseConfig(c.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	maxConns := min(max(c.MaxConns, 1), math.MaxInt32)
	minConns := c.MinConns
	if minConns <= 0 {
		minConns = DefaultMinConnections
	}
	pc.MaxConns = int32(maxConns)
	pc.MinConns = int32(min(minConns, maxConns))
	if c.MaxConnLife > 0 {
		pc.MaxConnLifetime = c.MaxConnLife
	}
	if c.MaxConnIdle > 0 {
		pc.MaxConnIdleTime = c.MaxConnIdle
	}

	appName := c.AppName
	if appName == "" {
		appName = DefaultAppName
	}
	pc.ConnConfig.RuntimeParams["application_name"] = appName
	return pc, nil
}

// NewPool creates a PostgreSQL connection pool and checks it with a ping
func NewPool(ctx context.Context, cfg PoolConfig) (*pgxpool.Pool, error) {
	pc, err := cfg.pgxConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	logger.FromContext(ctx).Info(LogMsgSuccessfullyConnectedToDatabase,
		"host", pc.ConnConfig.Host,
		"database", pc.ConnConfig.Database,
		"app", pc.ConnConfig.RuntimeParams["application_name"],
		"max_conns", pc.MaxConns)
	return pool, nil
}
