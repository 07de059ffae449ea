// Package postgres opens the shared pgx connection pool used by every
// repository.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool sizing suits a single small service instance; raise MaxConns before
// running more replicas than the database can absorb.
const (
	maxConns          = 10
	maxConnLifetime   = time.Hour
	healthCheckPeriod = 30 * time.Second
)

// Connect opens a pgx pool and pings it so a bad DSN fails at startup
// rather than on the first request.
func Connect(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	config.MaxConns = maxConns
	config.MaxConnLifetime = maxConnLifetime
	config.HealthCheckPeriod = healthCheckPeriod

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}
