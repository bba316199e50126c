// Package postgres keeps saved games in PostgreSQL using pgx v5.
package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/cory-johannsen/colony/internal/config"
)

// DefaultHealthTimeout bounds the ping done when a pool is opened.
const DefaultHealthTimeout = 5 * time.Second

// Pool owns the pgx connection pool shared by the save repository.
type Pool struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewPool opens a pool sized from cfg and checks the server answers.
//
// Precondition: cfg has passed config validation; logger must be non-nil.
// Postcondition: Returns a pool that answered a ping, or an error with no
// connections left open.
func NewPool(ctx context.Context, cfg config.DatabaseConfig, logger *zap.Logger) (*Pool, error) {
	start := time.Now()
	pgCfg, err := pgxpool.ParseConfig(cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("parsing database config: %w", err)
	}
	pgCfg.MaxConns = cfg.MaxConns
	pgCfg.MinConns = cfg.MinConns
	pgCfg.MaxConnLifetime = cfg.MaxConnLifetime

	raw, err := pgxpool.NewWithConfig(ctx, pgCfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}
	p := &Pool{pool: raw, logger: logger}
	if err := p.Health(ctx, DefaultHealthTimeout); err != nil {
		raw.Close()
		return nil, fmt.Errorf("pinging %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	logger.Info("database connected",
		zap.String("host", cfg.Host),
		zap.String("database", cfg.Name),
		zap.Int32("max_conns", cfg.MaxConns),
		zap.Duration("elapsed", time.Since(start)),
	)
	return p, nil
}

// Health pings the server, giving up after timeout.
func (p *Pool) Health(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return p.pool.Ping(ctx)
}

// Close releases every connection. The pool is unusable afterwards.
func (p *Pool) Close() {
	p.pool.Close()
	p.logger.Debug("database pool closed")
}

// DB exposes the raw pool to repositories.
func (p *Pool) DB() *pgxpool.Pool { return p.pool }
