package database

import (
	"context"
	_ "embed"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed schema.sql
var schemaSQL string

// Service owns the process-wide connection pool. Repositories acquire a
// connection from Pool() per operation and release it before returning.
type Service interface {
	// Pool returns the shared pool.
	Pool() *pgxpool.Pool

	// Health pings the database and returns pool statistics.
	Health() map[string]string

	// Migrate creates the schema if it does not exist yet.
	Migrate(ctx context.Context) error

	// Close closes the pool. Outstanding acquisitions fail afterwards.
	Close()
}

type service struct {
	pool *pgxpool.Pool
}

// New opens a pool for databaseURL and verifies it with a ping.
func New(ctx context.Context, databaseURL string) (Service, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &service{pool: pool}, nil
}

func (s *service) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *service) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("exec schema: %w", err)
	}
	return nil
}

func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.pool.Ping(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	ps := s.pool.Stat()
	stats["total_conns"] = strconv.Itoa(int(ps.TotalConns()))
	stats["acquired_conns"] = strconv.Itoa(int(ps.AcquiredConns()))
	stats["idle_conns"] = strconv.Itoa(int(ps.IdleConns()))
	stats["max_conns"] = strconv.Itoa(int(ps.MaxConns()))
	stats["acquire_count"] = strconv.FormatInt(ps.AcquireCount(), 10)
	stats["empty_acquire_count"] = strconv.FormatInt(ps.EmptyAcquireCount(), 10)
	stats["canceled_acquire_count"] = strconv.FormatInt(ps.CanceledAcquireCount(), 10)
	stats["acquire_duration"] = ps.AcquireDuration().String()

	if ps.MaxConns() > 0 && ps.AcquiredConns() >= ps.MaxConns() {
		stats["message"] = "The database is experiencing heavy load."
	}

	return stats
}

func (s *service) Close() {
	s.pool.Close()
}
