package database

import (
	"context"
	"math"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/quranapi/quran-api/pkg/apperr"
)

// Acquire takes one connection from the pool for the duration of an
// operation. Failures are reported as apperr connection errors.
func Acquire(ctx context.Context, pool *pgxpool.Pool) (*pgxpool.Conn, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, apperr.Connection(err)
	}
	return conn, nil
}

// IDInRange reports whether id fits the INTEGER key columns. Ids outside
// the range cannot be sent as query parameters and match no row.
func IDInRange(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}
