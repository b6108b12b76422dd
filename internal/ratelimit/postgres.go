package ratelimit

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore keeps window counters in a shared table for deployments that
// already run Postgres and do not want a second datastore.
//
// Schema:
//
//	CREATE TABLE rate_limits (
//	    key      text PRIMARY KEY,
//	    count    bigint NOT NULL,
//	    reset_at timestamptz NOT NULL
//	);
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Time, error) {
	// Hash the key for privacy
	hasher := sha256.New()
	hasher.Write([]byte(key))
	hashedKey := fmt.Sprintf("%x", hasher.Sum(nil))

	const query = `
		INSERT INTO rate_limits (key, count, reset_at)
		VALUES ($1, 1, now() + make_interval(secs => $2))
		ON CONFLICT (key) DO UPDATE SET
			count = CASE
				WHEN rate_limits.reset_at < now() THEN 1
				ELSE rate_limits.count + 1
			END,
			reset_at = CASE
				WHEN rate_limits.reset_at < now() THEN now() + make_interval(secs => $2)
				ELSE rate_limits.reset_at
			END
		RETURNING count, reset_at`

	var count int64
	var resetAt time.Time
	if err := s.pool.QueryRow(ctx, query, hashedKey, window.Seconds()).Scan(&count, &resetAt); err != nil {
		return 0, time.Time{}, err
	}

	return count, resetAt, nil
}
