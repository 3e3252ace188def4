package repository

import (
	"context"
	"hash/fnv"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
)

// SweepLock serializes scheduler sweeps across processes. TryAcquire never
// blocks: it reports whether the named lock was obtained, and the returned
// release func must be called on every exit path once acquired.
type SweepLock interface {
	TryAcquire(ctx context.Context, key string) (release func(), acquired bool, err error)
}

// AdvisoryLock implements SweepLock with a Postgres session advisory lock.
// The lock is held by a dedicated pooled connection until released, so it
// survives exactly as long as the sweep that took it.
type AdvisoryLock struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

func NewAdvisoryLock(pool *pgxpool.Pool, logger *slog.Logger) *AdvisoryLock {
	return &AdvisoryLock{pool: pool, logger: logger}
}

func (l *AdvisoryLock) TryAcquire(ctx context.Context, key string) (func(), bool, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return nil, false, err
	}

	id := lockID(key)
	var acquired bool
	if err := conn.QueryRow(ctx, "SELECT pg_try_advisory_lock($1)", id).Scan(&acquired); err != nil {
		conn.Release()
		return nil, false, err
	}
	if !acquired {
		conn.Release()
		return nil, false, nil
	}

	release := func() {
		// Unlock on the same session that took the lock. Releasing the
		// connection would drop the lock anyway, but unlock explicitly so a
		// reused connection never carries it over.
		if _, err := conn.Exec(context.Background(), "SELECT pg_advisory_unlock($1)", id); err != nil {
			l.logger.Warn("advisory unlock failed", "key", key, "error", err)
		}
		conn.Release()
	}
	return release, true, nil
}

// lockID hashes a lock key into the int64 space pg advisory locks use.
func lockID(key string) int64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(key))
	return int64(h.Sum64())
}
