package db

import (
	"context"
	"time"
)

// Store is the lifecycle surface every database backend provides.
type Store interface {
	Pinger
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations (Redis, Valkey).
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Querier runs scalar SQL queries (SQLite).
type Querier interface {
	QueryInt64(ctx context.Context, query string, args ...any) (int64, error)
}
