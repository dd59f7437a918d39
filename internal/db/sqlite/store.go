// Package sqlite implements the database store on SQLite via modernc.org/sqlite.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/kailas-cloud/browse/internal/db"
)

// Compile-time checks.
var (
	_ db.Store   = (*Store)(nil)
	_ db.Querier = (*Store)(nil)
)

// Store implements db.Store and db.Querier over database/sql.
type Store struct {
	db *sql.DB
}

// NewStore opens the database at dsn. The file is not created or migrated;
// the schema belongs to the system that publishes the statistics.
func NewStore(dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("dsn is required")
	}

	conn, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{db: conn}, nil
}

// NewStoreFromDB wraps an already opened handle.
func NewStoreFromDB(conn *sql.DB) *Store {
	return &Store{db: conn}
}

// Ping checks connectivity.
func (s *Store) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return &db.Error{Op: db.OpPing, Err: err}
	}
	return nil
}

// Close closes the database handle.
func (s *Store) Close() {
	_ = s.db.Close()
}

// WaitForReady polls Ping until the database responds or timeout expires.
func (s *Store) WaitForReady(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Ping(ctx); err == nil {
		return nil
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return fmt.Errorf("timeout waiting for database: %w", ctx.Err())
		case <-ticker.C:
			if err := s.Ping(ctx); err == nil {
				return nil
			}
		}
	}
}

// QueryInt64 runs a single-row, single-column query. No row or a NULL value
// yields db.ErrNoValue.
func (s *Store) QueryInt64(ctx context.Context, query string, args ...any) (int64, error) {
	var v sql.NullInt64
	err := s.db.QueryRowContext(ctx, query, args...).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, db.ErrNoValue
	}
	if err != nil {
		return 0, &db.Error{Op: db.OpQuery, Err: err}
	}
	if !v.Valid {
		return 0, db.ErrNoValue
	}
	return v.Int64, nil
}
