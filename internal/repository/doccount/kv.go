// Package doccount reads the live document total from the database.
package doccount

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/kailas-cloud/browse/internal/db"
	"github.com/kailas-cloud/browse/internal/domain"
)

// DefaultKey is where the statistics job publishes the total.
const DefaultKey = "browse:stats:total_papers"

// kvStore is the consumer interface for key-value reads (ISP).
type kvStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
}

// KVRepo reads the count from a single integer key.
type KVRepo struct {
	store kvStore
	key   string
}

// NewKV creates a KVRepo. An empty key falls back to DefaultKey.
func NewKV(s kvStore, key string) *KVRepo {
	if key == "" {
		key = DefaultKey
	}
	return &KVRepo{store: s, key: key}
}

// DocumentCount returns the stored total. A missing key wraps domain.ErrNotFound.
func (r *KVRepo) DocumentCount(ctx context.Context) (int64, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return 0, fmt.Errorf("document count key %s: %w", r.key, domain.ErrNotFound)
		}
		return 0, fmt.Errorf("document count GET %s: %w", r.key, err)
	}
	return parseCount(string(data))
}

func parseCount(raw string) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("document count parse %q: %w", raw, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("document count is negative: %d", n)
	}
	return n, nil
}
