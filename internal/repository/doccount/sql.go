package doccount

import (
	"context"
	"errors"
	"fmt"

	"github.com/kailas-cloud/browse/internal/db"
	"github.com/kailas-cloud/browse/internal/domain"
)

// countQuery totals monthly submissions the same way the statistics pages do:
// new papers minus deletions plus the historical correction.
const countQuery = `SELECT SUM(num_new) - SUM(num_deleted) + SUM(historical_delta)
FROM arXiv_stats_monthly_submissions`

// querier is the consumer interface for scalar SQL reads (ISP).
type querier interface {
	QueryInt64(ctx context.Context, query string, args ...any) (int64, error)
}

// SQLRepo computes the count from the monthly submission statistics table.
type SQLRepo struct {
	q querier
}

// NewSQL creates a SQLRepo.
func NewSQL(q querier) *SQLRepo {
	return &SQLRepo{q: q}
}

// DocumentCount returns the computed total. An empty table wraps domain.ErrNotFound.
func (r *SQLRepo) DocumentCount(ctx context.Context) (int64, error) {
	n, err := r.q.QueryInt64(ctx, countQuery)
	if err != nil {
		if errors.Is(err, db.ErrNoValue) {
			return 0, fmt.Errorf("monthly submission stats: %w", domain.ErrNotFound)
		}
		return 0, fmt.Errorf("query document count: %w", err)
	}
	if n < 0 {
		return 0, fmt.Errorf("document count is negative: %d", n)
	}
	return n, nil
}
