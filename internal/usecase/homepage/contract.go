package homepage

import (
	"context"

	"github.com/kailas-cloud/browse/internal/domain/count"
	"github.com/kailas-cloud/browse/internal/domain/taxonomy"
)

// TaxonomyProvider supplies the classification catalog.
type TaxonomyProvider interface {
	Catalog(ctx context.Context) (taxonomy.Catalog, error)
}

// Counter reads the live document total from a database.
// A missing value is reported by wrapping domain.ErrNotFound.
type Counter interface {
	DocumentCount(ctx context.Context) (int64, error)
}

// CountSource is one tier of the document count fallback chain.
type CountSource interface {
	Lookup(ctx context.Context) count.Result
}

// DocumentCounter resolves the total, or nil when no tier has it.
type DocumentCounter interface {
	DocumentCount(ctx context.Context) *int64
}
