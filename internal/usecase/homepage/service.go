// Package homepage assembles the data shown on the site's home page.
package homepage

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/browse/internal/domain"
	domhome "github.com/kailas-cloud/browse/internal/domain/homepage"
	logpkg "github.com/kailas-cloud/browse/internal/logger"
)

// Service builds home page data.
type Service struct {
	taxonomy TaxonomyProvider
	counts   DocumentCounter
	logger   *zap.Logger
}

// New creates a Service.
func New(taxonomy TaxonomyProvider, counts DocumentCounter, logger *zap.Logger) *Service {
	return &Service{taxonomy: taxonomy, counts: counts, logger: logger}
}

// GetHomePage returns the groups, active archives, active categories and the
// document count. Any failure while assembling the taxonomy is logged and
// returned wrapping domain.ErrInternal; a missing count is not an error.
func (s *Service) GetHomePage(ctx context.Context) (page domhome.Page, err error) {
	log := logpkg.FromContext(ctx, s.logger)

	defer func() {
		if rvr := recover(); rvr != nil {
			log.Warn("Could not get home page data", zap.Any("panic", rvr))
			page, err = domhome.Page{}, fmt.Errorf("%w: panic: %v", domain.ErrInternal, rvr)
		}
	}()

	catalog, err := s.taxonomy.Catalog(ctx)
	if err != nil {
		log.Warn("Could not get home page data", zap.Error(err))
		return domhome.Page{}, fmt.Errorf("%w: taxonomy: %w", domain.ErrInternal, err)
	}

	return domhome.New(
		catalog.Groups(),
		catalog.ActiveArchives(),
		catalog.ActiveCategories(),
		s.counts.DocumentCount(ctx),
	), nil
}

// DocumentCount exposes the resolver for callers that need only the total.
func (s *Service) DocumentCount(ctx context.Context) *int64 {
	return s.counts.DocumentCount(ctx)
}
