package homepage

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kailas-cloud/browse/internal/domain"
	"github.com/kailas-cloud/browse/internal/domain/count"
	logpkg "github.com/kailas-cloud/browse/internal/logger"
	"github.com/kailas-cloud/browse/internal/metrics"
)

// Tier names used in logs and metrics.
const (
	TierDatabase   = "database"
	TierDailyStats = "daily_stats"
)

// tierMessage holds the warn messages logged for a tier.
type tierMessage struct {
	failed  string
	missing string
}

var tierMessages = map[string]tierMessage{
	TierDatabase: {
		failed:  "Error getting document count from DB",
		missing: "Error getting document count from DB",
	},
	TierDailyStats: {
		failed:  "Error reading daily stats file",
		missing: "Daily stats file not found",
	},
}

var defaultTierMessage = tierMessage{
	failed:  "Error getting document count",
	missing: "Document count source has no value",
}

func messageFor(tier string) tierMessage {
	if m, ok := tierMessages[tier]; ok {
		return m
	}
	return defaultTierMessage
}

// Tier is a named CountSource.
type Tier struct {
	Name   string
	Source CountSource
}

// Resolver walks the tiers in order and returns the first count found.
// Each tier is tried at most once per call; failures are logged and skipped.
type Resolver struct {
	tiers  []Tier
	logger *zap.Logger
}

var _ DocumentCounter = (*Resolver)(nil)

// NewResolver creates a Resolver over the given tiers.
func NewResolver(logger *zap.Logger, tiers ...Tier) *Resolver {
	return &Resolver{tiers: tiers, logger: logger}
}

// DocumentCount returns the total, or nil if every tier came up empty.
func (r *Resolver) DocumentCount(ctx context.Context) *int64 {
	log := logpkg.FromContext(ctx, r.logger)

	for _, t := range r.tiers {
		res := t.Source.Lookup(ctx)
		metrics.DocumentCountLookupsTotal.WithLabelValues(t.Name, string(res.Outcome())).Inc()
		msg := messageFor(t.Name)

		switch res.Outcome() {
		case count.OutcomeFound:
			n, _ := res.Value()
			return &n
		case count.OutcomeNotFound:
			if res.Err() != nil {
				log.Warn(msg.missing,
					zap.String("tier", t.Name), zap.Error(res.Err()))
			}
		default:
			log.Warn(msg.failed,
				zap.String("tier", t.Name), zap.Error(res.Err()))
		}
	}
	return nil
}

// DatabaseSource adapts a Counter to a CountSource.
func DatabaseSource(c Counter) CountSource {
	return counterSource{c: c}
}

type counterSource struct {
	c Counter
}

func (s counterSource) Lookup(ctx context.Context) count.Result {
	n, err := s.c.DocumentCount(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return count.NotFound(err)
		}
		return count.Failed(err)
	}
	return count.Found(n)
}
