package main

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/browse/internal/config"
	"github.com/kailas-cloud/browse/internal/db"
	dbRedis "github.com/kailas-cloud/browse/internal/db/redis"
	dbSQLite "github.com/kailas-cloud/browse/internal/db/sqlite"
	"github.com/kailas-cloud/browse/internal/metrics"
	"github.com/kailas-cloud/browse/internal/repository/dailystats"
	"github.com/kailas-cloud/browse/internal/repository/doccount"
	taxonomyrepo "github.com/kailas-cloud/browse/internal/repository/taxonomy"
	healthuc "github.com/kailas-cloud/browse/internal/usecase/health"
	homepageuc "github.com/kailas-cloud/browse/internal/usecase/homepage"
)

// app is the composition root shared by all commands.
type app struct {
	store    db.Store
	kv       db.KVStore // nil unless the driver is key-value
	taxonomy *taxonomyrepo.Source
	stats    *dailystats.Reader
	resolver *homepageuc.Resolver
	home     *homepageuc.Service
	health   *healthuc.Service
}

// openStore creates the database store for the configured driver.
func openStore(cfg config.DatabaseConfig) (db.Store, homepageuc.Counter, db.KVStore, error) {
	switch cfg.Driver {
	case config.DriverValkey, config.DriverRedis:
		store, err := dbRedis.NewStore(dbRedis.Config{
			Addrs:    cfg.Addrs,
			Password: cfg.Password,
		})
		if err != nil {
			return nil, nil, nil, err
		}
		return store, doccount.NewKV(store, cfg.CountKey), store, nil
	case config.DriverSQLite:
		store, err := dbSQLite.NewStore(cfg.DSN)
		if err != nil {
			return nil, nil, nil, err
		}
		return store, doccount.NewSQL(store), nil, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// newApp wires stores, repositories and use cases. The caller owns app.close.
func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	store, counter, kv, err := openStore(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("create database store: %w", err)
	}

	// A database that never comes up is not fatal: the stats file still
	// serves the count.
	readiness := time.Duration(cfg.Database.ReadinessTimeout) * time.Second
	if err := store.WaitForReady(ctx, readiness); err != nil {
		logger.Warn("Database not ready, continuing with fallback", zap.Error(err))
	} else {
		logger.Info("Connected to database", zap.String("driver", cfg.Database.Driver))
	}

	metrics.RegisterDocumentCountMetrics()

	tax, err := taxonomyrepo.New(cfg.Taxonomy.Path, logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("load taxonomy: %w", err)
	}

	stats := dailystats.New(cfg.Browse.DailyStatsPath)
	if stats.Path() == "" {
		logger.Info("Daily stats fallback disabled")
	}

	resolver := homepageuc.NewResolver(logger,
		homepageuc.Tier{Name: homepageuc.TierDatabase, Source: homepageuc.DatabaseSource(counter)},
		homepageuc.Tier{Name: homepageuc.TierDailyStats, Source: stats},
	)

	var statsChecker healthuc.StatsChecker
	if stats.Path() != "" {
		statsChecker = stats
	}

	return &app{
		store:    store,
		kv:       kv,
		taxonomy: tax,
		stats:    stats,
		resolver: resolver,
		home:     homepageuc.New(tax, resolver, logger),
		health:   healthuc.New(store, statsChecker),
	}, nil
}

func (a *app) close() {
	a.store.Close()
}
