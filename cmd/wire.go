package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/blob"
	"github.com/leadscout/enrich/internal/budget"
	"github.com/leadscout/enrich/internal/config"
	"github.com/leadscout/enrich/internal/driver"
	"github.com/leadscout/enrich/internal/enrich"
	"github.com/leadscout/enrich/internal/fetch"
	"github.com/leadscout/enrich/internal/frontier"
	"github.com/leadscout/enrich/internal/store"
)

// buildDriver wires the full scrape pipeline from config. The returned
// cleanup must run after the last job finishes. Without a database DSN or a
// bucket the memory implementations are used, which makes local dry runs
// possible with no cloud credentials.
func buildDriver(ctx context.Context, cfg config.Config, logger *zap.Logger) (*driver.Driver, func(), error) {
	var cleanups []func()
	cleanup := func() {
		for i := len(cleanups) - 1; i >= 0; i-- {
			cleanups[i]()
		}
	}

	var businesses enrich.BusinessStore
	if cfg.DB.DSN != "" {
		pg, err := store.NewPostgresStore(ctx, store.PostgresConfig{
			DSN:             cfg.DB.DSN,
			MaxConns:        cfg.DB.MaxConns,
			MinConns:        cfg.DB.MinConns,
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		}, logger)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("business store: %w", err)
		}
		cleanups = append(cleanups, pg.Close)
		businesses = pg
	} else {
		logger.Warn("no database configured, using in-memory business store")
		businesses = store.NewMemoryStore()
	}

	var blobs enrich.BlobStore
	if cfg.Storage.GCSBucket != "" {
		gcs, err := blob.NewGCSStore(ctx, cfg.Storage.GCSBucket, logger)
		if err != nil {
			cleanup()
			return nil, nil, fmt.Errorf("blob store: %w", err)
		}
		cleanups = append(cleanups, func() { _ = gcs.Close() })
		blobs = gcs
	} else {
		logger.Warn("no bucket configured, captures stay in memory")
		blobs = blob.NewMemoryStore()
	}

	clock := enrich.SystemClock{}
	plain := fetch.NewHTTPFetcher(fetch.HTTPConfig{
		UserAgent: cfg.Scrape.UserAgent,
		Timeout:   cfg.Scrape.PlainTimeout(),
		Profile:   fetch.ProfilePlain,
	}, clock, logger)
	antibot := fetch.NewHTTPFetcher(fetch.HTTPConfig{
		Timeout: cfg.Scrape.PlainTimeout(),
		Profile: fetch.ProfileAntiBot,
	}, clock, logger)

	d, err := driver.New(driver.Deps{
		Store:   businesses,
		Blobs:   blobs,
		Plain:   plain,
		AntiBot: antibot,
		NewRenderer: func(context.Context) (enrich.Renderer, error) {
			return fetch.NewChromeRenderer(cfg.Scrape.UserAgent, clock, logger)
		},
		Robots: frontier.NewRobotsPolicy(cfg.Scrape.RespectRobots, cfg.Scrape.UserAgent, logger),
		Clock:  clock,
		Logger: logger,
	}, driver.Config{
		MaxPagesPerSite: cfg.Scrape.MaxPagesPerSite,
		Pacing:          cfg.Scrape.Pacing(),
		Timeouts: fetch.Timeouts{
			Plain:      cfg.Scrape.PlainTimeout(),
			Fallback:   cfg.Scrape.RenderTimeout(),
			IdleRender: cfg.Scrape.IdleTimeout(),
		},
		Budget: budget.Allocation{
			MemoryMiB: cfg.Budget.MemoryMiB,
			CPUUnits:  cfg.Budget.CPUUnits,
		},
	})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("build driver: %w", err)
	}
	return d, cleanup, nil
}
