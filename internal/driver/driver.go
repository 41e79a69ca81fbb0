package driver

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/leadscout/enrich/internal/blob"
	"github.com/leadscout/enrich/internal/budget"
	"github.com/leadscout/enrich/internal/enrich"
	"github.com/leadscout/enrich/internal/extract"
	"github.com/leadscout/enrich/internal/fetch"
	"github.com/leadscout/enrich/internal/frontier"
	"github.com/leadscout/enrich/internal/metrics"
)

const (
	defaultMaxPages = 10
	defaultPacing   = 50 * time.Millisecond

	// linkEnqueueThreshold gates link discovery: thin pages (challenge
	// shells, placeholders) do not contribute links.
	linkEnqueueThreshold = 500
)

// Deps are the collaborators a Driver needs. NewRenderer may be nil, which
// disables browser rendering entirely.
type Deps struct {
	Store       enrich.BusinessStore
	Blobs       enrich.BlobStore
	Plain       enrich.Fetcher
	AntiBot     enrich.Fetcher
	NewRenderer func(ctx context.Context) (enrich.Renderer, error)
	Robots      frontier.RobotsPolicy
	Clock       enrich.Clock
	Logger      *zap.Logger
}

// Config carries the run-level knobs that do not vary per job request.
type Config struct {
	MaxPagesPerSite int
	Pacing          time.Duration
	Timeouts        fetch.Timeouts
	Budget          budget.Allocation
}

// Driver runs enrichment jobs.
type Driver struct {
	deps   Deps
	cfg    Config
	engine *extract.Engine
	logger *zap.Logger
}

// New validates the dependencies and applies defaults.
func New(deps Deps, cfg Config) (*Driver, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("business store is required")
	}
	if deps.Blobs == nil {
		return nil, fmt.Errorf("blob store is required")
	}
	if deps.Plain == nil || deps.AntiBot == nil {
		return nil, fmt.Errorf("http fetchers are required")
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Clock == nil {
		deps.Clock = enrich.SystemClock{}
	}
	if deps.Robots == nil {
		deps.Robots = frontier.AllowAll{}
	}
	if cfg.MaxPagesPerSite <= 0 {
		cfg.MaxPagesPerSite = defaultMaxPages
	}
	if cfg.Pacing <= 0 {
		cfg.Pacing = defaultPacing
	}
	if cfg.Timeouts.Plain <= 0 {
		cfg.Timeouts = fetch.DefaultTimeouts()
	}
	return &Driver{
		deps:   deps,
		cfg:    cfg,
		engine: extract.NewEngine(deps.Clock),
		logger: deps.Logger,
	}, nil
}

// Run executes one job request to completion and returns the aggregate
// metrics. The shared renderer, when enabled, is acquired once here and
// released on every exit path.
func (d *Driver) Run(ctx context.Context, req enrich.JobRequest) (enrich.JobMetrics, error) {
	metrics.Init()

	businesses, err := d.deps.Store.ListEligible(ctx, req)
	if err != nil {
		metrics.ObserveJob("error")
		return enrich.JobMetrics{}, fmt.Errorf("list eligible businesses: %w", err)
	}
	if req.SkipIfDone && !req.ForceRescrape {
		businesses = dropScraped(businesses)
	}

	parallel := d.waveSize(req)
	d.logger.Info("job starting",
		zap.String("job_id", req.JobID),
		zap.Int("businesses", len(businesses)),
		zap.Int("parallelism", parallel),
		zap.Bool("fast_mode", req.FastMode))

	var renderer enrich.Renderer
	if !req.FastMode && d.deps.NewRenderer != nil {
		renderer, err = d.deps.NewRenderer(ctx)
		if err != nil {
			d.logger.Warn("renderer unavailable, continuing without browser fallback", zap.Error(err))
			renderer = nil
		} else {
			defer renderer.Close()
		}
	}
	resolver := fetch.NewResolver(d.deps.Plain, d.deps.AntiBot, renderer, d.cfg.Timeouts, d.logger)

	maxPages := d.cfg.MaxPagesPerSite
	if req.MaxPagesPerSite > 0 {
		maxPages = req.MaxPagesPerSite
	}

	var (
		mu sync.Mutex
		jm enrich.JobMetrics
	)
	for start := 0; start < len(businesses); start += parallel {
		end := start + parallel
		if end > len(businesses) {
			end = len(businesses)
		}
		g, gctx := errgroup.WithContext(ctx)
		for _, b := range businesses[start:end] {
			b := b
			g.Go(func() error {
				metrics.IncActiveBusinesses()
				defer metrics.DecActiveBusinesses()

				result, pages := d.processBusiness(gctx, resolver, b, maxPages)

				mu.Lock()
				jm.Processed++
				if result.Status == enrich.StatusFailed {
					jm.Failed++
				}
				for _, p := range pages {
					jm.CountPage(p)
				}
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors; Wait only orders the wave barrier.
		_ = g.Wait()
	}

	if req.JobID != "" {
		if err := d.deps.Store.UpdateJobMetrics(ctx, req.JobID, jm); err != nil {
			d.logger.Warn("job metrics write failed", zap.String("job_id", req.JobID), zap.Error(err))
		}
	}

	metrics.ObserveJob("success")
	d.logger.Info("job finished",
		zap.String("job_id", req.JobID),
		zap.Int("processed", jm.Processed),
		zap.Int("failed", jm.Failed),
		zap.Int("pages", jm.TotalPages),
		zap.Int64("bytes", jm.TotalBytes))
	return jm, nil
}

func (d *Driver) waveSize(req enrich.JobRequest) int {
	alloc := d.cfg.Budget
	alloc.FastMode = req.FastMode
	if req.Concurrency > 0 {
		alloc.Override = req.Concurrency
	}
	n := budget.Parallelism(alloc)
	if n < 1 {
		n = 1
	}
	return n
}

func dropScraped(in []enrich.Business) []enrich.Business {
	out := in[:0]
	for _, b := range in {
		if !b.Scraped {
			out = append(out, b)
		}
	}
	return out
}

// processBusiness crawls, extracts, and persists one business. All failures
// are contained here; the returned result reflects what was recorded.
func (d *Driver) processBusiness(ctx context.Context, resolver *fetch.Resolver, b enrich.Business, maxPages int) (enrich.ScrapeResult, []enrich.Page) {
	start := d.deps.Clock.Now()
	log := d.logger.With(zap.String("place_id", b.PlaceID), zap.String("site", b.WebsiteURI))

	pages, fetchErrors := d.crawlSite(ctx, resolver, b.WebsiteURI, maxPages, log)
	duration := d.deps.Clock.Now().Sub(start)

	result := enrich.ScrapeResult{
		PlaceID:    b.PlaceID,
		Pages:      len(pages),
		Errors:     fetchErrors,
		DurationMs: duration.Milliseconds(),
	}

	if len(pages) == 0 {
		result.Status = enrich.StatusFailed
		d.applyResult(ctx, result, log)
		metrics.ObserveBusiness(string(enrich.StatusFailed), duration)
		log.Warn("no pages captured", zap.Int("fetch_errors", fetchErrors))
		return result, nil
	}

	result.Method = string(dominantMethod(pages))
	for _, p := range pages {
		result.Bytes += int64(len(p.HTML))
	}

	facts := d.engine.Extract(b, pages)
	capturedAt := d.deps.Clock.Now()
	raw := enrich.RawCaptureBundle{
		PlaceID:    b.PlaceID,
		WebsiteURI: b.WebsiteURI,
		ScrapedAt:  capturedAt,
		Method:     result.Method,
		DurationMs: result.DurationMs,
		Pages:      pages,
	}

	rawKey, factsKey := blob.CaptureKeys(b.PlaceID, capturedAt)
	if err := blob.PutGzipJSON(ctx, d.deps.Blobs, rawKey, raw); err != nil {
		log.Error("raw capture write failed", zap.Error(err))
		result.Status = enrich.StatusFailed
		result.Errors++
		d.applyResult(ctx, result, log)
		metrics.ObserveBusiness(string(enrich.StatusFailed), duration)
		return result, pages
	}
	if err := blob.PutGzipJSON(ctx, d.deps.Blobs, factsKey, facts); err != nil {
		log.Error("fact bundle write failed", zap.Error(err))
		result.Status = enrich.StatusFailed
		result.Errors++
		d.applyResult(ctx, result, log)
		metrics.ObserveBusiness(string(enrich.StatusFailed), duration)
		return result, pages
	}

	result.Status = enrich.StatusComplete
	if fetchErrors > 0 {
		result.Status = enrich.StatusPartial
	}
	result.Facts = &facts

	d.applyResult(ctx, result, log)
	metrics.ObserveBusiness(string(result.Status), duration)
	log.Info("business scraped",
		zap.String("status", string(result.Status)),
		zap.Int("pages", len(pages)),
		zap.Int("fetch_errors", fetchErrors))
	return result, pages
}

func (d *Driver) applyResult(ctx context.Context, result enrich.ScrapeResult, log *zap.Logger) {
	if err := d.deps.Store.ApplyScrapeResult(ctx, result); err != nil {
		log.Error("business record update failed", zap.Error(err))
	}
}

// crawlSite walks one site's frontier up to the page budget. A fetch failure
// for one URL is logged and skipped, never propagated.
func (d *Driver) crawlSite(ctx context.Context, resolver *fetch.Resolver, seedURL string, maxPages int, log *zap.Logger) ([]enrich.Page, int) {
	fr, err := frontier.New(seedURL)
	if err != nil {
		log.Warn("unusable seed url", zap.Error(err))
		return nil, 1
	}

	// One limiter per site keeps successive fetches paced without
	// penalizing other businesses in the wave.
	pacer := rate.NewLimiter(rate.Every(d.cfg.Pacing), 1)

	var pages []enrich.Page
	fetchErrors := 0
	for len(pages) < maxPages {
		rawURL, ok := fr.Next()
		if !ok {
			break
		}
		if err := pacer.Wait(ctx); err != nil {
			return pages, fetchErrors
		}

		if !d.deps.Robots.Allowed(ctx, rawURL) {
			log.Debug("disallowed by robots", zap.String("url", rawURL))
			continue
		}
		page, err := resolver.Resolve(ctx, rawURL)
		if err != nil {
			fetchErrors++
			log.Debug("url skipped", zap.String("url", rawURL), zap.Error(err))
			continue
		}
		pages = append(pages, page)
		metrics.ObservePage(rawURL, string(page.Method), len(page.HTML))

		if len(page.TextContent) > linkEnqueueThreshold {
			fr.AddAll(page.Links)
		}
	}
	return pages, fetchErrors
}

// dominantMethod reports the heaviest tier used across the capture.
func dominantMethod(pages []enrich.Page) enrich.FetchMethod {
	method := enrich.MethodHTTP
	for _, p := range pages {
		switch p.Method {
		case enrich.MethodRendered:
			return enrich.MethodRendered
		case enrich.MethodAntiBot:
			method = enrich.MethodAntiBot
		}
	}
	return method
}
