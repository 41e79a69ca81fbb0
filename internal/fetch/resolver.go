package fetch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

// ErrAllTiersFailed is returned when no tier produced usable markup.
var ErrAllTiersFailed = errors.New("all fetch tiers failed")

// urlState is the per-URL position in the escalation state machine.
type urlState int

const (
	stateFetchedTier1 urlState = iota
	stateNeedsRender
	stateRendered
	stateFailed
)

// Timeouts bounds each tier independently.
type Timeouts struct {
	Plain      time.Duration
	Fallback   time.Duration
	IdleRender time.Duration
}

// DefaultTimeouts match the tier budgets: 10s plain HTTP, 15s render
// fallback, 30s network-idle re-render.
func DefaultTimeouts() Timeouts {
	return Timeouts{
		Plain:      10 * time.Second,
		Fallback:   15 * time.Second,
		IdleRender: 30 * time.Second,
	}
}

// Resolver escalates a single URL through the fetch tiers. A nil renderer
// (fast mode) disables tiers that need a browser.
type Resolver struct {
	plain    enrich.Fetcher
	antibot  enrich.Fetcher
	renderer enrich.Renderer
	timeouts Timeouts
	logger   *zap.Logger
}

// NewResolver wires the tiers together.
func NewResolver(plain, antibot enrich.Fetcher, renderer enrich.Renderer, timeouts Timeouts, logger *zap.Logger) *Resolver {
	return &Resolver{
		plain:    plain,
		antibot:  antibot,
		renderer: renderer,
		timeouts: timeouts,
		logger:   logger,
	}
}

// Resolve fetches one URL, escalating until a tier yields usable markup.
// The returned page records which tier supplied it. A completely failed URL
// returns ErrAllTiersFailed (wrapped) and is not retried.
func (r *Resolver) Resolve(ctx context.Context, rawURL string) (enrich.Page, error) {
	page, state := r.fetchHTTP(ctx, rawURL)

	switch state {
	case stateFailed:
		// Both HTTP profiles failed; rendering is the last resort.
		if r.renderer == nil {
			return enrich.Page{}, ErrAllTiersFailed
		}
		rendered, err := r.render(ctx, rawURL, false, r.timeouts.Fallback)
		if err != nil {
			r.logger.Debug("render fallback failed", zap.String("url", rawURL), zap.Error(err))
			return enrich.Page{}, ErrAllTiersFailed
		}
		return rendered, nil

	case stateNeedsRender:
		// HTTP succeeded but the markup looks client-rendered; prefer the
		// rendered result when it materializes, otherwise keep what we have.
		rendered, err := r.render(ctx, rawURL, true, r.timeouts.IdleRender)
		if err != nil {
			r.logger.Debug("idle render failed; keeping http result",
				zap.String("url", rawURL), zap.Error(err))
			return page, nil
		}
		return rendered, nil

	default:
		return page, nil
	}
}

// fetchHTTP runs the two HTTP profiles and classifies the outcome.
func (r *Resolver) fetchHTTP(ctx context.Context, rawURL string) (enrich.Page, urlState) {
	page, err := r.fetchWithTimeout(ctx, r.plain, rawURL)
	if err != nil {
		r.logger.Debug("plain fetch failed; trying anti-bot profile",
			zap.String("url", rawURL), zap.Error(err))
		page, err = r.fetchWithTimeout(ctx, r.antibot, rawURL)
		if err != nil {
			return enrich.Page{}, stateFailed
		}
	}
	if r.renderer != nil && NeedsRender(page) {
		return page, stateNeedsRender
	}
	return page, stateFetchedTier1
}

func (r *Resolver) fetchWithTimeout(ctx context.Context, f enrich.Fetcher, rawURL string) (enrich.Page, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, r.timeouts.Plain)
	defer cancel()
	return f.Fetch(fetchCtx, rawURL)
}

func (r *Resolver) render(ctx context.Context, rawURL string, waitIdle bool, timeout time.Duration) (enrich.Page, error) {
	renderCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return r.renderer.Render(renderCtx, rawURL, waitIdle)
}
