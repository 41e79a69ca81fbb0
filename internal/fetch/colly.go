package fetch

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gocolly/colly/v2"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

// realisticUA is the header identity used by the anti-bot profile. Challenge
// walls key on obviously robotic user agents, so the stealth profile looks
// like a current desktop Chrome.
const realisticUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

// Profile selects which header identity an HTTPFetcher presents.
type Profile int

// Fetch profiles, one per HTTP tier.
const (
	ProfilePlain Profile = iota
	ProfileAntiBot
)

// HTTPFetcher retrieves pages via a Colly collector. It implements
// enrich.Fetcher for the two HTTP tiers; the profile decides headers and the
// reported fetch method.
type HTTPFetcher struct {
	base    *colly.Collector
	profile Profile
	clock   enrich.Clock
	logger  *zap.Logger
}

// HTTPConfig controls an HTTPFetcher.
type HTTPConfig struct {
	UserAgent string
	Timeout   time.Duration
	Profile   Profile
}

// NewHTTPFetcher constructs a configured Colly-based fetcher.
func NewHTTPFetcher(cfg HTTPConfig, clock enrich.Clock, logger *zap.Logger) *HTTPFetcher {
	ua := cfg.UserAgent
	if cfg.Profile == ProfileAntiBot {
		ua = realisticUA
	}
	base := colly.NewCollector(colly.UserAgent(ua))
	base.AllowURLRevisit = true
	base.IgnoreRobotsTxt = true // robots is enforced by the frontier policy
	// Challenge pages arrive with 403/503; keep the body instead of erroring
	// so the detector can decide whether rendering is worth it.
	base.ParseHTTPErrorResponse = true
	if cfg.Timeout > 0 {
		base.SetRequestTimeout(cfg.Timeout)
	}
	base.WithTransport(&http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        64,
		MaxIdleConnsPerHost: 8,
		IdleConnTimeout:     30 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
		ForceAttemptHTTP2:   true,
	})

	return &HTTPFetcher{
		base:    base,
		profile: cfg.Profile,
		clock:   clock,
		logger:  logger,
	}
}

// Fetch retrieves one URL and parses it into a Page.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (enrich.Page, error) {
	collector := f.base.Clone()
	// Bound the underlying HTTP request by the caller's context so the
	// resolver's per-tier deadline and driver cancellation can interrupt an
	// in-flight fetch.
	collector.Context = ctx
	if f.profile == ProfileAntiBot {
		collector.OnRequest(func(r *colly.Request) {
			r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
			r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
			r.Headers.Set("Sec-Fetch-Mode", "navigate")
			r.Headers.Set("Upgrade-Insecure-Requests", "1")
		})
	}

	resultCh := make(chan fetchResult, 1)
	var once sync.Once
	send := func(res fetchResult) {
		once.Do(func() { resultCh <- res })
	}

	collector.OnResponse(func(r *colly.Response) {
		send(fetchResult{
			status: r.StatusCode,
			url:    r.Request.URL.String(),
			body:   append([]byte{}, r.Body...),
		})
	})
	collector.OnError(func(r *colly.Response, err error) {
		if err == nil {
			err = errors.New("unknown colly error")
		}
		send(fetchResult{err: err})
	})

	if err := collector.Visit(rawURL); err != nil {
		return enrich.Page{}, err
	}
	collector.Wait()

	select {
	case res := <-resultCh:
		if err := ctx.Err(); err != nil {
			return enrich.Page{}, err
		}
		if res.err != nil {
			return enrich.Page{}, res.err
		}
		method := enrich.MethodHTTP
		if f.profile == ProfileAntiBot {
			method = enrich.MethodAntiBot
		}
		return BuildPage(res.url, res.status, res.body, method, f.clock.Now()), nil
	default:
		return enrich.Page{}, errors.New("colly fetch produced no result")
	}
}

type fetchResult struct {
	status int
	url    string
	body   []byte
	err    error
}
