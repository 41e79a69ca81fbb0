package fetch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/chromedp/cdproto/emulation"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

// settleDelay approximates a network-idle wait after the DOM is ready:
// client-rendered sites need a beat for XHR-driven content to land.
const settleDelay = 2 * time.Second

// ChromeRenderer renders pages through one shared headless Chrome instance.
// The instance is process-wide; every Render opens and closes its own
// isolated tab context against it.
type ChromeRenderer struct {
	allocCancel   context.CancelFunc
	browserCtx    context.Context
	browserCancel context.CancelFunc
	userAgent     string
	clock         enrich.Clock
	logger        *zap.Logger
}

// NewChromeRenderer starts the shared browser and verifies it responds.
func NewChromeRenderer(userAgent string, clock enrich.Clock, logger *zap.Logger) (*ChromeRenderer, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", "new"),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("hide-scrollbars", true),
		chromedp.UserAgent(userAgent),
	)
	allocCtx, allocCancel := chromedp.NewExecAllocator(context.Background(), opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(browserCtx); err != nil {
		browserCancel()
		allocCancel()
		return nil, fmt.Errorf("chromedp warmup: %w", err)
	}
	return &ChromeRenderer{
		allocCancel:   allocCancel,
		browserCtx:    browserCtx,
		browserCancel: browserCancel,
		userAgent:     userAgent,
		clock:         clock,
		logger:        logger,
	}, nil
}

// Close tears down the shared browser. Safe to call once at run end on any
// exit path.
func (r *ChromeRenderer) Close() {
	if r == nil {
		return
	}
	r.browserCancel()
	r.allocCancel()
}

// Render executes the page with JavaScript enabled and returns the resulting
// DOM as a Page. waitIdle adds the settle delay used for the network-idle
// tier.
func (r *ChromeRenderer) Render(ctx context.Context, rawURL string, waitIdle bool) (enrich.Page, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	stop := forwardCancel(ctx, cancelTab)
	defer stop()

	meta := &responseMeta{}
	chromedp.ListenTarget(tabCtx, meta.capture)

	actions := []chromedp.Action{
		network.Enable(),
		emulation.SetUserAgentOverride(r.userAgent),
		chromedp.Navigate(rawURL),
		chromedp.WaitReady("body", chromedp.ByQuery),
	}
	if waitIdle {
		actions = append(actions, chromedp.Sleep(settleDelay))
	}
	var html string
	actions = append(actions, chromedp.OuterHTML("html", &html, chromedp.ByQuery))

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		return enrich.Page{}, fmt.Errorf("chromedp run: %w", err)
	}

	status := meta.status()
	if status == 0 {
		status = 200
	}
	return BuildPage(rawURL, status, []byte(html), enrich.MethodRendered, r.clock.Now()), nil
}

type responseMeta struct {
	once       sync.Once
	statusCode int
}

func (m *responseMeta) capture(ev interface{}) {
	resp, ok := ev.(*network.EventResponseReceived)
	if !ok || resp.Type != network.ResourceTypeDocument {
		return
	}
	m.once.Do(func() {
		m.statusCode = int(resp.Response.Status)
	})
}

func (m *responseMeta) status() int {
	return m.statusCode
}

// forwardCancel cancels the tab when the caller's context finishes first;
// chromedp child contexts do not inherit from it directly.
func forwardCancel(parent context.Context, cancel context.CancelFunc) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-parent.Done():
			cancel()
		case <-done:
		}
	}()
	return func() { close(done) }
}
