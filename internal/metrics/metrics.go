// Package metrics exposes Prometheus collectors for the enrichment service.
package metrics

import (
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	scrapePagesTotal       *prometheus.CounterVec
	scrapeBytesTotal       *prometheus.CounterVec
	scrapeBusinessesTotal  *prometheus.CounterVec
	scrapeJobsTotal        *prometheus.CounterVec
	scrapeActiveBusinesses prometheus.Gauge
	scrapeDurationSeconds  *prometheus.HistogramVec

	once sync.Once
)

// Init initializes the Prometheus metrics collectors.
// It is safe to call this function multiple times.
func Init() {
	once.Do(func() {
		scrapePagesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrich_pages_total",
				Help: "Total pages fetched, labeled by site and fetch method.",
			},
			[]string{"site", "method"},
		)

		scrapeBytesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrich_bytes_total",
				Help: "Total markup bytes fetched, labeled by site.",
			},
			[]string{"site"},
		)

		scrapeBusinessesTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrich_businesses_total",
				Help: "Total businesses processed, labeled by terminal status.",
			},
			[]string{"status"},
		)

		scrapeJobsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "enrich_jobs_total",
				Help: "Total enrichment jobs run, labeled by outcome.",
			},
			[]string{"outcome"},
		)

		scrapeActiveBusinesses = promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "enrich_active_businesses",
				Help: "Businesses currently being scraped in the running wave.",
			},
		)

		scrapeDurationSeconds = promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "enrich_business_duration_seconds",
				Help:    "Histogram of per-business scrape durations.",
				Buckets: []float64{1, 5, 15, 30, 60, 120, 300},
			},
			[]string{"status"},
		)
	})
}

// SanitizeSite sanitizes a URL to extract a lowercase hostname.
// It returns "unknown" if the URL is invalid.
func SanitizeSite(rawURL string) string {
	if !strings.HasPrefix(rawURL, "http") {
		rawURL = "http://" + rawURL
	}
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "unknown"
	}
	return strings.ToLower(u.Hostname())
}

// Handler returns an http.Handler for exposing Prometheus metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// ObservePage records one fetched page against its site and tier.
func ObservePage(site, method string, bytesFetched int) {
	sanitized := SanitizeSite(site)
	scrapePagesTotal.WithLabelValues(sanitized, method).Inc()
	if bytesFetched > 0 {
		scrapeBytesTotal.WithLabelValues(sanitized).Add(float64(bytesFetched))
	}
}

// ObserveBusiness records one completed business with its status and duration.
func ObserveBusiness(status string, duration time.Duration) {
	scrapeBusinessesTotal.WithLabelValues(status).Inc()
	scrapeDurationSeconds.WithLabelValues(status).Observe(duration.Seconds())
}

// ObserveJob increments the job counter for the given outcome.
func ObserveJob(outcome string) {
	scrapeJobsTotal.WithLabelValues(outcome).Inc()
}

// IncActiveBusinesses increments the active-business gauge.
func IncActiveBusinesses() {
	scrapeActiveBusinesses.Inc()
}

// DecActiveBusinesses decrements the active-business gauge.
func DecActiveBusinesses() {
	scrapeActiveBusinesses.Dec()
}
