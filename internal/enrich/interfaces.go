package enrich

import (
	"context"
	"time"
)

// BusinessStore reads eligible businesses and applies scrape updates.
type BusinessStore interface {
	// ListEligible returns businesses matching the driver's eligibility rule,
	// already narrowed by filter rules and the optional id restriction.
	ListEligible(ctx context.Context, req JobRequest) ([]Business, error)
	// ApplyScrapeResult writes the flattened result onto the business record.
	// Null-valued extracted fields are written explicitly so a re-scrape
	// clears values that are no longer found.
	ApplyScrapeResult(ctx context.Context, result ScrapeResult) error
	// UpdateJobMetrics writes the aggregate counters to the owning job record.
	UpdateJobMetrics(ctx context.Context, jobID string, metrics JobMetrics) error
}

// BlobStore persists capture objects to durable storage.
type BlobStore interface {
	// Put writes data under key with the given content type and encoding.
	Put(ctx context.Context, key, contentType, contentEncoding string, data []byte) error
}

// Fetcher retrieves a single URL over plain HTTP.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (Page, error)
}

// Renderer retrieves a single URL through a shared headless browser. WaitIdle
// selects a network-idle wait instead of the default DOM-ready wait.
type Renderer interface {
	Render(ctx context.Context, rawURL string, waitIdle bool) (Page, error)
	Close()
}

// Clock supplies the current time so extraction stays deterministic in tests.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time { return time.Now().UTC() }
