// Package frontier implements the per-business crawl queue: breadth-first,
// same-domain only, deduped by normalized URL, with priority reordering so
// pages likely to hold contacts and history are fetched first. Frontier state
// is ephemeral and never shared between businesses.
package frontier

import (
	"fmt"
	"net/url"

	"github.com/leadscout/enrich/internal/patterns"
)

// Frontier orders the not-yet-visited URLs for one business.
type Frontier struct {
	seedHost string
	visited  map[string]struct{}
	high     []string
	normal   []string
}

// New seeds a frontier with the business's root website URL.
func New(seedURL string) (*Frontier, error) {
	normalized, err := Normalize(seedURL)
	if err != nil {
		return nil, fmt.Errorf("seed url: %w", err)
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return nil, fmt.Errorf("seed url: %w", err)
	}
	f := &Frontier{
		seedHost: u.Host,
		visited:  make(map[string]struct{}),
	}
	f.visited[normalized] = struct{}{}
	f.normal = append(f.normal, normalized)
	return f, nil
}

// Next dequeues the highest-priority pending URL. Within a priority class
// order is FIFO, which keeps extraction deterministic for a fixed page set.
func (f *Frontier) Next() (string, bool) {
	if len(f.high) > 0 {
		u := f.high[0]
		f.high = f.high[1:]
		return u, true
	}
	if len(f.normal) > 0 {
		u := f.normal[0]
		f.normal = f.normal[1:]
		return u, true
	}
	return "", false
}

// Add enqueues a discovered link if it normalizes cleanly, stays on the seed
// domain, is not a denied shape, and has not been seen before. It reports
// whether the URL was enqueued.
func (f *Frontier) Add(rawURL string) bool {
	normalized, err := Normalize(rawURL)
	if err != nil {
		return false
	}
	u, err := url.Parse(normalized)
	if err != nil {
		return false
	}
	if !SameDomain(u.Host, f.seedHost) {
		return false
	}
	if Denied(u) {
		return false
	}
	if _, seen := f.visited[normalized]; seen {
		return false
	}
	f.visited[normalized] = struct{}{}
	if patterns.PathPriority(u.Path) == 0 {
		f.high = append(f.high, normalized)
	} else {
		f.normal = append(f.normal, normalized)
	}
	return true
}

// AddAll enqueues every link that passes the admission checks.
func (f *Frontier) AddAll(links []string) {
	for _, l := range links {
		f.Add(l)
	}
}

// Pending returns how many URLs are queued.
func (f *Frontier) Pending() int {
	return len(f.high) + len(f.normal)
}
