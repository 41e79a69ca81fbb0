package store

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/leadscout/enrich/internal/enrich"
)

// MemoryStore is an in-memory BusinessStore used by tests and by runs fed a
// pre-filtered batch list instead of a live database.
type MemoryStore struct {
	mu         sync.Mutex
	businesses map[string]enrich.Business
	attrs      map[string]map[string]any
	results    map[string]enrich.ScrapeResult
	jobMetrics map[string]enrich.JobMetrics
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		businesses: make(map[string]enrich.Business),
		attrs:      make(map[string]map[string]any),
		results:    make(map[string]enrich.ScrapeResult),
		jobMetrics: make(map[string]enrich.JobMetrics),
	}
}

// Seed registers a business record.
func (s *MemoryStore) Seed(b enrich.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[b.PlaceID] = b
	if _, ok := s.attrs[b.PlaceID]; !ok {
		s.attrs[b.PlaceID] = make(map[string]any)
	}
}

// SeedAttr sets one attribute on a business, for filter-rule tests.
func (s *MemoryStore) SeedAttr(placeID, field string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.attrs[placeID]; !ok {
		s.attrs[placeID] = make(map[string]any)
	}
	s.attrs[placeID][field] = value
}

func (s *MemoryStore) ListEligible(_ context.Context, req enrich.JobRequest) ([]enrich.Business, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var idSet map[string]bool
	if len(req.PlaceIDs) > 0 {
		idSet = make(map[string]bool, len(req.PlaceIDs))
		for _, id := range req.PlaceIDs {
			idSet[id] = true
		}
	}

	var out []enrich.Business
	for id, b := range s.businesses {
		if b.WebsiteURI == "" {
			continue
		}
		if b.Scraped && !req.ForceRescrape {
			continue
		}
		if idSet != nil && !idSet[id] {
			continue
		}
		if !matchesRules(s.attrs[id], req.FilterRules) {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlaceID < out[j].PlaceID })
	return out, nil
}

func matchesRules(attrs map[string]any, rules []enrich.FilterRule) bool {
	for _, rule := range rules {
		v, exists := attrs[rule.Field]
		switch rule.Operator {
		case enrich.OpExists:
			if !exists || v == nil {
				return false
			}
		case enrich.OpNotExists:
			if exists && v != nil {
				return false
			}
		case enrich.OpEquals:
			if !exists || fmt.Sprint(v) != rule.Value {
				return false
			}
		case enrich.OpNotEquals:
			if exists && fmt.Sprint(v) == rule.Value {
				return false
			}
		}
	}
	return true
}

func (s *MemoryStore) ApplyScrapeResult(_ context.Context, result enrich.ScrapeResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[result.PlaceID]
	if !ok {
		return fmt.Errorf("unknown business %s", result.PlaceID)
	}
	b.Scraped = true
	s.businesses[result.PlaceID] = b
	s.results[result.PlaceID] = result
	if result.Facts != nil {
		for k, v := range FlattenFacts(result.Facts) {
			s.attrs[result.PlaceID][k] = v
		}
	}
	return nil
}

func (s *MemoryStore) UpdateJobMetrics(_ context.Context, jobID string, metrics enrich.JobMetrics) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobMetrics[jobID] = metrics
	return nil
}

// Result returns the applied scrape result for a business.
func (s *MemoryStore) Result(placeID string) (enrich.ScrapeResult, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.results[placeID]
	return r, ok
}

// Business returns the current record for a place id.
func (s *MemoryStore) Business(placeID string) (enrich.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[placeID]
	return b, ok
}

// JobMetricsFor returns the metrics written for a job id.
func (s *MemoryStore) JobMetricsFor(jobID string) (enrich.JobMetrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.jobMetrics[jobID]
	return m, ok
}
