package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/leadscout/enrich/internal/enrich"
)

func TestMemoryListEligible(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.Seed(enrich.Business{PlaceID: "a", WebsiteURI: "https://a.com"})
	s.Seed(enrich.Business{PlaceID: "b", WebsiteURI: "https://b.com", Scraped: true})
	s.Seed(enrich.Business{PlaceID: "c"}) // no website

	got, err := s.ListEligible(context.Background(), enrich.JobRequest{SkipIfDone: true})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].PlaceID)

	got, err = s.ListEligible(context.Background(), enrich.JobRequest{ForceRescrape: true})
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestMemoryFilterRules(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.Seed(enrich.Business{PlaceID: "a", WebsiteURI: "https://a.com"})
	s.Seed(enrich.Business{PlaceID: "b", WebsiteURI: "https://b.com"})
	s.SeedAttr("a", "category", "plumber")

	got, err := s.ListEligible(context.Background(), enrich.JobRequest{
		FilterRules: []enrich.FilterRule{{Field: "category", Operator: enrich.OpEquals, Value: "plumber"}},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "a", got[0].PlaceID)

	got, err = s.ListEligible(context.Background(), enrich.JobRequest{
		FilterRules: []enrich.FilterRule{{Field: "category", Operator: enrich.OpNotExists}},
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "b", got[0].PlaceID)
}

func TestMemoryApplyScrapeResultMarksScraped(t *testing.T) {
	t.Parallel()

	s := NewMemoryStore()
	s.Seed(enrich.Business{PlaceID: "a", WebsiteURI: "https://a.com"})

	facts := &enrich.ExtractedFactBundle{PlaceID: "a"}
	facts.History.FoundedYear = 1998
	err := s.ApplyScrapeResult(context.Background(), enrich.ScrapeResult{
		PlaceID: "a",
		Status:  enrich.StatusComplete,
		Facts:   facts,
	})
	require.NoError(t, err)

	b, ok := s.Business("a")
	require.True(t, ok)
	require.True(t, b.Scraped)

	got, err := s.ListEligible(context.Background(), enrich.JobRequest{SkipIfDone: true})
	require.NoError(t, err)
	require.Empty(t, got)
}
