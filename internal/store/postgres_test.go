package store

import (
	"context"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

func TestBuildEligibleQuery(t *testing.T) {
	t.Parallel()

	req := enrich.JobRequest{
		PlaceIDs: []string{"p1", "p2"},
		FilterRules: []enrich.FilterRule{
			{Field: "category", Operator: enrich.OpEquals, Value: "plumber"},
			{Field: "founded_year", Operator: enrich.OpNotExists},
		},
	}
	query, args := buildEligibleQuery(req)

	require.Contains(t, query, "website_uri IS NOT NULL")
	require.Contains(t, query, "AND NOT scraped")
	require.Contains(t, query, "place_id = ANY($1)")
	require.Contains(t, query, "attrs->>$2 = $3")
	require.Contains(t, query, "NOT (attrs ? $4)")
	require.Contains(t, query, "ORDER BY place_id")
	require.Equal(t, []any{[]string{"p1", "p2"}, "category", "plumber", "founded_year"}, args)
}

func TestBuildEligibleQueryForceRescrape(t *testing.T) {
	t.Parallel()

	query, args := buildEligibleQuery(enrich.JobRequest{ForceRescrape: true})
	require.NotContains(t, query, "NOT scraped")
	require.Empty(t, args)
}

func TestListEligibleScansRows(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s, err := NewPostgresStoreWithPool(mock, zap.NewNop())
	require.NoError(t, err)

	rows := pgxmock.NewRows([]string{"place_id", "name", "website_uri", "phone_number", "scraped"}).
		AddRow("p1", "Acme Plumbing", "https://acme-plumbing.com", "2128675309", false)
	mock.ExpectQuery("SELECT place_id").WillReturnRows(rows)

	got, err := s.ListEligible(context.Background(), enrich.JobRequest{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "p1", got[0].PlaceID)
	require.Equal(t, "https://acme-plumbing.com", got[0].WebsiteURI)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyScrapeResultWithFacts(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s, err := NewPostgresStoreWithPool(mock, zap.NewNop())
	require.NoError(t, err)

	facts := &enrich.ExtractedFactBundle{PlaceID: "p1"}
	facts.Contacts.Emails = []string{"info@acme.com"}
	facts.History.FoundedYear = 1998

	mock.ExpectExec("UPDATE businesses SET").
		WithArgs("p1", "complete", "http", 3, int64(2048), 0, int64(1500), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = s.ApplyScrapeResult(context.Background(), enrich.ScrapeResult{
		PlaceID:    "p1",
		Status:     enrich.StatusComplete,
		Method:     "http",
		Pages:      3,
		Bytes:      2048,
		DurationMs: 1500,
		Facts:      facts,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyScrapeResultZeroPages(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s, err := NewPostgresStoreWithPool(mock, zap.NewNop())
	require.NoError(t, err)

	mock.ExpectExec("UPDATE businesses SET").
		WithArgs("p2", "failed", "", 0, int64(0), 1, int64(900)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = s.ApplyScrapeResult(context.Background(), enrich.ScrapeResult{
		PlaceID:    "p2",
		Status:     enrich.StatusFailed,
		Errors:     1,
		DurationMs: 900,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateJobMetricsMissingJobTolerated(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	s, err := NewPostgresStoreWithPool(mock, zap.NewNop())
	require.NoError(t, err)

	mock.ExpectExec("UPDATE jobs SET").
		WithArgs("missing-job", pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = s.UpdateJobMetrics(context.Background(), "missing-job", enrich.JobMetrics{Processed: 4})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFlattenFactsWritesExplicitNulls(t *testing.T) {
	t.Parallel()

	facts := &enrich.ExtractedFactBundle{}
	facts.Contacts.Emails = []string{"a@b.com"}

	attrs := FlattenFacts(facts)
	require.Equal(t, []string{"a@b.com"}, attrs["emails"])
	require.Nil(t, attrs["phones"])
	require.Nil(t, attrs["founded_year"])
	require.Nil(t, attrs["acquisition_summary"])
	require.Equal(t, false, attrs["has_acquisition_signal"])
	require.Contains(t, attrs, "years_in_business")
}
