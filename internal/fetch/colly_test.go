package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

type fetchClock struct{}

func (fetchClock) Now() time.Time { return time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC) }

func TestHTTPFetcherFetch(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html><body><p>Founded in 1998.</p></body></html>"))
	}))
	defer srv.Close()

	f := NewHTTPFetcher(HTTPConfig{UserAgent: "test/1.0"}, fetchClock{}, zap.NewNop())
	page, err := f.Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	require.Equal(t, 200, page.StatusCode)
	require.Equal(t, enrich.MethodHTTP, page.Method)
	require.Contains(t, page.TextContent, "Founded in 1998")
}

func TestHTTPFetcherContextDeadlineInterruptsFetch(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	f := NewHTTPFetcher(HTTPConfig{UserAgent: "test/1.0"}, fetchClock{}, zap.NewNop())
	start := time.Now()
	_, err := f.Fetch(ctx, srv.URL)
	require.Error(t, err)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.Less(t, time.Since(start), 5*time.Second)
}
