package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
)

type stubRunner struct {
	metrics enrich.JobMetrics
	err     error
	gotReq  chan enrich.JobRequest
}

func (s *stubRunner) Run(_ context.Context, req enrich.JobRequest) (enrich.JobMetrics, error) {
	if s.gotReq != nil {
		s.gotReq <- req
	}
	return s.metrics, s.err
}

func TestHealthz(t *testing.T) {
	t.Parallel()

	s := NewServer(&stubRunner{}, zap.NewNop())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	s := NewServer(&stubRunner{}, zap.NewNop())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSubmitJobAndPollRun(t *testing.T) {
	t.Parallel()

	runner := &stubRunner{
		metrics: enrich.JobMetrics{Processed: 3, TotalPages: 12},
		gotReq:  make(chan enrich.JobRequest, 1),
	}
	s := NewServer(runner, zap.NewNop())

	body, _ := json.Marshal(enrich.JobRequest{JobID: "job-9", FastMode: true})
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewReader(body)))
	require.Equal(t, http.StatusAccepted, rec.Code)

	var accepted map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &accepted))
	runID := accepted["run_id"]
	require.NotEmpty(t, runID)

	select {
	case req := <-runner.gotReq:
		require.Equal(t, "job-9", req.JobID)
		require.True(t, req.FastMode)
	case <-time.After(2 * time.Second):
		t.Fatal("runner was not invoked")
	}

	require.Eventually(t, func() bool {
		rec := httptest.NewRecorder()
		s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/"+runID, nil))
		if rec.Code != http.StatusOK {
			return false
		}
		var run Run
		if err := json.Unmarshal(rec.Body.Bytes(), &run); err != nil {
			return false
		}
		return run.State == RunSuccess && run.Metrics != nil && run.Metrics.Processed == 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestSubmitJobRejectsBadJSON(t *testing.T) {
	t.Parallel()

	s := NewServer(&stubRunner{}, zap.NewNop())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/jobs", bytes.NewReader([]byte("{"))))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetUnknownRun(t *testing.T) {
	t.Parallel()

	s := NewServer(&stubRunner{}, zap.NewNop())
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/jobs/nope", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
