// Package api exposes the HTTP interface for the enrichment service:
// health probes, Prometheus metrics, and job submission.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/leadscout/enrich/internal/enrich"
	"github.com/leadscout/enrich/internal/metrics"
)

// JobRunner executes one job request to completion.
type JobRunner interface {
	Run(ctx context.Context, req enrich.JobRequest) (enrich.JobMetrics, error)
}

// Server wires HTTP handlers to the job runner.
type Server struct {
	router chi.Router
	runner JobRunner
	runs   *runRegistry
	logger *zap.Logger
}

// NewServer constructs a Server with middleware and routes.
func NewServer(runner JobRunner, logger *zap.Logger) *Server {
	s := &Server{
		runner: runner,
		runs:   newRunRegistry(),
		logger: logger,
	}
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(logger))
	r.Use(recoverMiddleware(logger))

	r.Get("/healthz", s.healthz)
	r.Get("/readyz", s.readyz)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/jobs", s.submitJob)
		r.Get("/jobs/{run_id}", s.getRun)
	})

	s.router = r
	return s
}

// Handler returns the router for use with http.Server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) readyz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) submitJob(w http.ResponseWriter, r *http.Request) {
	var req enrich.JobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	run := s.runs.start(req)

	go func() {
		// The run outlives the submitting request.
		ctx := context.Background()
		jm, err := s.runner.Run(ctx, req)
		if err != nil {
			s.logger.Error("job run failed", zap.String("run_id", run.ID), zap.Error(err))
			s.runs.finish(run.ID, jm, err)
			return
		}
		s.runs.finish(run.ID, jm, nil)
	}()

	writeJSON(w, http.StatusAccepted, map[string]string{"run_id": run.ID})
}

func (s *Server) getRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, "run_id")
	run, ok := s.runs.get(runID)
	if !ok {
		writeError(w, http.StatusNotFound, "run not found")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// Serve runs the HTTP server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Serve(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("http server listening", zap.String("addr", addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
