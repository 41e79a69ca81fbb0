package api

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/leadscout/enrich/internal/enrich"
)

// RunState is the lifecycle of a submitted job run.
type RunState string

// Run states reported by the API.
const (
	RunRunning RunState = "running"
	RunSuccess RunState = "success"
	RunError   RunState = "error"
)

// Run is the API view of one submitted job.
type Run struct {
	ID         string             `json:"run_id"`
	State      RunState           `json:"state"`
	Request    enrich.JobRequest  `json:"request"`
	Metrics    *enrich.JobMetrics `json:"metrics,omitempty"`
	Error      string             `json:"error,omitempty"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt *time.Time         `json:"finished_at,omitempty"`
}

type runRegistry struct {
	mu   sync.Mutex
	runs map[string]*Run
}

func newRunRegistry() *runRegistry {
	return &runRegistry{runs: make(map[string]*Run)}
}

func (r *runRegistry) start(req enrich.JobRequest) *Run {
	r.mu.Lock()
	defer r.mu.Unlock()
	run := &Run{
		ID:        uuid.NewString(),
		State:     RunRunning,
		Request:   req,
		StartedAt: time.Now().UTC(),
	}
	r.runs[run.ID] = run
	return run
}

func (r *runRegistry) finish(id string, jm enrich.JobMetrics, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return
	}
	now := time.Now().UTC()
	run.FinishedAt = &now
	run.Metrics = &jm
	if err != nil {
		run.State = RunError
		run.Error = err.Error()
		return
	}
	run.State = RunSuccess
}

func (r *runRegistry) get(id string) (Run, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	run, ok := r.runs[id]
	if !ok {
		return Run{}, false
	}
	return *run, true
}
