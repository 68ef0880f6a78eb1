package core

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

// Registry is the process-wide job table: many concurrent readers of status,
// one writer per job (the worker that owns it). Cancel only flips the
// cancellation signal; the owner applies the resulting transition, except
// for jobs that never left Pending.
type Registry struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[uuid.UUID]*Job)}
}

// Create registers a new Pending job.
func (r *Registry) Create(job *Job) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.Status = constants.JobStatusPending
	job.CreatedAt = time.Now().UTC()
	job.Tasks = make(map[constants.TrackKind]*StreamTask)
	r.jobs[job.ID] = job
}

// Snapshot returns the observable state of a job.
func (r *Registry) Snapshot(id uuid.UUID) (Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Snapshot{}, common.Ef(common.KindNotFound, nil, "unknown job %s", id)
	}
	return job.snapshot(), nil
}

// Snapshots returns a copy of every registered job, newest first ordering is
// left to callers.
func (r *Registry) Snapshots() []Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Snapshot, 0, len(r.jobs))
	for _, job := range r.jobs {
		out = append(out, job.snapshot())
	}
	return out
}

// transition applies a legal state-machine move. Illegal moves are dropped
// with a false return so a racing cancel can never resurrect a terminal job.
func (r *Registry) transition(id uuid.UUID, to constants.JobStatus) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok || !constants.CanTransition(job.Status, to) {
		return false
	}
	job.Status = to
	if to.Terminal() {
		job.FinishedAt = time.Now().UTC()
	}
	return true
}

func (r *Registry) update(id uuid.UUID, fn func(*Job)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		fn(job)
	}
}

// RequestCancel flags the job for cancellation. The return reports whether
// the job was still Pending (in which case the caller finalizes it directly,
// since no worker owns it yet) and whether a cancel signal was delivered.
func (r *Registry) RequestCancel(id uuid.UUID) (wasPending bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false, common.Ef(common.KindNotFound, nil, "unknown job %s", id)
	}
	if job.Status.Terminal() {
		return false, nil // idempotent on terminal jobs
	}
	job.cancelRequested = true
	if job.Status == constants.JobStatusPending {
		return true, nil
	}
	if job.cancel != nil {
		job.cancel()
	}
	return false, nil
}

// inputs returns the submission-time inputs a worker needs to run a job.
func (r *Registry) inputs(id uuid.UUID) (cookie []byte, videoFormat, audioFormat string) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if j, ok := r.jobs[id]; ok {
		return j.CookieBlob, j.VideoFormatID, j.AudioFormatID
	}
	return nil, "", ""
}

// bindCancel hands the owning worker's cancel func to the registry so a
// later Cancel call reaches the in-flight tool processes. If cancellation
// was already requested before the worker picked the job up, the signal is
// delivered immediately.
func (r *Registry) bindCancel(id uuid.UUID, cancel context.CancelFunc) (alreadyCancelled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return false
	}
	job.cancel = cancel
	return job.cancelRequested
}

// PruneTerminal drops terminal jobs that finished before the cutoff and
// returns their snapshots so the caller can reclaim their artifacts.
func (r *Registry) PruneTerminal(cutoff time.Time) []Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	var pruned []Snapshot
	for id, job := range r.jobs {
		if job.Status.Terminal() && !job.FinishedAt.IsZero() && job.FinishedAt.Before(cutoff) {
			pruned = append(pruned, job.snapshot())
			delete(r.jobs, id)
		}
	}
	return pruned
}
