package core

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

func newJob() *Job {
	return &Job{ID: uuid.New(), URL: "https://youtu.be/abc", Platform: constants.PlatformYouTube}
}

func TestRegistry_CreateAndSnapshot(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)

	snap, err := r.Snapshot(job.ID)
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	if snap.Status != constants.JobStatusPending {
		t.Errorf("status = %q, want PENDING", snap.Status)
	}
	if snap.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	_, err = r.Snapshot(uuid.New())
	if common.KindOf(err) != common.KindNotFound {
		t.Errorf("unknown job kind = %q, want NOT_FOUND", common.KindOf(err))
	}
}

func TestRegistry_TransitionEnforcesStateMachine(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)

	if !r.transition(job.ID, constants.JobStatusFetching) {
		t.Fatal("pending -> fetching should be allowed")
	}
	if r.transition(job.ID, constants.JobStatusCompleted) {
		t.Fatal("fetching -> completed skips merging")
	}
	if !r.transition(job.ID, constants.JobStatusMerging) {
		t.Fatal("fetching -> merging should be allowed")
	}
	if !r.transition(job.ID, constants.JobStatusCompleted) {
		t.Fatal("merging -> completed should be allowed")
	}

	// terminal jobs never move again
	if r.transition(job.ID, constants.JobStatusCancelled) {
		t.Fatal("completed -> cancelled must be rejected")
	}

	snap, _ := r.Snapshot(job.ID)
	if snap.FinishedAt.IsZero() {
		t.Error("expected FinishedAt on terminal transition")
	}
}

func TestRegistry_RequestCancelPendingJob(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)

	wasPending, err := r.RequestCancel(job.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if !wasPending {
		t.Error("expected wasPending for a queued job")
	}

	_, err = r.RequestCancel(uuid.New())
	if common.KindOf(err) != common.KindNotFound {
		t.Errorf("unknown job kind = %q", common.KindOf(err))
	}
}

func TestRegistry_RequestCancelRunningJobFiresBoundCancel(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)
	r.transition(job.ID, constants.JobStatusFetching)

	ctx, cancel := context.WithCancel(context.Background())
	if already := r.bindCancel(job.ID, cancel); already {
		t.Fatal("no cancel was requested yet")
	}

	wasPending, err := r.RequestCancel(job.ID)
	if err != nil || wasPending {
		t.Fatalf("cancel: wasPending=%v err=%v", wasPending, err)
	}
	select {
	case <-ctx.Done():
	case <-time.After(time.Second):
		t.Fatal("expected the bound cancel func to fire")
	}
}

func TestRegistry_BindCancelAfterRequestReportsCancelled(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)

	if _, err := r.RequestCancel(job.ID); err != nil {
		t.Fatal(err)
	}
	_, cancel := context.WithCancel(context.Background())
	defer cancel()
	if already := r.bindCancel(job.ID, cancel); !already {
		t.Fatal("expected bindCancel to report the earlier cancel request")
	}
}

func TestRegistry_RequestCancelTerminalIsIdempotent(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)
	r.transition(job.ID, constants.JobStatusCancelled)

	for i := 0; i < 2; i++ {
		wasPending, err := r.RequestCancel(job.ID)
		if err != nil || wasPending {
			t.Fatalf("terminal cancel #%d: wasPending=%v err=%v", i+1, wasPending, err)
		}
	}
	snap, _ := r.Snapshot(job.ID)
	if snap.Status != constants.JobStatusCancelled {
		t.Errorf("status = %q", snap.Status)
	}
}

func TestRegistry_PruneTerminal(t *testing.T) {
	r := NewRegistry()

	old := newJob()
	r.Create(old)
	r.transition(old.ID, constants.JobStatusCancelled)
	r.update(old.ID, func(j *Job) { j.FinishedAt = time.Now().Add(-2 * time.Hour) })

	fresh := newJob()
	r.Create(fresh)
	r.transition(fresh.ID, constants.JobStatusCancelled)

	running := newJob()
	r.Create(running)
	r.transition(running.ID, constants.JobStatusFetching)

	pruned := r.PruneTerminal(time.Now().Add(-time.Hour))
	if len(pruned) != 1 || pruned[0].ID != old.ID {
		t.Fatalf("pruned = %+v", pruned)
	}
	if _, err := r.Snapshot(old.ID); err == nil {
		t.Error("expected pruned job to be gone")
	}
	if _, err := r.Snapshot(fresh.ID); err != nil {
		t.Error("fresh terminal job must survive")
	}
	if _, err := r.Snapshot(running.ID); err != nil {
		t.Error("running job must survive regardless of age")
	}
}

func TestRegistry_ConcurrentReadersAndWriter(t *testing.T) {
	r := NewRegistry()
	job := newJob()
	r.Create(job)

	var wg sync.WaitGroup
	stop := make(chan struct{})
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					_, _ = r.Snapshot(job.ID)
					_ = r.Snapshots()
				}
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		r.update(job.ID, func(j *Job) { j.Title = "t" })
	}
	close(stop)
	wg.Wait()
}
