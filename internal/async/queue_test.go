package async

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/core"
	"mediafetch/internal/fetch"
	"mediafetch/internal/merge"
	"mediafetch/internal/workspace"
)

// stubFetcher and stubMerger always succeed; the queue tests care about
// scheduling and shutdown, not pipeline outcomes.
type stubFetcher struct{}

func (stubFetcher) Fetch(ctx context.Context, req fetch.Request) error {
	return os.WriteFile(req.DestPath, []byte(req.Track), 0o644)
}

func (stubFetcher) Probe(ctx context.Context, url string, platform constants.Platform, cookiePath string, timeout time.Duration) (*fetch.Metadata, error) {
	return &fetch.Metadata{Title: "stub"}, nil
}

type stubMerger struct{}

func (stubMerger) Merge(ctx context.Context, videoPath, audioPath, outPath string) (merge.Result, error) {
	if err := os.WriteFile(outPath, []byte("merged"), 0o644); err != nil {
		return merge.Result{}, err
	}
	return merge.Result{Path: outPath, Bytes: 6, Validated: true}, nil
}

func newPipeline(t *testing.T) *core.Orchestrator {
	t.Helper()
	return core.NewOrchestrator(core.NewRegistry(), workspace.NewManager(t.TempDir(), nil), stubFetcher{}, stubMerger{}, nil, core.OrchestratorConfig{
		DownloadDir:   t.TempDir(),
		RetryAttempts: 1,
		BackoffBase:   time.Millisecond,
		ProbeTimeout:  time.Second,
	}, nil)
}

func waitTerminal(t *testing.T, orch *core.Orchestrator, id uuid.UUID) core.Snapshot {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for {
		snap, err := orch.Status(id)
		if err == nil && snap.Status.Terminal() {
			return snap
		}
		if time.Now().After(deadline) {
			t.Fatalf("job %s never reached a terminal state", id)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestJobQueue_ProcessesSubmittedJobs(t *testing.T) {
	orch := newPipeline(t)
	q := NewJobQueue(orch, nil, WithWorkers(2), WithQueueSize(8))
	orch.SetQueue(q)

	var ids []uuid.UUID
	for i := 0; i < 4; i++ {
		id, err := orch.Submit(context.Background(), core.SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
		if err != nil {
			t.Fatalf("submit: %v", err)
		}
		ids = append(ids, id)
	}

	for _, id := range ids {
		snap := waitTerminal(t, orch, id)
		if snap.Status != constants.JobStatusCompleted {
			t.Errorf("job %s = %q, want COMPLETED (%s)", snap.ID, snap.Status, snap.ErrMessage)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	q.Shutdown(ctx)
}

func TestJobQueue_ShutdownIsIdempotentAndStopsIntake(t *testing.T) {
	orch := newPipeline(t)
	q := NewJobQueue(orch, nil, WithWorkers(1), WithQueueSize(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)
	q.Shutdown(ctx) // second call is a no-op

	// enqueue after shutdown is dropped, not a send on a closed channel
	id, err := orch.Submit(context.Background(), core.SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := q.Enqueue(context.Background(), id); err != nil {
		t.Fatalf("enqueue after shutdown: %v", err)
	}
}
