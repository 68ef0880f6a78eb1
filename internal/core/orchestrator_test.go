package core

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/common"
	"mediafetch/internal/fetch"
	"mediafetch/internal/merge"
	"mediafetch/internal/workspace"
)

// fakeFetcher scripts per-track fetch outcomes. A nil scripted error writes
// the destination file; a track marked waiting blocks until its context is
// cancelled, standing in for a long tool run.
type fakeFetcher struct {
	mu       sync.Mutex
	script   map[constants.TrackKind][]error
	waiting  map[constants.TrackKind]bool
	calls    map[constants.TrackKind]int
	probeMD  *fetch.Metadata
	probeErr error
}

func (f *fakeFetcher) Fetch(ctx context.Context, req fetch.Request) error {
	f.mu.Lock()
	if f.calls == nil {
		f.calls = make(map[constants.TrackKind]int)
	}
	f.calls[req.Track]++
	var next error
	if s := f.script[req.Track]; len(s) > 0 {
		next = s[0]
		f.script[req.Track] = s[1:]
	}
	wait := f.waiting[req.Track]
	f.mu.Unlock()

	if wait {
		<-ctx.Done()
		return ctx.Err()
	}
	if next != nil {
		return next
	}
	return os.WriteFile(req.DestPath, []byte(req.Track), 0o644)
}

func (f *fakeFetcher) Probe(ctx context.Context, url string, platform constants.Platform, cookiePath string, timeout time.Duration) (*fetch.Metadata, error) {
	return f.probeMD, f.probeErr
}

func (f *fakeFetcher) fetchCalls(kind constants.TrackKind) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[kind]
}

// fakeMerger writes a merged artifact or fails.
type fakeMerger struct {
	mu    sync.Mutex
	err   error
	calls int
}

func (m *fakeMerger) Merge(ctx context.Context, videoPath, audioPath, outPath string) (merge.Result, error) {
	m.mu.Lock()
	m.calls++
	m.mu.Unlock()
	if m.err != nil {
		return merge.Result{}, m.err
	}
	content := []byte("merged")
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return merge.Result{}, err
	}
	return merge.Result{Path: outPath, Bytes: int64(len(content)), Validated: true}, nil
}

func (m *fakeMerger) mergeCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type harness struct {
	orch        *Orchestrator
	registry    *Registry
	fetcher     *fakeFetcher
	merger      *fakeMerger
	scratchRoot string
	downloadDir string
}

func newHarness(t *testing.T, fetcher *fakeFetcher, merger *fakeMerger) *harness {
	t.Helper()
	scratch := t.TempDir()
	download := t.TempDir()
	registry := NewRegistry()
	orch := NewOrchestrator(registry, workspace.NewManager(scratch, nil), fetcher, merger, nil, OrchestratorConfig{
		DownloadDir:   download,
		RetryAttempts: 3,
		BackoffBase:   time.Millisecond,
		ProbeTimeout:  time.Second,
	}, nil)
	return &harness{
		orch:        orch,
		registry:    registry,
		fetcher:     fetcher,
		merger:      merger,
		scratchRoot: scratch,
		downloadDir: download,
	}
}

func (h *harness) submit(t *testing.T, req SubmitRequest) uuid.UUID {
	t.Helper()
	id, err := h.orch.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	return id
}

func (h *harness) assertWorkspaceGone(t *testing.T, id uuid.UUID) {
	t.Helper()
	if _, err := os.Stat(filepath.Join(h.scratchRoot, id.String())); !os.IsNotExist(err) {
		t.Error("expected workspace to be reclaimed")
	}
}

func TestProcess_HappyPath(t *testing.T) {
	fetcher := &fakeFetcher{probeMD: &fetch.Metadata{
		Title: "Pilot", Series: "Some Show", SeasonNumber: 1, EpisodeNumber: 2,
	}}
	merger := &fakeMerger{}
	h := newHarness(t, fetcher, merger)

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err := h.orch.Process(context.Background(), id); err != nil {
		t.Fatalf("process: %v", err)
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want COMPLETED: %+v", snap.Status, snap)
	}
	if !snap.Progress.VideoDone || !snap.Progress.AudioDone || !snap.Progress.MergeDone {
		t.Errorf("progress = %+v", snap.Progress)
	}
	if snap.Title != "Pilot" {
		t.Errorf("title = %q", snap.Title)
	}

	wantName := "Some Show - S01E02 - Pilot [YouTube] WEB-DL.mp4"
	if filepath.Base(snap.ResultPath) != wantName {
		t.Errorf("artifact = %q, want %q", filepath.Base(snap.ResultPath), wantName)
	}
	if _, err := os.Stat(snap.ResultPath); err != nil {
		t.Errorf("artifact missing: %v", err)
	}
	if snap.ResultSize == 0 {
		t.Error("expected result size")
	}

	path, err := h.orch.Result(id)
	if err != nil || path != snap.ResultPath {
		t.Errorf("Result = %q, %v", path, err)
	}
	h.assertWorkspaceGone(t, id)
}

func TestProcess_DefinitiveAudioFailureCancelsSibling(t *testing.T) {
	fetcher := &fakeFetcher{
		script:  map[constants.TrackKind][]error{constants.TrackAudio: {common.E(common.KindNotFound, "no audio-only stream", nil)}},
		waiting: map[constants.TrackKind]bool{constants.TrackVideo: true},
	}
	merger := &fakeMerger{}
	h := newHarness(t, fetcher, merger)

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err := h.orch.Process(context.Background(), id); err == nil {
		t.Fatal("expected failure")
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusFailed {
		t.Fatalf("status = %q, want FAILED", snap.Status)
	}
	if snap.ErrKind != common.KindNotFound {
		t.Errorf("error kind = %q, want NOT_FOUND", snap.ErrKind)
	}
	if merger.mergeCalls() != 0 {
		t.Error("merge must not run after a broken fetch pair")
	}
	h.assertWorkspaceGone(t, id)
}

func TestProcess_AuthFailureIsNotRetried(t *testing.T) {
	fetcher := &fakeFetcher{
		script: map[constants.TrackKind][]error{
			constants.TrackVideo: {common.E(common.KindAuthRequired, "cookies expired", nil)},
		},
	}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.hotstar.com/in/shows/x"})
	_ = h.orch.Process(context.Background(), id)

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusFailed || snap.ErrKind != common.KindAuthRequired {
		t.Fatalf("snap = %+v", snap)
	}
	if got := fetcher.fetchCalls(constants.TrackVideo); got != 1 {
		t.Errorf("video attempts = %d, want 1 (definitive failures are not retried)", got)
	}
}

func TestProcess_TransientFailuresRetryWithinBudget(t *testing.T) {
	transient := func() error { return common.E(common.KindNetworkTransient, "connection reset", nil) }
	fetcher := &fakeFetcher{
		script: map[constants.TrackKind][]error{
			constants.TrackVideo: {transient(), transient(), nil}, // succeeds on the last allowed attempt
		},
	}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err := h.orch.Process(context.Background(), id); err != nil {
		t.Fatalf("process: %v", err)
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want COMPLETED", snap.Status)
	}
	if got := fetcher.fetchCalls(constants.TrackVideo); got != 3 {
		t.Errorf("video attempts = %d, want 3", got)
	}
}

func TestProcess_TransientBudgetExhaustionFails(t *testing.T) {
	transient := func() error { return common.E(common.KindNetworkTransient, "timed out", nil) }
	fetcher := &fakeFetcher{
		script: map[constants.TrackKind][]error{
			constants.TrackAudio: {transient(), transient(), transient(), transient()},
		},
	}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	_ = h.orch.Process(context.Background(), id)

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusFailed || snap.ErrKind != common.KindNetworkTransient {
		t.Fatalf("snap = %+v", snap)
	}
	if got := fetcher.fetchCalls(constants.TrackAudio); got != 3 {
		t.Errorf("audio attempts = %d, want exactly the budget of 3", got)
	}
}

func TestProcess_MergeFailure(t *testing.T) {
	fetcher := &fakeFetcher{}
	merger := &fakeMerger{err: common.E(common.KindMergeToolFailure, "mux failed", nil)}
	h := newHarness(t, fetcher, merger)

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	_ = h.orch.Process(context.Background(), id)

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusFailed || snap.ErrKind != common.KindMergeToolFailure {
		t.Fatalf("snap = %+v", snap)
	}
	if snap.ResultPath != "" {
		t.Error("failed job must not expose a result path")
	}
	entries, _ := os.ReadDir(h.downloadDir)
	if len(entries) != 0 {
		t.Errorf("no artifact may be published on merge failure, found %d entries", len(entries))
	}
	h.assertWorkspaceGone(t, id)
}

func TestProcess_ProbeNoiseDoesNotFailTheJob(t *testing.T) {
	fetcher := &fakeFetcher{probeErr: common.E(common.KindToolFailure, "probe flaked", nil)}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err := h.orch.Process(context.Background(), id); err != nil {
		t.Fatalf("process: %v", err)
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusCompleted {
		t.Fatalf("status = %q, want COMPLETED", snap.Status)
	}
	// without metadata the filename falls back to the job id
	if !strings.HasPrefix(filepath.Base(snap.ResultPath), id.String()) {
		t.Errorf("artifact = %q, want job-id fallback", filepath.Base(snap.ResultPath))
	}
}

func TestProcess_ProbeAuthFailureIsDefinitive(t *testing.T) {
	fetcher := &fakeFetcher{probeErr: common.E(common.KindAuthRequired, "login required", nil)}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.hotstar.com/in/shows/x"})
	_ = h.orch.Process(context.Background(), id)

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusFailed || snap.ErrKind != common.KindAuthRequired {
		t.Fatalf("snap = %+v", snap)
	}
	if got := fetcher.fetchCalls(constants.TrackVideo); got != 0 {
		t.Errorf("no track fetch should start after a definitive probe failure, got %d", got)
	}
}

func TestCancel_RunningJob(t *testing.T) {
	fetcher := &fakeFetcher{waiting: map[constants.TrackKind]bool{
		constants.TrackVideo: true,
		constants.TrackAudio: true,
	}}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})

	done := make(chan error, 1)
	go func() { done <- h.orch.Process(context.Background(), id) }()

	// wait for the worker to own the job
	deadline := time.Now().Add(5 * time.Second)
	for {
		snap, _ := h.orch.Status(id)
		if snap.Status == constants.JobStatusFetching {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("job never reached FETCHING")
		}
		time.Sleep(5 * time.Millisecond)
	}

	if err := h.orch.Cancel(id); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if err := <-done; err != nil {
		t.Fatalf("process after cancel: %v", err)
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusCancelled {
		t.Fatalf("status = %q, want CANCELLED", snap.Status)
	}
	h.assertWorkspaceGone(t, id)

	// a second cancel is a no-op
	if err := h.orch.Cancel(id); err != nil {
		t.Errorf("repeat cancel: %v", err)
	}
}

func TestCancel_QueuedJobNeverRuns(t *testing.T) {
	fetcher := &fakeFetcher{}
	h := newHarness(t, fetcher, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})
	if err := h.orch.Cancel(id); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	snap, _ := h.orch.Status(id)
	if snap.Status != constants.JobStatusCancelled {
		t.Fatalf("status = %q, want CANCELLED", snap.Status)
	}

	// the worker eventually dequeues the tombstone and must not run it
	if err := h.orch.Process(context.Background(), id); err != nil {
		t.Fatalf("process: %v", err)
	}
	if got := fetcher.fetchCalls(constants.TrackVideo); got != 0 {
		t.Errorf("cancelled job must not fetch, got %d calls", got)
	}
}

func TestResult_NotReadyBeforeCompletion(t *testing.T) {
	h := newHarness(t, &fakeFetcher{}, &fakeMerger{})
	id := h.submit(t, SubmitRequest{URL: "https://www.youtube.com/watch?v=abc"})

	_, err := h.orch.Result(id)
	if common.KindOf(err) != common.KindNotReady {
		t.Errorf("kind = %q, want NOT_READY", common.KindOf(err))
	}
}

func TestSubmit_Validation(t *testing.T) {
	h := newHarness(t, &fakeFetcher{}, &fakeMerger{})

	cases := []struct {
		name string
		req  SubmitRequest
	}{
		{"empty url", SubmitRequest{URL: ""}},
		{"no scheme", SubmitRequest{URL: "youtube.com/watch?v=abc"}},
		{"bad scheme", SubmitRequest{URL: "ftp://example.org/file"}},
		{"unknown platform", SubmitRequest{URL: "https://youtu.be/abc", Platform: "netflix"}},
		{"platform mismatch", SubmitRequest{URL: "https://youtu.be/abc", Platform: "hotstar"}},
	}
	for _, tc := range cases {
		_, err := h.orch.Submit(context.Background(), tc.req)
		if common.KindOf(err) != common.KindInvalidInput {
			t.Errorf("%s: kind = %q, want INVALID_INPUT", tc.name, common.KindOf(err))
		}
	}
}

func TestSubmit_PlatformDetection(t *testing.T) {
	h := newHarness(t, &fakeFetcher{}, &fakeMerger{})

	id := h.submit(t, SubmitRequest{URL: "https://www.zee5.com/tv-shows/details/x"})
	snap, _ := h.orch.Status(id)
	if snap.Platform != constants.PlatformZee5 {
		t.Errorf("platform = %q, want zee5", snap.Platform)
	}

	id = h.submit(t, SubmitRequest{URL: "https://example.org/clip.mp4"})
	snap, _ = h.orch.Status(id)
	if snap.Platform != constants.PlatformGeneric {
		t.Errorf("platform = %q, want generic", snap.Platform)
	}
}

func TestPublish_CollisionGetsSuffix(t *testing.T) {
	h := newHarness(t, &fakeFetcher{}, &fakeMerger{})

	src1 := filepath.Join(t.TempDir(), "a.mp4")
	src2 := filepath.Join(t.TempDir(), "b.mp4")
	for _, p := range []string{src1, src2} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	first, err := h.orch.publish(src1, "Same Name")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	second, err := h.orch.publish(src2, "Same Name")
	if err != nil {
		t.Fatalf("publish: %v", err)
	}
	if first == second {
		t.Fatalf("collision not resolved: %q", first)
	}
	for _, p := range []string{first, second} {
		if _, err := os.Stat(p); err != nil {
			t.Errorf("published file missing: %v", err)
		}
	}
}

func TestProcess_UnknownJob(t *testing.T) {
	h := newHarness(t, &fakeFetcher{}, &fakeMerger{})
	err := h.orch.Process(context.Background(), uuid.New())
	if common.KindOf(err) != common.KindNotFound {
		t.Errorf("kind = %q, want NOT_FOUND", common.KindOf(err))
	}
}
