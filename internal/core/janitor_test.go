package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mediafetch/constants"
)

func TestSweepOnce_RemovesExpiredArtifactsAndRecords(t *testing.T) {
	registry := NewRegistry()
	downloadDir := t.TempDir()

	expired := newJob()
	registry.Create(expired)
	registry.transition(expired.ID, constants.JobStatusCancelled)
	registry.update(expired.ID, func(j *Job) { j.FinishedAt = time.Now().Add(-2 * time.Hour) })

	recent := newJob()
	registry.Create(recent)
	registry.transition(recent.ID, constants.JobStatusCancelled)

	oldFile := filepath.Join(downloadDir, "old.mp4")
	newFile := filepath.Join(downloadDir, "new.mp4")
	for _, p := range []string{oldFile, newFile} {
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	stale := time.Now().Add(-2 * time.Hour)
	if err := os.Chtimes(oldFile, stale, stale); err != nil {
		t.Fatal(err)
	}

	pruner := &fakeArchivePruner{}
	j := NewJanitor(registry, pruner, downloadDir, time.Hour, 30*24*time.Hour, time.Minute, nil)
	j.SweepOnce()

	if _, err := os.Stat(oldFile); !os.IsNotExist(err) {
		t.Error("expected expired artifact to be removed")
	}
	if _, err := os.Stat(newFile); err != nil {
		t.Error("artifact inside the retention window must survive")
	}
	if _, err := registry.Snapshot(expired.ID); err == nil {
		t.Error("expected expired job record to be retired")
	}
	if _, err := registry.Snapshot(recent.ID); err != nil {
		t.Error("recent terminal job must stay queryable")
	}
	if pruner.calls != 1 {
		t.Errorf("archive pruner calls = %d, want 1", pruner.calls)
	}
	if age := time.Since(pruner.lastCutoff); age < 29*24*time.Hour {
		t.Errorf("archive cutoff %v is too recent", pruner.lastCutoff)
	}
}

type fakeArchivePruner struct {
	calls      int
	lastCutoff time.Time
}

func (p *fakeArchivePruner) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	p.calls++
	p.lastCutoff = cutoff
	return 0, nil
}

func TestSweepOnce_MissingDownloadDirIsHarmless(t *testing.T) {
	j := NewJanitor(NewRegistry(), nil, filepath.Join(t.TempDir(), "never-created"), time.Hour, 0, time.Minute, nil)
	j.SweepOnce() // must not panic or error out
}
