package workspace

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/google/uuid"
)

func TestAllocate_DistinctPerJob(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	a, err := m.Allocate(uuid.New())
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	b, err := m.Allocate(uuid.New())
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if a == b {
		t.Fatalf("two jobs share a workspace: %s", a)
	}
	for _, dir := range []string{a, b} {
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			t.Fatalf("workspace %s not a directory: %v", dir, err)
		}
	}
}

func TestAllocate_ConcurrentJobsDoNotCollide(t *testing.T) {
	m := NewManager(t.TempDir(), nil)

	const n = 16
	dirs := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dir, err := m.Allocate(uuid.New())
			if err != nil {
				t.Errorf("allocate: %v", err)
				return
			}
			dirs[i] = dir
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool, n)
	for _, dir := range dirs {
		if seen[dir] {
			t.Fatalf("duplicate workspace %s", dir)
		}
		seen[dir] = true
	}
}

func TestReclaim_RemovesEverythingAndIsIdempotent(t *testing.T) {
	m := NewManager(t.TempDir(), nil)
	jobID := uuid.New()

	dir, err := m.Allocate(jobID)
	if err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "video.stream"), []byte("partial"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if err := m.Reclaim(jobID); err != nil {
		t.Fatalf("reclaim: %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatalf("workspace still exists after reclaim")
	}

	// second reclaim of the same job is a no-op
	if err := m.Reclaim(jobID); err != nil {
		t.Fatalf("second reclaim: %v", err)
	}
}

func TestWriteCookieFile(t *testing.T) {
	m := NewManager(t.TempDir(), nil)
	jobID := uuid.New()
	if _, err := m.Allocate(jobID); err != nil {
		t.Fatalf("allocate: %v", err)
	}

	path, err := m.WriteCookieFile(jobID, []byte("# Netscape HTTP Cookie File\n"))
	if err != nil {
		t.Fatalf("write cookie file: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat cookie file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("cookie file mode = %v, want 0600", info.Mode().Perm())
	}

	// empty blob means no file and no path
	path, err = m.WriteCookieFile(jobID, nil)
	if err != nil || path != "" {
		t.Fatalf("empty blob: path=%q err=%v", path, err)
	}
}
