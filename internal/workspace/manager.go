// Package workspace owns the per-job scratch directories. A workspace is
// never shared between jobs and its lifetime is a strict subset of the
// owning job's lifetime.
package workspace

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Manager allocates and reclaims job workspaces under a single scratch root.
type Manager struct {
	root   string
	logger *slog.Logger
}

func NewManager(root string, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{root: root, logger: logger}
}

// Path returns the directory for a job without creating it. Deriving the
// name from the job UUID keeps concurrent allocations collision-free.
func (m *Manager) Path(jobID uuid.UUID) string {
	return filepath.Join(m.root, jobID.String())
}

// Allocate creates an empty, exclusively-owned directory for the job.
func (m *Manager) Allocate(jobID uuid.UUID) (string, error) {
	dir := m.Path(jobID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create workspace %s: %w", dir, err)
	}
	m.logger.Debug("workspace allocated", "job_id", jobID, "dir", dir)
	return dir, nil
}

// Reclaim removes the job directory and everything beneath it. Idempotent:
// reclaiming an absent workspace is a no-op, so it is safe on every exit
// path and safe to race with a cancellation signal.
func (m *Manager) Reclaim(jobID uuid.UUID) error {
	dir := m.Path(jobID)
	if err := os.RemoveAll(dir); err != nil {
		m.logger.Error("workspace reclaim failed", "job_id", jobID, "dir", dir, "error", err)
		return fmt.Errorf("reclaim workspace %s: %w", dir, err)
	}
	m.logger.Debug("workspace reclaimed", "job_id", jobID, "dir", dir)
	return nil
}

// WriteCookieFile persists a submitted cookie blob inside the job workspace
// and returns its path. Cookies never outlive the workspace.
func (m *Manager) WriteCookieFile(jobID uuid.UUID, blob []byte) (string, error) {
	if len(blob) == 0 {
		return "", nil
	}
	path := filepath.Join(m.Path(jobID), "cookies.txt")
	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return "", fmt.Errorf("write cookie file: %w", err)
	}
	return path, nil
}
