package core

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

// ArchivePruner retires old rows from the durable job archive. Satisfied by
// the job repository; nil disables archive pruning.
type ArchivePruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

// Janitor reclaims disk space: published artifacts past the retention
// window are deleted and their terminal job records dropped from the
// registry. Jobs stay queryable for the whole retention window. The durable
// archive is kept much longer and pruned on its own cutoff.
type Janitor struct {
	registry         *Registry
	archive          ArchivePruner
	downloadDir      string
	retention        time.Duration
	archiveRetention time.Duration
	sweep            time.Duration
	logger           *slog.Logger
}

func NewJanitor(registry *Registry, archive ArchivePruner, downloadDir string, retention, archiveRetention, sweep time.Duration, logger *slog.Logger) *Janitor {
	if retention <= 0 {
		retention = time.Hour
	}
	if archiveRetention <= 0 {
		archiveRetention = 30 * 24 * time.Hour
	}
	if sweep <= 0 {
		sweep = 5 * time.Minute
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Janitor{
		registry:         registry,
		archive:          archive,
		downloadDir:      downloadDir,
		retention:        retention,
		archiveRetention: archiveRetention,
		sweep:            sweep,
		logger:           logger,
	}
}

// Run sweeps until the context is cancelled.
func (j *Janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.sweep)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.SweepOnce()
		}
	}
}

// SweepOnce performs one retention pass.
func (j *Janitor) SweepOnce() {
	cutoff := time.Now().Add(-j.retention)

	for _, snap := range j.registry.PruneTerminal(cutoff) {
		j.logger.Info("retired job record", "job_id", snap.ID, "status", snap.Status)
	}

	if j.archive != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if n, err := j.archive.DeleteOlderThan(ctx, time.Now().Add(-j.archiveRetention)); err != nil {
			j.logger.Error("archive prune failed", "error", err)
		} else if n > 0 {
			j.logger.Info("archive rows pruned", "count", n)
		}
		cancel()
	}

	entries, err := os.ReadDir(j.downloadDir)
	if err != nil {
		if !os.IsNotExist(err) {
			j.logger.Error("retention sweep failed", "dir", j.downloadDir, "error", err)
		}
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		path := filepath.Join(j.downloadDir, entry.Name())
		if err := os.Remove(path); err != nil {
			j.logger.Error("artifact removal failed", "path", path, "error", err)
			continue
		}
		j.logger.Info("expired artifact removed", "path", path, "age", time.Since(info.ModTime()).Round(time.Second))
	}
}
