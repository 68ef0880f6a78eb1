// Package core owns the job state machine and sequences fetch, merge and
// publish around the external tools.
package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/common"
	"mediafetch/internal/fetch"
	"mediafetch/internal/merge"
	"mediafetch/internal/workspace"
)

// StreamFetcher acquires single tracks and probes metadata. Satisfied by
// *fetch.Fetcher; faked in tests.
type StreamFetcher interface {
	Fetch(ctx context.Context, req fetch.Request) error
	Probe(ctx context.Context, url string, platform constants.Platform, cookiePath string, timeout time.Duration) (*fetch.Metadata, error)
}

// Merger multiplexes the two fetched tracks. Satisfied by *merge.Executor.
type Merger interface {
	Merge(ctx context.Context, videoPath, audioPath, outPath string) (merge.Result, error)
}

// Enqueuer hands accepted jobs to the worker pool.
type Enqueuer interface {
	Enqueue(ctx context.Context, jobID uuid.UUID) error
}

// Archiver persists terminal job records. Nil-safe: archival is best effort
// and never blocks the pipeline.
type Archiver interface {
	SaveJob(ctx context.Context, snap Snapshot) error
}

// Orchestrator owns job lifecycles: submission, scheduling of the two
// concurrent stream tasks, the fetch→merge→publish sequence, retry policy,
// and guaranteed workspace reclamation on every exit path.
type Orchestrator struct {
	registry   *Registry
	workspaces *workspace.Manager
	fetcher    StreamFetcher
	merger     Merger
	archiver   Archiver
	queue      Enqueuer
	logger     *slog.Logger

	downloadDir   string
	retryAttempts int
	backoffBase   time.Duration
	probeTimeout  time.Duration
}

type OrchestratorConfig struct {
	DownloadDir   string
	RetryAttempts int
	BackoffBase   time.Duration
	ProbeTimeout  time.Duration
}

func NewOrchestrator(
	registry *Registry,
	workspaces *workspace.Manager,
	fetcher StreamFetcher,
	merger Merger,
	archiver Archiver,
	cfg OrchestratorConfig,
	logger *slog.Logger,
) *Orchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.RetryAttempts <= 0 {
		cfg.RetryAttempts = 3
	}
	if cfg.BackoffBase <= 0 {
		cfg.BackoffBase = 2 * time.Second
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Minute
	}
	return &Orchestrator{
		registry:      registry,
		workspaces:    workspaces,
		fetcher:       fetcher,
		merger:        merger,
		archiver:      archiver,
		logger:        logger,
		downloadDir:   cfg.DownloadDir,
		retryAttempts: cfg.RetryAttempts,
		backoffBase:   cfg.BackoffBase,
		probeTimeout:  cfg.ProbeTimeout,
	}
}

// SetQueue wires the worker pool in after construction; the pool itself
// needs the orchestrator to run jobs.
func (o *Orchestrator) SetQueue(q Enqueuer) {
	o.queue = q
}

// SubmitRequest is the boundary-layer input for a new job.
type SubmitRequest struct {
	URL           string
	Platform      string // optional; auto-detected when empty or "generic"
	CookieBlob    []byte
	VideoFormatID string
	AudioFormatID string
}

// Submit validates the request, registers a Pending job and enqueues it.
func (o *Orchestrator) Submit(ctx context.Context, req SubmitRequest) (uuid.UUID, error) {
	u, err := url.Parse(req.URL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return uuid.Nil, common.Ef(common.KindInvalidInput, nil, "malformed URL %q", req.URL)
	}

	platform := constants.DetectPlatform(req.URL)
	if req.Platform != "" && req.Platform != string(constants.PlatformGeneric) {
		if !constants.ValidPlatform(req.Platform) {
			return uuid.Nil, common.Ef(common.KindInvalidInput, nil, "unknown platform %q", req.Platform)
		}
		platform = constants.Platform(req.Platform)
		if !constants.MatchesPlatform(req.URL, platform) {
			return uuid.Nil, common.Ef(common.KindInvalidInput, nil, "URL does not match platform %q", req.Platform)
		}
	}

	job := &Job{
		ID:            uuid.New(),
		URL:           req.URL,
		Platform:      platform,
		CookieBlob:    req.CookieBlob,
		VideoFormatID: req.VideoFormatID,
		AudioFormatID: req.AudioFormatID,
	}
	o.registry.Create(job)
	o.logger.Info("job submitted", "job_id", job.ID, "url", req.URL, "platform", platform)

	if o.queue != nil {
		if err := o.queue.Enqueue(ctx, job.ID); err != nil {
			o.finalize(job.ID, constants.JobStatusFailed, common.E(common.KindInternal, "enqueue failed", err))
			return job.ID, common.E(common.KindInternal, "enqueue failed", err)
		}
	}
	return job.ID, nil
}

// Status returns the current snapshot for a job.
func (o *Orchestrator) Status(id uuid.UUID) (Snapshot, error) {
	return o.registry.Snapshot(id)
}

// Result returns the artifact path, only once the job is Completed.
func (o *Orchestrator) Result(id uuid.UUID) (string, error) {
	snap, err := o.registry.Snapshot(id)
	if err != nil {
		return "", err
	}
	if snap.Status != constants.JobStatusCompleted {
		return "", common.Ef(common.KindNotReady, nil, "job %s is %s", id, snap.Status)
	}
	return snap.ResultPath, nil
}

// Cancel moves a non-terminal job toward Cancelled. For queued jobs the
// transition is applied here; for running jobs the cancel signal propagates
// to the owning worker and its tool subprocesses. Idempotent on terminal
// jobs.
func (o *Orchestrator) Cancel(id uuid.UUID) error {
	wasPending, err := o.registry.RequestCancel(id)
	if err != nil {
		return err
	}
	if wasPending {
		o.finalize(id, constants.JobStatusCancelled, nil)
	}
	return nil
}

// ListFormats probes a URL without creating a job.
func (o *Orchestrator) ListFormats(ctx context.Context, rawURL string) (*fetch.Metadata, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, common.Ef(common.KindInvalidInput, nil, "malformed URL %q", rawURL)
	}
	return o.fetcher.Probe(ctx, rawURL, constants.DetectPlatform(rawURL), "", o.probeTimeout)
}

// Process runs one job end to end. It is invoked by exactly one worker per
// job, which makes that worker the sole writer of the job's state.
func (o *Orchestrator) Process(ctx context.Context, jobID uuid.UUID) error {
	snap, err := o.registry.Snapshot(jobID)
	if err != nil {
		return err
	}
	if snap.Status != constants.JobStatusPending {
		// Cancelled (or otherwise finalized) while queued; nothing to run.
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if o.registry.bindCancel(jobID, cancel) {
		o.finalize(jobID, constants.JobStatusCancelled, nil)
		return nil
	}

	// Workspace reclamation is guaranteed on every exit path; the published
	// artifact lives outside the workspace by the time this runs.
	defer func() {
		if err := o.workspaces.Reclaim(jobID); err != nil {
			o.logger.Error("workspace reclaim failed", "job_id", jobID, "error", err)
		}
	}()

	err = o.run(ctx, jobID, snap)
	switch {
	case err == nil:
		o.finalize(jobID, constants.JobStatusCompleted, nil)
		return nil
	case errors.Is(err, context.Canceled):
		o.finalize(jobID, constants.JobStatusCancelled, nil)
		return nil
	default:
		o.finalize(jobID, constants.JobStatusFailed, err)
		return err
	}
}

// run performs fetch→merge→publish, leaving state transitions and terminal
// bookkeeping to Process.
func (o *Orchestrator) run(ctx context.Context, jobID uuid.UUID, snap Snapshot) error {
	dir, err := o.workspaces.Allocate(jobID)
	if err != nil {
		return common.E(common.KindInternal, "workspace allocation failed", err)
	}

	cookieBlob, videoFormat, audioFormat := o.registry.inputs(jobID)
	cookiePath := ""
	if len(cookieBlob) > 0 {
		cookiePath, err = o.workspaces.WriteCookieFile(jobID, cookieBlob)
		if err != nil {
			return common.E(common.KindInternal, "cookie staging failed", err)
		}
	}

	if !o.registry.transition(jobID, constants.JobStatusFetching) {
		return context.Canceled
	}

	// Probe resolves the display title for filename shaping. Authentication
	// and availability failures are definitive; transient or tool noise only
	// costs us the nicer filename.
	md, probeErr := o.fetcher.Probe(ctx, snap.URL, snap.Platform, cookiePath, o.probeTimeout)
	if probeErr != nil {
		if ctx.Err() != nil {
			return context.Canceled
		}
		switch common.KindOf(probeErr) {
		case common.KindAuthRequired, common.KindNotFound:
			return probeErr
		}
		o.logger.Warn("probe failed, continuing without metadata", "job_id", jobID, "error", probeErr)
	} else {
		o.registry.update(jobID, func(j *Job) { j.Title = md.Title })
	}

	videoPath, audioPath, err := o.fetchTracks(ctx, jobID, snap, dir, cookiePath, videoFormat, audioFormat)
	if err != nil {
		return err
	}

	if !o.registry.transition(jobID, constants.JobStatusMerging) {
		return context.Canceled
	}

	mergedPath := filepath.Join(dir, "merged.mp4")
	res, err := o.merger.Merge(ctx, videoPath, audioPath, mergedPath)
	if err != nil {
		if ctx.Err() != nil {
			return context.Canceled
		}
		return err
	}
	o.registry.update(jobID, func(j *Job) { j.Progress.MergeDone = true })

	finalPath, err := o.publish(res.Path, publishedFilename(md, snap.Platform, jobID.String()))
	if err != nil {
		return common.E(common.KindInternal, "publish failed", err)
	}
	o.registry.update(jobID, func(j *Job) {
		j.ResultPath = finalPath
		j.ResultSize = res.Bytes
	})
	o.logger.Info("job artifact published", "job_id", jobID, "path", finalPath, "bytes", res.Bytes)
	return nil
}

// fetchTracks dispatches the video and audio stream tasks concurrently and
// joins before returning. The first definitive failure cancels the sibling;
// there is no point merging a partial pair.
func (o *Orchestrator) fetchTracks(ctx context.Context, jobID uuid.UUID, snap Snapshot, dir, cookiePath, videoFormat, audioFormat string) (videoPath, audioPath string, err error) {
	fetchCtx, cancelFetch := context.WithCancel(ctx)
	defer cancelFetch()

	type outcome struct {
		track constants.TrackKind
		err   error
	}
	results := make(chan outcome, 2)

	paths := map[constants.TrackKind]string{
		constants.TrackVideo: filepath.Join(dir, constants.TrackVideo.Filename()),
		constants.TrackAudio: filepath.Join(dir, constants.TrackAudio.Filename()),
	}
	formatIDs := map[constants.TrackKind]string{
		constants.TrackVideo: videoFormat,
		constants.TrackAudio: audioFormat,
	}

	for _, kind := range []constants.TrackKind{constants.TrackVideo, constants.TrackAudio} {
		kind := kind
		o.registry.update(jobID, func(j *Job) {
			j.Tasks[kind] = &StreamTask{Track: kind, DestPath: paths[kind]}
		})
		go func() {
			err := o.fetchWithRetry(fetchCtx, jobID, fetch.Request{
				URL:        snap.URL,
				Platform:   snap.Platform,
				Track:      kind,
				FormatID:   formatIDs[kind],
				CookiePath: cookiePath,
				DestPath:   paths[kind],
			})
			results <- outcome{track: kind, err: err}
		}()
	}

	var firstErr error
	for i := 0; i < 2; i++ {
		out := <-results
		if out.err != nil {
			if firstErr == nil && !errors.Is(out.err, context.Canceled) {
				firstErr = out.err
			}
			cancelFetch() // stop the sibling, the pair is already broken
			continue
		}
		o.registry.update(jobID, func(j *Job) {
			switch out.track {
			case constants.TrackVideo:
				j.Progress.VideoDone = true
			case constants.TrackAudio:
				j.Progress.AudioDone = true
			}
		})
	}

	if ctx.Err() != nil {
		return "", "", context.Canceled
	}
	if firstErr != nil {
		return "", "", firstErr
	}
	return paths[constants.TrackVideo], paths[constants.TrackAudio], nil
}

// fetchWithRetry applies the per-task retry budget: up to the configured
// attempts with exponential backoff, and only transient network failures
// are retried.
func (o *Orchestrator) fetchWithRetry(ctx context.Context, jobID uuid.UUID, req fetch.Request) error {
	var lastErr error
	for attempt := 1; attempt <= o.retryAttempts; attempt++ {
		o.registry.update(jobID, func(j *Job) {
			if t := j.Tasks[req.Track]; t != nil {
				t.Attempts = attempt
			}
		})

		lastErr = o.fetcher.Fetch(ctx, req)
		if lastErr == nil {
			return nil
		}
		o.registry.update(jobID, func(j *Job) {
			if t := j.Tasks[req.Track]; t != nil {
				t.LastError = lastErr.Error()
			}
		})
		if ctx.Err() != nil {
			return context.Canceled
		}
		if !common.KindOf(lastErr).Retryable() || attempt == o.retryAttempts {
			return lastErr
		}

		backoff := o.backoffBase << (attempt - 1)
		o.logger.Warn("fetch attempt failed, backing off",
			"job_id", jobID, "track", req.Track, "attempt", attempt, "backoff", backoff, "error", lastErr)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return context.Canceled
		}
	}
	return lastErr
}

// publish moves the merged artifact into the durable download directory,
// suffixing a timestamp when the name is already taken.
func (o *Orchestrator) publish(srcPath, name string) (string, error) {
	if err := os.MkdirAll(o.downloadDir, 0o755); err != nil {
		return "", err
	}
	ext := filepath.Ext(srcPath)
	dest := filepath.Join(o.downloadDir, name+ext)
	if _, err := os.Stat(dest); err == nil {
		dest = filepath.Join(o.downloadDir, fmt.Sprintf("%s_%d%s", name, time.Now().Unix(), ext))
	}
	if err := os.Rename(srcPath, dest); err != nil {
		// Scratch and download roots can live on different filesystems.
		if copyErr := copyFile(srcPath, dest); copyErr != nil {
			return "", copyErr
		}
		_ = os.Remove(srcPath)
	}
	return dest, nil
}

// finalize applies the terminal transition, records error detail and
// archives the job record.
func (o *Orchestrator) finalize(jobID uuid.UUID, status constants.JobStatus, cause error) {
	if !o.registry.transition(jobID, status) {
		return
	}
	if cause != nil {
		o.registry.update(jobID, func(j *Job) {
			j.ErrKind = common.KindOf(cause)
			j.ErrMessage = common.MessageOf(cause)
		})
	}
	snap, err := o.registry.Snapshot(jobID)
	if err != nil {
		return
	}
	o.logger.Info("job finalized", "job_id", jobID, "status", status, "error_kind", snap.ErrKind)

	if o.archiver != nil {
		archiveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := o.archiver.SaveJob(archiveCtx, snap); err != nil {
			o.logger.Error("job archive failed", "job_id", jobID, "error", err)
		}
	}
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		_ = os.Remove(dst)
		return err
	}
	return out.Close()
}
