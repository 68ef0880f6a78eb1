package repository

import (
	"context"
	"log/slog"
	"time"

	"mediafetch/gen/ent"
	"mediafetch/gen/ent/fetchjob"
	"mediafetch/internal/core"
)

// JobRepository persists terminal job records.
type JobRepository interface {
	SaveJob(ctx context.Context, snap core.Snapshot) error
	ListJobs(ctx context.Context, from, to *time.Time) ([]*ent.FetchJob, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}

type jobRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewJobRepository(entc *ent.Client, log *slog.Logger) JobRepository {
	if log == nil {
		log = slog.Default()
	}
	return &jobRepo{ent: entc, log: log}
}

// SaveJob upserts the archived record for a job; jobs are archived exactly
// once, on reaching a terminal state, but retries make this idempotent.
func (r *jobRepo) SaveJob(ctx context.Context, snap core.Snapshot) error {
	create := r.ent.FetchJob.
		Create().
		SetID(snap.ID).
		SetURL(snap.URL).
		SetPlatform(string(snap.Platform)).
		SetStatus(string(snap.Status)).
		SetResultBytes(snap.ResultSize).
		SetVideoDone(snap.Progress.VideoDone).
		SetAudioDone(snap.Progress.AudioDone).
		SetMergeDone(snap.Progress.MergeDone).
		SetCreatedAt(snap.CreatedAt)
	if snap.Title != "" {
		create.SetTitle(snap.Title)
	}
	if snap.ErrKind != "" {
		create.SetErrorKind(string(snap.ErrKind))
	}
	if snap.ErrMessage != "" {
		create.SetErrorMessage(snap.ErrMessage)
	}
	if snap.ResultPath != "" {
		create.SetResultPath(snap.ResultPath)
	}
	if !snap.FinishedAt.IsZero() {
		create.SetFinishedAt(snap.FinishedAt)
	}

	err := create.
		OnConflictColumns(fetchjob.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		r.log.Error("fetch_job archive failed", "job_id", snap.ID, "err", err)
		return err
	}
	r.log.Info("fetch_job archived", "job_id", snap.ID, "status", snap.Status)
	return nil
}

// ListJobs returns archived jobs in the optional window, newest first.
func (r *jobRepo) ListJobs(ctx context.Context, from, to *time.Time) ([]*ent.FetchJob, error) {
	q := r.ent.FetchJob.Query()
	if from != nil {
		q = q.Where(fetchjob.CreatedAtGTE(*from))
	}
	if to != nil {
		q = q.Where(fetchjob.CreatedAtLTE(*to))
	}
	return q.Order(ent.Desc(fetchjob.FieldCreatedAt)).All(ctx)
}

// DeleteOlderThan drops archived rows whose jobs finished before the cutoff.
func (r *jobRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	n, err := r.ent.FetchJob.
		Delete().
		Where(fetchjob.FinishedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		r.log.Error("fetch_job retention delete failed", "err", err)
		return 0, err
	}
	if n > 0 {
		r.log.Info("fetch_job rows retired", "count", n)
	}
	return n, nil
}
