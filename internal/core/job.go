package core

import (
	"context"
	"time"

	"github.com/google/uuid"

	"mediafetch/constants"
	"mediafetch/internal/common"
)

// Progress tracks the pipeline markers exposed through Status.
type Progress struct {
	VideoDone bool
	AudioDone bool
	MergeDone bool
}

// StreamTask is one track's fetch bookkeeping within a job.
type StreamTask struct {
	Track     constants.TrackKind
	DestPath  string
	Attempts  int
	LastError string
}

// Job is the unit of work. It is owned exclusively by the orchestrator; the
// worker processing it is the only writer once it leaves Pending.
type Job struct {
	ID            uuid.UUID
	URL           string
	Platform      constants.Platform
	CookieBlob    []byte
	VideoFormatID string
	AudioFormatID string

	Status     constants.JobStatus
	Progress   Progress
	Tasks      map[constants.TrackKind]*StreamTask
	Title      string
	ErrKind    common.Kind
	ErrMessage string
	ResultPath string
	ResultSize int64
	CreatedAt  time.Time
	FinishedAt time.Time

	// cancellation plumbing, owned by the registry
	cancelRequested bool
	cancel          context.CancelFunc
}

// Snapshot is an immutable copy of a job's observable state.
type Snapshot struct {
	ID         uuid.UUID
	URL        string
	Platform   constants.Platform
	Status     constants.JobStatus
	Progress   Progress
	Title      string
	ErrKind    common.Kind
	ErrMessage string
	ResultPath string
	ResultSize int64
	CreatedAt  time.Time
	FinishedAt time.Time
}

func (j *Job) snapshot() Snapshot {
	return Snapshot{
		ID:         j.ID,
		URL:        j.URL,
		Platform:   j.Platform,
		Status:     j.Status,
		Progress:   j.Progress,
		Title:      j.Title,
		ErrKind:    j.ErrKind,
		ErrMessage: j.ErrMessage,
		ResultPath: j.ResultPath,
		ResultSize: j.ResultSize,
		CreatedAt:  j.CreatedAt,
		FinishedAt: j.FinishedAt,
	}
}
