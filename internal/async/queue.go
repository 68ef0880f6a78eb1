// Package async runs the bounded worker pool that drains submitted jobs.
package async

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"mediafetch/internal/core"
)

// JobQueue feeds accepted job IDs into a fixed pool of workers. Each worker
// runs one job at a time, which makes it the sole writer of that job's
// state for the duration.
type JobQueue struct {
	orch    *core.Orchestrator
	logger  *slog.Logger
	workers int

	ch   chan uuid.UUID
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*JobQueue)

func WithWorkers(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) Option {
	return func(q *JobQueue) {
		if n > 0 {
			q.ch = make(chan uuid.UUID, n)
		}
	}
}

func NewJobQueue(orch *core.Orchestrator, logger *slog.Logger, opts ...Option) *JobQueue {
	q := &JobQueue{
		orch:    orch,
		logger:  logger,
		workers: 4,
		ch:      make(chan uuid.UUID, 256),
	}
	if q.logger == nil {
		q.logger = slog.Default()
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *JobQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for jobID := range q.ch {
					// Per-step timeouts live inside the fetch and merge
					// components; the job context here is cancellation-only.
					if err := q.orch.Process(context.Background(), jobID); err != nil {
						q.logger.Error("job failed", "worker_id", workerID, "job_id", jobID, "error", err)
					} else {
						q.logger.Info("job processed", "worker_id", workerID, "job_id", jobID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue queues a job for processing. Blocks when the buffer is full,
// applying backpressure to submitters.
func (q *JobQueue) Enqueue(_ context.Context, jobID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "job_id", jobID)
		return nil
	}
	select {
	case q.ch <- jobID:
		q.logger.Info("queued job", "job_id", jobID)
	default:
		q.logger.Warn("queue full, applying backpressure", "job_id", jobID)
		q.ch <- jobID
	}
	return nil
}

// Shutdown stops intake and waits for in-flight jobs, bounded by ctx.
func (q *JobQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
