// Package async runs document analyses on a bounded worker pool, for
// batch jobs where documents arrive faster than the extractor can
// process them.
package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/loanguard/loanguard/internal/docprep"
	processor "github.com/loanguard/loanguard/internal/pipeline"
)

// Job is one document to analyze.
type Job struct {
	Document    docprep.Document
	LoanID      string
	SubmittedAt time.Time
	TraceID     string
}

// ResultFunc receives each finished analysis. Called from worker
// goroutines; implementations must be safe for concurrent use.
type ResultFunc func(ctx context.Context, job Job, res *processor.Result, err error)

type AnalysisQueue struct {
	proc    *processor.Processor
	onDone  ResultFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*AnalysisQueue)

func WithWorkers(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *AnalysisQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *AnalysisQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewAnalysisQueue(proc *processor.Processor, onDone ResultFunc, logger *slog.Logger, opts ...Option) *AnalysisQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &AnalysisQueue{
		proc:    proc,
		onDone:  onDone,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *AnalysisQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					res, err := q.proc.Analyze(ctx, job.Document, job.LoanID)
					if q.onDone != nil {
						q.onDone(ctx, job, res, err)
					}
					cancel()

					if err != nil {
						q.logger.Error("analysis failed", "worker_id", workerID, "loan_id", job.LoanID, "error", err)
					} else {
						q.logger.Info("analysis complete", "worker_id", workerID, "loan_id", job.LoanID,
							"requirements", res.Summary.TotalRequirements)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue submits a job, blocking when the buffer is full. A missing
// trace id is filled in.
func (q *AnalysisQueue) Enqueue(_ context.Context, job Job) error {
	if job.TraceID == "" {
		job.TraceID = uuid.NewString()
	}
	if job.SubmittedAt.IsZero() {
		job.SubmittedAt = time.Now().UTC()
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "loan_id", job.LoanID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued document for analysis", "loan_id", job.LoanID, "trace_id", job.TraceID)
	default:
		q.logger.Warn("queue full, applying backpressure", "loan_id", job.LoanID)
		q.ch <- job
	}
	return nil
}

// Shutdown stops intake and waits for in-flight work, bounded by ctx.
func (q *AnalysisQueue) Shutdown(ctx context.Context) {
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
