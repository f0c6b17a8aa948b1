// Package queue holds network render jobs until a worker picks them up.
package queue

import (
	"context"
	"sync"
	"time"

	"github.com/okian/passnet/pkg/metrics"
)

const defaultQueueCapacity = 64

// Job is one request-scoped unit of work. The submitter waits on Wait while
// a worker calls Finish with the result of Run.
type Job struct {
	ID       string
	Enqueued time.Time

	ctx  context.Context //nolint:containedctx // a job runs under its request context
	run  func(ctx context.Context) error
	done chan error
}

// NewJob creates a job bound to the caller's context.
func NewJob(ctx context.Context, id string, run func(ctx context.Context) error) *Job {
	return &Job{
		ID:   id,
		ctx:  ctx,
		run:  run,
		done: make(chan error, 1),
	}
}

// Context returns the context the job was submitted with.
func (j *Job) Context() context.Context { return j.ctx }

// Run executes the job unless its context is already done.
func (j *Job) Run() error {
	if err := j.ctx.Err(); err != nil {
		return err
	}
	return j.run(j.ctx)
}

// Finish reports the result to the waiting submitter. Only the first call
// has an effect.
func (j *Job) Finish(err error) {
	select {
	case j.done <- err:
	default:
	}
}

// Wait blocks until the job finished or ctx is done.
func (j *Job) Wait(ctx context.Context) error {
	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Queue provides non-blocking enqueue and channel-based dequeue semantics.
type Queue interface {
	// Enqueue adds a job. It returns ErrFull or ErrClosed when the job was
	// not accepted.
	Enqueue(ctx context.Context, j *Job) error

	// Dequeue returns the channel workers receive jobs from. It is closed
	// when the queue is closed.
	Dequeue(ctx context.Context) <-chan *Job

	// Len returns the current number of queued jobs.
	Len(ctx context.Context) int

	// Close stops accepting jobs.
	Close() error

	// IsClosed returns true if the queue has been closed.
	IsClosed() bool
}

// InMemoryQueue implements Queue using a buffered channel.
type InMemoryQueue struct {
	jobs     chan *Job
	capacity int
	mu       sync.RWMutex
	closed   bool
}

// NewInMemoryQueue creates a new in-memory queue with configuration options.
func NewInMemoryQueue(opts ...Option) *InMemoryQueue {
	q := &InMemoryQueue{
		capacity: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(q)
	}

	q.jobs = make(chan *Job, q.capacity)

	metrics.UpdateQueueCapacity(q.capacity)
	metrics.UpdateQueueSize(0)

	return q
}

// Enqueue adds a job to the queue without blocking.
func (q *InMemoryQueue) Enqueue(ctx context.Context, j *Job) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		metrics.RecordQueueRejected("closed")
		metrics.RecordErrorByComponent("queue", "closed")
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		metrics.RecordQueueRejected("context_cancelled")
		return err
	}

	j.Enqueued = time.Now()
	select {
	case q.jobs <- j:
		metrics.UpdateQueueSize(len(q.jobs))
		return nil
	default:
		metrics.RecordQueueRejected("full")
		metrics.RecordErrorByComponent("queue", "queue_full")
		return ErrFull
	}
}

// Dequeue returns the job channel.
func (q *InMemoryQueue) Dequeue(_ context.Context) <-chan *Job {
	return q.jobs
}

// Len returns the current number of queued jobs.
func (q *InMemoryQueue) Len(_ context.Context) int {
	size := len(q.jobs)
	metrics.UpdateQueueSize(size)
	return size
}

// Capacity returns the maximum number of waiting jobs.
func (q *InMemoryQueue) Capacity() int {
	return q.capacity
}

// Close stops accepting jobs. Jobs already queued are still delivered.
func (q *InMemoryQueue) Close() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return nil
	}
	close(q.jobs)
	q.closed = true
	return nil
}

// IsClosed returns true if the queue has been closed.
func (q *InMemoryQueue) IsClosed() bool {
	q.mu.RLock()
	defer q.mu.RUnlock()
	return q.closed
}
