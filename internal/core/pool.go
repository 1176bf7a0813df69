package core

// pool.go implements the fixed-capacity task pool used by the dispatcher.
//
// Submit never blocks: every submitted record gets its own goroutine and a
// Task handle, and the goroutine waits on the WorkerLimiter before running.
// At most Capacity() tasks execute at once; the rest queue on the semaphore.
// A task that cannot obtain a slot because its context is done still
// completes, with an Error outcome, so no handle is ever left unresolved.

import (
	"context"
	"sync"
)

// ProcessFunc handles one record and returns its outcome.
type ProcessFunc func(ctx context.Context, rec Record) Outcome

// Task is the handle for a submitted record.
type Task struct {
	done    chan struct{}
	outcome Outcome
}

// Wait blocks until the task completes and returns its outcome.
func (t *Task) Wait() Outcome {
	<-t.done
	return t.outcome
}

// Pool runs submitted tasks with bounded concurrency.
type Pool struct {
	limiter *WorkerLimiter
	wg      sync.WaitGroup
}

// NewPool creates a pool running at most workers tasks at once.
// A non-positive value uses DefaultWorkers.
func NewPool(workers int) *Pool {
	return &Pool{limiter: NewWorkerLimiter(workers)}
}

// Submit queues fn for rec and returns its handle immediately.
func (p *Pool) Submit(ctx context.Context, rec Record, fn ProcessFunc) *Task {
	t := &Task{done: make(chan struct{})}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer close(t.done)

		if err := p.limiter.Acquire(ctx); err != nil {
			t.outcome = Outcome{
				Kind:    rec.Kind(),
				ID:      rec.RecordID(),
				Status:  StatusError,
				Message: FormatStoreError(err),
			}
			return
		}
		defer p.limiter.Release()

		t.outcome = fn(ctx, rec)
	}()

	return t
}

// Wait blocks until every submitted task has completed.
func (p *Pool) Wait() {
	p.wg.Wait()
}

// Capacity returns the maximum number of concurrently running tasks.
func (p *Pool) Capacity() int {
	return p.limiter.MaxConcurrent()
}

// Status returns the underlying limiter state.
func (p *Pool) Status() WorkerLimiterStatus {
	return p.limiter.Status()
}
