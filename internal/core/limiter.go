package core

// limiter.go implements concurrency control for record processing.
//
// The limiter uses a semaphore pattern to restrict parallel workers to a
// configured maximum. When all slots are occupied, callers wait until a slot
// frees up or their context is done.

import (
	"context"
	"sync"
)

// DefaultWorkers is the default worker pool capacity.
const DefaultWorkers = 10

// WorkerLimiter controls how many tasks run at once.
type WorkerLimiter struct {
	semaphore chan struct{}

	mu     sync.RWMutex
	active int
	peak   int
}

// NewWorkerLimiter creates a limiter that allows at most maxConcurrent simultaneous tasks.
func NewWorkerLimiter(maxConcurrent int) *WorkerLimiter {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultWorkers
	}

	return &WorkerLimiter{
		semaphore: make(chan struct{}, maxConcurrent),
	}
}

// Acquire waits for a worker slot.
// Returns nil on success or the context error if ctx is done first.
// The caller MUST call Release() when the task completes (use defer).
func (l *WorkerLimiter) Acquire(ctx context.Context) error {
	select {
	case l.semaphore <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}

	l.mu.Lock()
	l.active++
	if l.active > l.peak {
		l.peak = l.active
	}
	l.mu.Unlock()
	return nil
}

// Release releases a previously acquired slot.
// Must be called exactly once for each successful Acquire.
func (l *WorkerLimiter) Release() {
	l.mu.Lock()
	l.active--
	l.mu.Unlock()

	<-l.semaphore
}

// MaxConcurrent returns the maximum allowed concurrent tasks.
func (l *WorkerLimiter) MaxConcurrent() int {
	return cap(l.semaphore)
}

// WorkerLimiterStatus is a snapshot of the limiter's current state.
type WorkerLimiterStatus struct {
	Active        int `json:"active"`
	Peak          int `json:"peak"`
	Available     int `json:"available"`
	MaxConcurrent int `json:"max_concurrent"`
}

// Status returns the current limiter state for monitoring/debugging.
func (l *WorkerLimiter) Status() WorkerLimiterStatus {
	l.mu.RLock()
	active, peak := l.active, l.peak
	l.mu.RUnlock()

	return WorkerLimiterStatus{
		Active:        active,
		Peak:          peak,
		Available:     cap(l.semaphore) - len(l.semaphore),
		MaxConcurrent: cap(l.semaphore),
	}
}
