package core

import (
	"context"
	"time"

	"github.com/JonMunkholm/seeder/internal/logging"
	"github.com/google/uuid"
)

func newRunID() string {
	return uuid.New().String()
}

// Dispatch submits one task per record to a pool of s.Workers() workers and
// returns the outcomes in submission order, regardless of completion order.
// It returns only after every task has completed.
func (s *Service) Dispatch(ctx context.Context, records []Record) []Outcome {
	pool := NewPool(s.workers)

	tasks := make([]*Task, len(records))
	for i, rec := range records {
		tasks[i] = pool.Submit(ctx, rec, s.Process)
	}

	outcomes := make([]Outcome, len(tasks))
	for i, t := range tasks {
		outcomes[i] = t.Wait()
	}
	pool.Wait()

	status := pool.Status()
	logging.FromContext(ctx).Debug("dispatch complete",
		"tasks", len(tasks),
		"peak_workers", status.Peak,
		"available_workers", status.Available,
	)
	return outcomes
}

// Seed runs the pipeline over ds (users, then products, then orders) and
// returns the aggregated report. Schemas must already be reset.
func (s *Service) Seed(ctx context.Context, ds Dataset) Report {
	runID := s.newID()
	ctx = logging.WithRunID(ctx, runID)
	logger := logging.FromContext(ctx)

	records := ds.Records()
	logger.Info("seed started", "records", len(records), "workers", s.workers)

	started := s.now()
	outcomes := s.Dispatch(ctx, records)
	rep := Report{
		RunID:     runID,
		StartedAt: started,
		Duration:  time.Since(started),
		Outcomes:  outcomes,
	}

	for _, sum := range rep.Summary() {
		logger.Info("seed summary",
			"kind", sum.Kind,
			"success", sum.Success,
			"failed", sum.Failed,
			"error", sum.Error,
		)
	}
	logger.Info("seed completed", "duration", rep.Duration)
	return rep
}
