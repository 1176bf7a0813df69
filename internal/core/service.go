package core

import (
	"errors"
	"fmt"
	"time"
)

// MetricsRecorder receives one observation per processed record.
type MetricsRecorder interface {
	ObserveOutcome(kind Kind, status Status, duration time.Duration)
}

type noopMetrics struct{}

func (noopMetrics) ObserveOutcome(Kind, Status, time.Duration) {}

// Service provides the seeding pipeline: validate, insert, report.
type Service struct {
	stores  map[Kind]Store
	workers int
	metrics MetricsRecorder
	now     func() time.Time
	newID   func() string
}

// Option configures a Service.
type Option func(*Service)

// WithWorkers sets the worker pool capacity. Non-positive values keep DefaultWorkers.
func WithWorkers(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workers = n
		}
	}
}

// WithMetrics sets the recorder that observes every outcome.
func WithMetrics(m MetricsRecorder) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithRunIDGenerator overrides how run IDs are produced.
func WithRunIDGenerator(fn func() string) Option {
	return func(s *Service) {
		if fn != nil {
			s.newID = fn
		}
	}
}

// NewService creates a Service over one store per entity kind.
// Every registered table must have a store.
func NewService(stores map[Kind]Store, opts ...Option) (*Service, error) {
	if len(stores) == 0 {
		return nil, errors.New("no stores configured")
	}
	for _, def := range All() {
		if _, ok := stores[def.Info.Kind]; !ok {
			return nil, fmt.Errorf("no store for table %s", def.Info.Key)
		}
	}

	s := &Service{
		stores:  stores,
		workers: DefaultWorkers,
		metrics: noopMetrics{},
		now:     time.Now,
		newID:   newRunID,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Store returns the store for kind.
func (s *Service) Store(kind Kind) (Store, bool) {
	st, ok := s.stores[kind]
	return st, ok
}

// Workers returns the configured pool capacity.
func (s *Service) Workers() int {
	return s.workers
}
