package kvstore

import (
	"context"
	"errors"
	"time"
)

// Instrumented wraps a Store and reports operation latency to an Observer.
// A missing key is not counted as a failure.
type Instrumented struct {
	next     Store
	backend  string
	observer Observer
}

func NewInstrumented(next Store, backend string, observer Observer) *Instrumented {
	return &Instrumented{next: next, backend: backend, observer: observer}
}

func (s *Instrumented) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()
	data, err := s.next.Get(ctx, key)
	s.observe("get", start, err)
	return data, err
}

func (s *Instrumented) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()
	err := s.next.Set(ctx, key, value)
	s.observe("set", start, err)
	return err
}

func (s *Instrumented) Delete(ctx context.Context, key string) error {
	start := time.Now()
	err := s.next.Delete(ctx, key)
	s.observe("delete", start, err)
	return err
}

func (s *Instrumented) observe(op string, start time.Time, err error) {
	failed := err != nil && !errors.Is(err, ErrNotFound)
	s.observer.ObserveStoreOperation(s.backend, op, time.Since(start), failed)
}
