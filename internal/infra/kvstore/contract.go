package kvstore

import (
	"context"
	"time"
)

// Store is a string-keyed blob store. Missing keys return ErrNotFound.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Observer receives per-operation timings from Instrumented.
type Observer interface {
	ObserveStoreOperation(backend, operation string, elapsed time.Duration, failed bool)
}
