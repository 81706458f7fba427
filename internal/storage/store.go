// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by KV.Get when the key does not exist.
var ErrNotFound = errors.New("storage: key not found")

// KV defines the interface for a flat string-keyed value store.
// This abstraction allows swapping storage backends (SQLite, Redis, DynamoDB,
// in-memory) without changing the domain layer.
type KV interface {
	// Get returns the value stored at key.
	// Returns ErrNotFound if the key does not exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value at key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close flushes and releases any resources held by the store.
	Close() error
}

// Pinger is implemented by backends that can report their health.
type Pinger interface {
	Ping(ctx context.Context) error
}
