// Package store provides small key-value backends for persisted records,
// similar to a platform defaults database: each key holds one encoded blob.
package store

import "errors"

var (
	// ErrNotFound is returned when a key holds no value.
	ErrNotFound = errors.New("store: key not found")

	// ErrLoadFailed wraps read and decode failures.
	ErrLoadFailed = errors.New("store: load failed")

	// ErrSaveFailed wraps write and encode failures.
	ErrSaveFailed = errors.New("store: save failed")

	// ErrRemoveFailed wraps delete failures.
	ErrRemoveFailed = errors.New("store: remove failed")
)

// Defaults is a key-value store of raw record bytes.
type Defaults interface {
	// Get returns the bytes stored under key, or ErrNotFound.
	Get(key string) ([]byte, error)
	// Set stores data under key, replacing any previous value.
	Set(key string, data []byte) error
	// Remove deletes key. Missing keys are ignored.
	Remove(key string) error
}
