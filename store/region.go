package store

import (
	"context"
	"errors"
)

var (
	// ErrWrite wraps any failure to persist or remove a value.
	ErrWrite = errors.New("store: write failed")
	// ErrClosed is returned by regions used after Close.
	ErrClosed = errors.New("store: region closed")
)

// Region is a key-value persistence region. Get reports ok=false for a key
// that has never been set or has been removed.
type Region interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Remove(ctx context.Context, key string) error
}
