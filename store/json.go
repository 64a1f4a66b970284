package store

import (
	"context"
	"encoding/json"
	"fmt"
)

// Status describes how a typed read resolved.
type Status int

const (
	StatusFound Status = iota
	StatusAbsent
	StatusCorrupt
	StatusUnavailable
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusAbsent:
		return "absent"
	case StatusCorrupt:
		return "corrupt"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

// Result is the outcome of a fail-soft typed read. Value holds the decoded
// value when Status is StatusFound and the caller's default otherwise.
type Result[T any] struct {
	Value  T
	Status Status
	Err    error
}

// Found reports whether a well-formed value was read.
func (r Result[T]) Found() bool {
	return r.Status == StatusFound
}

// Degraded reports whether the default was substituted because of a fault
// rather than because the key was simply absent.
func (r Result[T]) Degraded() bool {
	return r.Status == StatusCorrupt || r.Status == StatusUnavailable
}

// ReadJSON reads key from region and decodes it as JSON into a T. A JSON
// null counts as absent.
func ReadJSON[T any](ctx context.Context, region Region, key string, fallback T) Result[T] {
	raw, ok, err := region.Get(ctx, key)
	if err != nil {
		return Result[T]{Value: fallback, Status: StatusUnavailable, Err: fmt.Errorf("read %q: %w", key, err)}
	}
	if !ok || len(raw) == 0 || string(raw) == "null" {
		return Result[T]{Value: fallback, Status: StatusAbsent}
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return Result[T]{Value: fallback, Status: StatusCorrupt, Err: fmt.Errorf("decode %q: %w", key, err)}
	}
	return Result[T]{Value: value, Status: StatusFound}
}

// WriteJSON encodes value as JSON and stores it under key.
func WriteJSON(ctx context.Context, region Region, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("%w: encode %q: %v", ErrWrite, key, err)
	}
	if err := region.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("%w: set %q: %v", ErrWrite, key, err)
	}
	return nil
}

// Delete removes key, wrapping failures in ErrWrite.
func Delete(ctx context.Context, region Region, key string) error {
	if err := region.Remove(ctx, key); err != nil {
		return fmt.Errorf("%w: remove %q: %v", ErrWrite, key, err)
	}
	return nil
}
