// Package storetest provides store.Region doubles for exercising fail-soft paths.
package storetest

import (
	"context"
	"errors"
	"sync"

	"storefront/store"
)

// ErrInjected is returned by FaultyRegion operations that are set to fail.
var ErrInjected = errors.New("storetest: injected failure")

// FaultyRegion wraps a Region and fails selected operations on demand,
// standing in for quota errors and unavailable backends.
type FaultyRegion struct {
	store.Region

	mu         sync.Mutex
	failGet    bool
	failSet    bool
	failRemove bool
}

// NewFaultyRegion wraps inner; a nil inner gets a fresh MemoryRegion.
func NewFaultyRegion(inner store.Region) *FaultyRegion {
	if inner == nil {
		inner = store.NewMemoryRegion()
	}
	return &FaultyRegion{Region: inner}
}

func (f *FaultyRegion) FailGet(fail bool)    { f.mu.Lock(); f.failGet = fail; f.mu.Unlock() }
func (f *FaultyRegion) FailSet(fail bool)    { f.mu.Lock(); f.failSet = fail; f.mu.Unlock() }
func (f *FaultyRegion) FailRemove(fail bool) { f.mu.Lock(); f.failRemove = fail; f.mu.Unlock() }

// FailAll toggles every operation at once.
func (f *FaultyRegion) FailAll(fail bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGet, f.failSet, f.failRemove = fail, fail, fail
}

func (f *FaultyRegion) Get(ctx context.Context, key string) ([]byte, bool, error) {
	f.mu.Lock()
	fail := f.failGet
	f.mu.Unlock()
	if fail {
		return nil, false, ErrInjected
	}
	return f.Region.Get(ctx, key)
}

func (f *FaultyRegion) Set(ctx context.Context, key string, value []byte) error {
	f.mu.Lock()
	fail := f.failSet
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Region.Set(ctx, key, value)
}

func (f *FaultyRegion) Remove(ctx context.Context, key string) error {
	f.mu.Lock()
	fail := f.failRemove
	f.mu.Unlock()
	if fail {
		return ErrInjected
	}
	return f.Region.Remove(ctx, key)
}
