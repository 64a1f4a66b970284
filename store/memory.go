package store

import (
	"context"
	"sync"
)

// MemoryRegion is an in-process Region. It backs tests and the session region
// when no Redis is configured; its contents end with the process.
type MemoryRegion struct {
	mu      sync.RWMutex
	records map[string][]byte
}

func NewMemoryRegion() *MemoryRegion {
	return &MemoryRegion{records: map[string][]byte{}}
}

func (m *MemoryRegion) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.records[key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (m *MemoryRegion) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[key] = cloneBytes(value)
	return nil
}

func (m *MemoryRegion) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, key)
	return nil
}

// Clear drops every key, the way a browser discards session storage when the
// session ends.
func (m *MemoryRegion) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records = map[string][]byte{}
}

// Len returns the number of stored keys.
func (m *MemoryRegion) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.records)
}

func cloneBytes(in []byte) []byte {
	if in == nil {
		return nil
	}
	out := make([]byte, len(in))
	copy(out, in)
	return out
}
