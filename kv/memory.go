package kv

import (
	"context"
	"slices"
	"sync"
)

// Memory is a Store kept in memory.
type Memory struct {
	mu     sync.Mutex
	values map[string][]byte
	// Fail, if set, is returned by every Put.
	Fail error
}

// NewMemory returns an empty in-memory Store.
func NewMemory() *Memory { return &Memory{values: make(map[string][]byte)} }

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return slices.Clone(v), nil
}

func (m *Memory) Put(_ context.Context, entries map[string][]byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Fail != nil {
		return m.Fail
	}
	for k, v := range entries {
		m.values[k] = slices.Clone(v)
	}
	return nil
}

func (m *Memory) Close() error { return nil }
