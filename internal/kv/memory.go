package kv

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

// ErrQuotaExceeded is returned by a Memory store whose writes were disabled
var ErrQuotaExceeded = errors.New("storage quota exceeded")

// Memory is an in-process Store. Values are copied in and out.
type Memory struct {
	mu         sync.RWMutex
	data       map[string][]byte
	failWrites bool
}

// NewMemory creates an empty Memory store
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// Get returns the value stored under key
func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Set writes value under key
func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return errors.Wrapf(ErrQuotaExceeded, "set %s", key)
	}
	m.data[key] = append([]byte{}, value...)
	return nil
}

// Delete removes key
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWrites {
		return errors.Wrapf(ErrQuotaExceeded, "delete %s", key)
	}
	delete(m.data, key)
	return nil
}

// Close is a no-op
func (m *Memory) Close() error { return nil }

// FailWrites makes every following Set and Delete fail until called with false
func (m *Memory) FailWrites(fail bool) {
	m.mu.Lock()
	m.failWrites = fail
	m.mu.Unlock()
}
