package storage

import (
	"sync"

	"golang.org/x/net/context"
)

type memoryAdapter struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemory() Adapter {
	return &memoryAdapter{values: make(map[string]string)}
}

func (m *memoryAdapter) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *memoryAdapter) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

func (m *memoryAdapter) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

func (m *memoryAdapter) Close() error {
	return nil
}
