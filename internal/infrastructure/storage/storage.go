// internal/infrastructure/storage/storage.go
package storage

import (
	"context"
	"encoding/json"
	"sync"
)

// Store is the durable key/value boundary used by the cart and session
// stores. Values are JSON-serialized. Load reports whether the key existed.
type Store interface {
	Load(ctx context.Context, key string, dest interface{}) (bool, error)
	Save(ctx context.Context, key string, value interface{}) error
	Delete(ctx context.Context, key string) error
}

// Memory is an in-process Store used in tests and redis-less development.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string][]byte),
	}
}

// Load retrieves a value by key
func (m *Memory) Load(ctx context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	data, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}

	return true, nil
}

// Save stores a value under key
func (m *Memory) Save(ctx context.Context, key string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	m.entries[key] = data
	m.mu.Unlock()

	return nil
}

// Delete removes a key
func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()

	return nil
}
