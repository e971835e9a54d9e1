package storage

import (
	"sort"
	"sync"
)

// MemoryStore is the in-process Store implementation. Values are copied on
// the way in and out, so callers can mutate their slices freely.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

func NewMemoryStore() Store {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

func (m *MemoryStore) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.entries[key]
	if !ok {
		return nil, false
	}
	return clone(val), true
}

func (m *MemoryStore) Set(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = clone(value)
}

func (m *MemoryStore) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
}

func (m *MemoryStore) Has(key string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.entries[key]
	return ok
}

func (m *MemoryStore) Keys() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]string, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (m *MemoryStore) Snapshot() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[string][]byte, len(m.entries))
	for k, v := range m.entries {
		out[k] = clone(v)
	}
	return out
}

func (m *MemoryStore) Restore(entries map[string][]byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = make(map[string][]byte, len(entries))
	for k, v := range entries {
		m.entries[k] = clone(v)
	}
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
