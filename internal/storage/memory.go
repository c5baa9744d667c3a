package storage

import "sync"

// Memory keeps the slot in process memory.
type Memory struct {
	key string

	mu    sync.Mutex
	data  []byte
	found bool
	saves int
}

// NewMemory returns an empty in-memory slot.
func NewMemory(key string) *Memory {
	return &Memory{key: key}
}

func (m *Memory) Key() string { return m.key }

func (m *Memory) Load() ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.found {
		return nil, false, nil
	}
	return append([]byte(nil), m.data...), true, nil
}

func (m *Memory) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	m.found = true
	m.saves++
	return nil
}

// Saves reports how many times Save has been called.
func (m *Memory) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saves
}

func (m *Memory) Close() error { return nil }
