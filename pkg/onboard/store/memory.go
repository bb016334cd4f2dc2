package store

import "fmt"

// Memory is an in-process Defaults, used for previews and tests.
type Memory struct {
	values map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	data, ok := m.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return append([]byte(nil), data...), nil
}

func (m *Memory) Set(key string, data []byte) error {
	m.values[key] = append([]byte(nil), data...)
	return nil
}

func (m *Memory) Remove(key string) error {
	delete(m.values, key)
	return nil
}

// Len returns the number of stored keys.
func (m *Memory) Len() int {
	return len(m.values)
}
