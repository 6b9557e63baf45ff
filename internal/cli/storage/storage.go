package storage

import "errors"

// ErrNotFound is returned when a key has no persisted value.
var ErrNotFound = errors.New("key not found")

// Store is a persisted string key/value store. The session and theme stores
// use it to survive process restarts; values are opaque strings, keys are
// flat names with no namespacing beyond what the caller chooses.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Memory is an in-memory Store for tests.
type Memory struct {
	values map[string]string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", ErrNotFound
	}
	return value, nil
}

func (m *Memory) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.values, key)
	return nil
}
