package store

import (
	"context"
	"sync"
)

// Memory keeps preferences in process memory. Setting Fail makes every
// call return ErrUnavailable, the way a browser in privacy mode behaves.
type Memory struct {
	mu     sync.RWMutex
	values map[string]map[string]string
	fail   bool
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]map[string]string)}
}

func (m *Memory) Fail(on bool) {
	m.mu.Lock()
	m.fail = on
	m.mu.Unlock()
}

func (m *Memory) Get(_ context.Context, visitor, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.fail {
		return "", false, ErrUnavailable
	}
	v, ok := m.values[visitor][key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, visitor, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return ErrUnavailable
	}
	if m.values[visitor] == nil {
		m.values[visitor] = make(map[string]string)
	}
	m.values[visitor][key] = value
	return nil
}

func (m *Memory) Close() error { return nil }
