// Package store holds Saver implementations for generated derivatives.
package store

import (
	"sync"

	"github.com/menta2k/image-derivative/pkg/types"
)

// Memory keeps saved derivatives in memory. It is safe for concurrent use.
type Memory struct {
	mu    sync.Mutex
	saved []*types.Derivative
	err   error
}

// NewMemory creates an empty Memory store
func NewMemory() *Memory {
	return &Memory{}
}

// Save records d, or returns the error set with FailWith
func (m *Memory) Save(d *types.Derivative) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	m.saved = append(m.saved, d)
	return nil
}

// FailWith makes every following Save return err. A nil err restores
// normal behaviour.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Saved returns the derivatives saved so far, in save order
func (m *Memory) Saved() []*types.Derivative {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*types.Derivative(nil), m.saved...)
}

// Find returns the last saved derivative with the given use_for tag
func (m *Memory) Find(useFor string) (*types.Derivative, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := len(m.saved) - 1; i >= 0; i-- {
		if m.saved[i].UseFor == useFor {
			return m.saved[i], true
		}
	}
	return nil, false
}
