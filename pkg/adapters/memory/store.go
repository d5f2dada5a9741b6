// Package memory provides an in-process CapabilityStore, mostly for tests
// and for sessions that should forget their directory on exit.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/notestore/pkg/core"
)

// Store is a CapabilityStore backed by a map.
type Store struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string][]byte)}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = append([]byte(nil), value...)
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

var _ core.CapabilityStore = (*Store)(nil)
