package mem

import (
	"context"
	"sync"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// Store is an in-memory storage.KeyValue used by tests and the memory
// storage driver. Contents are lost when the process exits.
type Store struct {
	entries map[string]string
	mu      sync.RWMutex
}

func New() *Store {
	return &Store{entries: make(map[string]string)}
}

func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	if !ok {
		return "", storage.ErrNotFound
	}

	return value, nil
}

func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

func (s *Store) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
	return nil
}

func (s *Store) Close() error {
	return nil
}
