// Package storage persists the small per-visitor state the site keeps:
// the saved-recipe set, behind a key-value port with memory and SQLite
// backends.
package storage

import (
	"context"
	"sync"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// Compile-time interface check.
var _ domain.KeyValueStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory key-value store. Safe for concurrent access.
// Contents are lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
	log     *logger.Logger
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore(log *logger.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]string),
		log:     log,
	}
}

// Get returns the value stored under key.
func (s *MemoryStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.entries[key]
	if !ok {
		s.log.Debug("key not found: %s", key)
	}
	return v, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (s *MemoryStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log.Debug("set %s (%d bytes)", key, len(value))
	s.entries[key] = value
	return nil
}

// Len returns the number of keys held.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
