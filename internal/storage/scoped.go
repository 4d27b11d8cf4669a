package storage

import (
	"context"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
)

// Compile-time interface check.
var _ domain.KeyValueStore = Scoped{}

// Scoped namespaces every key with a visitor id, so each visitor sees a
// private copy of the same keys.
type Scoped struct {
	store   domain.KeyValueStore
	visitor string
}

// NewScoped wraps store for one visitor.
func NewScoped(store domain.KeyValueStore, visitor string) Scoped {
	return Scoped{store: store, visitor: visitor}
}

func (s Scoped) key(k string) string { return s.visitor + "/" + k }

// Get reads key for this visitor.
func (s Scoped) Get(ctx context.Context, key string) (string, bool, error) {
	return s.store.Get(ctx, s.key(key))
}

// Set writes key for this visitor.
func (s Scoped) Set(ctx context.Context, key, value string) error {
	return s.store.Set(ctx, s.key(key), value)
}
