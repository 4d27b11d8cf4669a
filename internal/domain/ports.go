package domain

import "context"

// RecipeSource provides recipes. The generated catalog is the only
// implementation; it is read-only for the process lifetime.
type RecipeSource interface {
	All() []*Recipe
	Categories() []Category
	Get(id string) (*Recipe, error)
	BySlug(slug string) (*Recipe, error)
}

// KeyValueStore is the persisted state the front end reads and writes.
// Values are opaque strings (JSON in practice). Get reports ok=false when
// the key has never been written.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Completer is the remote text-generation boundary: a list of turns in,
// generated text out. Any provider satisfying this shape is substitutable.
type Completer interface {
	Complete(ctx context.Context, turns []Turn) (string, error)
}

// Notifier delivers short user-facing messages (toasts).
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
