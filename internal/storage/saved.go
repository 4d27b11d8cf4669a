package storage

import (
	"context"
	"encoding/json"

	"github.com/hammamikhairi/cozinhamestre/internal/domain"
	"github.com/hammamikhairi/cozinhamestre/internal/logger"
)

// SavedKey is the key the saved-recipe ids live under.
const SavedKey = "cm_saved_recipes"

// Toast texts for a toggle.
const (
	MsgSaved   = "Receita guardada nos favoritos!"
	MsgRemoved = "Receita removida dos favoritos."
)

// SavedSet is the visitor's set of saved recipe ids, stored as a JSON
// array under SavedKey. A missing, unreadable, or malformed value reads as
// the empty set; none of its methods fail.
type SavedSet struct {
	store    domain.KeyValueStore
	notifier domain.Notifier
	log      *logger.Logger
}

// SavedOption configures a SavedSet.
type SavedOption func(*SavedSet)

// WithNotifier reports every toggle through n.
func WithNotifier(n domain.Notifier) SavedOption {
	return func(s *SavedSet) { s.notifier = n }
}

// NewSavedSet creates a saved set over store.
func NewSavedSet(store domain.KeyValueStore, log *logger.Logger, opts ...SavedOption) *SavedSet {
	s := &SavedSet{store: store, log: log}
	for _, o := range opts {
		o(s)
	}
	return s
}

// IDs returns the saved ids in the order they were saved.
func (s *SavedSet) IDs(ctx context.Context) []string {
	return s.read(ctx)
}

// IsSaved reports whether id is in the set.
func (s *SavedSet) IsSaved(ctx context.Context, id string) bool {
	for _, v := range s.read(ctx) {
		if v == id {
			return true
		}
	}
	return false
}

// Toggle adds id if absent or removes it if present, writes the whole set
// back, notifies, and returns the new membership. A failed write is logged
// and the returned value still reflects the intended state.
func (s *SavedSet) Toggle(ctx context.Context, id string) bool {
	ids := s.read(ctx)

	out := make([]string, 0, len(ids)+1)
	removed := false
	for _, v := range ids {
		if v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	if !removed {
		out = append(out, id)
	}

	s.write(ctx, out)

	saved := !removed
	s.log.Debug("toggled saved %s -> %v (%d saved)", id, saved, len(out))
	if s.notifier != nil {
		msg := MsgRemoved
		if saved {
			msg = MsgSaved
		}
		if err := s.notifier.Notify(ctx, msg); err != nil {
			s.log.Warn("saved toggle notify: %v", err)
		}
	}
	return saved
}

func (s *SavedSet) read(ctx context.Context) []string {
	raw, ok, err := s.store.Get(ctx, SavedKey)
	if err != nil {
		s.log.Warn("saved set unreadable, treating as empty: %v", err)
		return nil
	}
	if !ok || raw == "" {
		return nil
	}

	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		s.log.Warn("saved set malformed, treating as empty: %v", err)
		return nil
	}

	seen := make(map[string]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

func (s *SavedSet) write(ctx context.Context, ids []string) {
	b, err := json.Marshal(ids)
	if err != nil {
		s.log.Error("encode saved set: %v", err)
		return
	}
	if err := s.store.Set(ctx, SavedKey, string(b)); err != nil {
		s.log.Warn("persist saved set: %v", err)
	}
}
