package kv

import (
	"context"
	"strings"

	"github.com/Sofiane224434/cinetech/pkg/storage"
)

// DefaultHistoryLimit caps the recent-search list.
const DefaultHistoryLimit = 5

// History persists recently selected search terms, most recent first.
type History struct {
	kv    storage.KeyValue
	limit int
}

func NewHistory(kvs storage.KeyValue, limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	return &History{kv: kvs, limit: limit}
}

// List returns the recorded terms, most recent first.
func (h *History) List(ctx context.Context) ([]string, error) {
	return read(ctx, h.kv, storage.KeySearchHistory, []string{})
}

// Record moves term to the front, dropping any earlier occurrence, and trims
// the list to the limit. Blank terms are ignored.
func (h *History) Record(ctx context.Context, term string) ([]string, error) {
	entries, err := h.List(ctx)
	if err != nil {
		return nil, err
	}

	term = strings.TrimSpace(term)
	if term == "" {
		return entries, nil
	}

	updated := make([]string, 0, len(entries)+1)
	updated = append(updated, term)
	for _, entry := range entries {
		if entry != term {
			updated = append(updated, entry)
		}
	}

	if len(updated) > h.limit {
		updated = updated[:h.limit]
	}

	if err := write(ctx, h.kv, storage.KeySearchHistory, updated); err != nil {
		return nil, err
	}

	return updated, nil
}

// Clear empties the history and removes its key entirely.
func (h *History) Clear(ctx context.Context) error {
	return h.kv.Remove(ctx, storage.KeySearchHistory)
}
